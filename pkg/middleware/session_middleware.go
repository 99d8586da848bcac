package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
	"travelstar/pkg/utils"
)

const UsernameKey = "username"

// SessionResolver turns a session token into a username.
type SessionResolver interface {
	CurrentUser(token string) (string, error)
}

// SessionMiddleware marks the request with the logged-in username when a valid
// session cookie or bearer token is present. It never rejects a request.
func SessionMiddleware(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(utils.SessionCookieName)
		}

		if token != "" {
			if username, err := sessions.CurrentUser(token); err == nil {
				c.Set(UsernameKey, username)
			}
		}

		c.Next()
	}
}

// RequireAPIUser rejects anonymous API calls with 401.
func RequireAPIUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(UsernameKey) == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePageUser sends anonymous browsers to the login page.
func RequirePageUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(UsernameKey) == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUsername(c *gin.Context) string {
	return c.GetString(UsernameKey)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}
