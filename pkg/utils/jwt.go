package utils

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

const SessionCookieName = "travelstar_session"

type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionSigner issues and verifies the token that marks a browser session as
// logged in. Tokens carry no expiry; the cookie holding them dies with the
// browser session and Logout clears it.
type SessionSigner struct {
	key    []byte
	issuer string
}

func NewSessionSigner(secret string) *SessionSigner {
	return &SessionSigner{key: []byte(secret), issuer: "travelstar"}
}

func (s *SessionSigner) CreateToken(username string) (string, error) {
	claims := &SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   s.issuer,
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s *SessionSigner) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Username == "" {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}
