package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
	"strings"
	"travelstar/internal/models/request_models"
	"travelstar/internal/models/response_models"
	"travelstar/internal/services"
	"travelstar/pkg/metrics"
	"travelstar/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	metrics        *metrics.Metrics
	log            *zap.Logger
}

func NewAccountController(accountService services.AccountServiceInterface, m *metrics.Metrics, log *zap.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		metrics:        m,
		log:            log,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.Register(c.Request.Context(), req); err != nil {
		a.metrics.AuthRequestsTotal.WithLabelValues("register", "failure").Inc()
		utils.HandleServiceError(c, a.log, err)
		return
	}

	a.metrics.AuthRequestsTotal.WithLabelValues("register", "success").Inc()
	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		a.metrics.AuthRequestsTotal.WithLabelValues("login", "failure").Inc()
		utils.HandleServiceError(c, a.log, err)
		return
	}

	a.metrics.AuthRequestsTotal.WithLabelValues("login", "success").Inc()
	utils.RespondSuccess(c,
		response_models.AccountLoginResponse{Token: token, Username: strings.TrimSpace(req.Username)},
		"Login successful")
}
