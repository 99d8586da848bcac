package controllers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
	"strings"
	"travelstar/internal/models/request_models"
	"travelstar/internal/models/response_models"
	"travelstar/internal/services"
	"travelstar/pkg/metrics"
	"travelstar/pkg/middleware"
	"travelstar/pkg/utils"
)

// Choices offered by the plan form.
var (
	TravelStyles = []string{"Backpacker", "Cultural Explorer", "Foodie", "Adventure Seeker", "Relaxation", "City Breaker"}
	Interests    = []string{"History & Culture", "Food & Dining", "Nature & Hiking", "Art & Museums", "Shopping", "Nightlife", "Beaches", "Photography", "Local Markets"}
	Seasons      = []string{"Spring", "Summer", "Fall", "Winter"}
	GroupSizes   = []string{"Solo Travel", "Couple", "Friends (3-5)", "Family", "Group (6+)"}
)

// PageController serves the browser UI. Errors are shown inline on the page
// that triggered them and never end the session.
type PageController struct {
	accountService services.AccountServiceInterface
	plannerService services.PlannerServiceInterface
	historyService services.HistoryServiceInterface
	metrics        *metrics.Metrics
	log            *zap.Logger
}

func NewPageController(
	accountService services.AccountServiceInterface,
	plannerService services.PlannerServiceInterface,
	historyService services.HistoryServiceInterface,
	m *metrics.Metrics,
	log *zap.Logger,
) *PageController {
	return &PageController{
		accountService: accountService,
		plannerService: plannerService,
		historyService: historyService,
		metrics:        m,
		log:            log,
	}
}

func (p *PageController) page(c *gin.Context, data gin.H) gin.H {
	data["Username"] = middleware.CurrentUsername(c)
	return data
}

func defaultTripForm() request_models.TripRequest {
	return request_models.TripRequest{
		Days:        5,
		Currency:    services.DefaultCurrency,
		Interests:   []string{"History & Culture", "Food & Dining"},
		Season:      Seasons[0],
		TravelStyle: TravelStyles[0],
		GroupSize:   GroupSizes[0],
	}
}

func (p *PageController) planForm(c *gin.Context, code int, form request_models.TripRequest, result *response_models.GenerationResponse, errMsg string) {
	c.HTML(code, "home.tmpl", p.page(c, gin.H{
		"Active":       "plan",
		"Form":         form,
		"Result":       result,
		"Error":        errMsg,
		"TravelStyles": TravelStyles,
		"Interests":    Interests,
		"Seasons":      Seasons,
		"GroupSizes":   GroupSizes,
	}))
}

func (p *PageController) Home(c *gin.Context) {
	if middleware.CurrentUsername(c) == "" {
		c.HTML(http.StatusOK, "welcome.tmpl", p.page(c, gin.H{"Active": "home"}))
		return
	}
	p.planForm(c, http.StatusOK, defaultTripForm(), nil, "")
}

func (p *PageController) GeneratePlan(c *gin.Context) {
	var form request_models.TripRequest
	if err := c.ShouldBind(&form); err != nil {
		p.planForm(c, http.StatusBadRequest, form, nil, "Please check the trip details and try again")
		return
	}

	resp, err := p.plannerService.Generate(c.Request.Context(), middleware.CurrentUsername(c), form)
	if err != nil {
		p.planForm(c, utils.StatusFor(err), form, nil, utils.UserMessage(err))
		return
	}

	p.planForm(c, http.StatusOK, form, resp, "")
}

func (p *PageController) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", p.page(c, gin.H{"Active": "login"}))
}

func (p *PageController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	_ = c.ShouldBind(&req)

	token, err := p.accountService.Login(c.Request.Context(), req)
	if err != nil {
		p.metrics.AuthRequestsTotal.WithLabelValues("login", "failure").Inc()
		if !errors.Is(err, utils.ErrInvalidCredentials) && !errors.Is(err, utils.ErrInvalidInput) {
			p.log.Error("login failed", zap.Error(err))
		}
		c.HTML(utils.StatusFor(err), "login.tmpl", p.page(c, gin.H{
			"Active":        "login",
			"Error":         utils.UserMessage(err),
			"LoginUsername": req.Username,
		}))
		return
	}

	p.metrics.AuthRequestsTotal.WithLabelValues("login", "success").Inc()
	c.SetSameSite(http.SameSiteLaxMode)
	// MaxAge 0 keeps it a browser-session cookie
	c.SetCookie(utils.SessionCookieName, token, 0, "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (p *PageController) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", p.page(c, gin.H{"Active": "register"}))
}

func (p *PageController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	_ = c.ShouldBind(&req)

	if err := p.accountService.Register(c.Request.Context(), req); err != nil {
		p.metrics.AuthRequestsTotal.WithLabelValues("register", "failure").Inc()
		c.HTML(utils.StatusFor(err), "register.tmpl", p.page(c, gin.H{
			"Active":           "register",
			"Error":            utils.UserMessage(err),
			"RegisterUsername": req.Username,
		}))
		return
	}

	p.metrics.AuthRequestsTotal.WithLabelValues("register", "success").Inc()
	c.HTML(http.StatusOK, "login.tmpl", p.page(c, gin.H{
		"Active":        "login",
		"Flash":         "Registration successful! Please login.",
		"LoginUsername": req.Username,
	}))
}

func (p *PageController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (p *PageController) History(c *gin.Context) {
	plans, err := p.historyService.ListFor(c.Request.Context(), middleware.CurrentUsername(c))
	if err != nil {
		p.log.Error("loading history failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "history.tmpl", p.page(c, gin.H{
			"Active": "history",
			"Error":  "Could not load your travel history. Please try again.",
		}))
		return
	}

	c.HTML(http.StatusOK, "history.tmpl", p.page(c, gin.H{
		"Active":  "history",
		"Entries": services.ToHistoryEntries(plans),
	}))
}

func (p *PageController) HistoryDetail(c *gin.Context) {
	plan, err := p.historyService.Get(c.Request.Context(), middleware.CurrentUsername(c), c.Param("planId"))
	if err != nil {
		if !errors.Is(err, utils.ErrPlanNotFound) {
			p.log.Error("loading plan failed", zap.Error(err))
		}
		c.HTML(utils.StatusFor(err), "history.tmpl", p.page(c, gin.H{
			"Active": "history",
			"Error":  utils.UserMessage(err),
		}))
		return
	}

	c.HTML(http.StatusOK, "plan.tmpl", p.page(c, gin.H{
		"Active": "history",
		"Plan":   services.ToTripPlanResponse(plan),
	}))
}

func (p *PageController) Tips(c *gin.Context) {
	c.HTML(http.StatusOK, "tips.tmpl", p.page(c, gin.H{"Active": "tips"}))
}

func (p *PageController) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		utils.RespondError(c, http.StatusNotFound, "Not found")
		return
	}
	c.HTML(http.StatusNotFound, "not_found.tmpl", p.page(c, gin.H{"Active": ""}))
}
