package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
	"travelstar/internal/models/request_models"
	"travelstar/internal/services"
	"travelstar/pkg/middleware"
	"travelstar/pkg/utils"
)

type PlanController struct {
	plannerService services.PlannerServiceInterface
	historyService services.HistoryServiceInterface
	log            *zap.Logger
}

func NewPlanController(
	plannerService services.PlannerServiceInterface,
	historyService services.HistoryServiceInterface,
	log *zap.Logger,
) *PlanController {
	return &PlanController{
		plannerService: plannerService,
		historyService: historyService,
		log:            log,
	}
}

// GeneratePlan godoc
// @Summary Generate a travel plan
// @Description Ask the model for an itinerary, budget, tips and packing list and save it to the user's history
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip parameters"
// @Success 200 {object} response_models.GenerationResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/plans [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.plannerService.Generate(c.Request.Context(), middleware.CurrentUsername(c), req)
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	message := "Travel plan created successfully"
	if !resp.Saved {
		message = resp.Warning
	}
	utils.RespondSuccess(c, resp, message)
}

// ListPlans godoc
// @Summary List the user's travel plans
// @Description Newest first
// @Tags Plans
// @Produce json
// @Success 200 {array} response_models.HistoryEntryResponse
// @Security BearerAuth
// @Router /api/plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {
	plans, err := p.historyService.ListFor(c.Request.Context(), middleware.CurrentUsername(c))
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	utils.RespondSuccess(c, services.ToHistoryEntries(plans), "Travel plans fetched successfully")
}

// GetPlan godoc
// @Summary Get one travel plan
// @Tags Plans
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} response_models.TripPlanResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/plans/{planId} [get]
func (p *PlanController) GetPlan(c *gin.Context) {
	plan, err := p.historyService.Get(c.Request.Context(), middleware.CurrentUsername(c), c.Param("planId"))
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	utils.RespondSuccess(c, services.ToTripPlanResponse(plan), "Travel plan fetched successfully")
}
