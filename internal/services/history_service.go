package services

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelstar/internal/models/db_models"
	"travelstar/internal/models/request_models"
	"travelstar/internal/models/response_models"
	"travelstar/internal/repositories"
	"travelstar/pkg/utils"
)

type HistoryServiceInterface interface {
	Save(ctx context.Context, username string, request request_models.TripRequest, rendered response_models.RenderedPlan, raw, model string) (*db_models.TripPlan, error)
	ListFor(ctx context.Context, username string) ([]db_models.TripPlan, error)
	Get(ctx context.Context, username, planID string) (*db_models.TripPlan, error)
}

type HistoryService struct {
	planRepo repositories.TripPlanRepository
	log      *zap.Logger
}

func NewHistoryService(planRepo repositories.TripPlanRepository, log *zap.Logger) HistoryServiceInterface {
	return &HistoryService{
		planRepo: planRepo,
		log:      log,
	}
}

func (h *HistoryService) Save(ctx context.Context,
	username string,
	request request_models.TripRequest,
	rendered response_models.RenderedPlan,
	raw, model string) (*db_models.TripPlan, error) {

	plan := &db_models.TripPlan{
		Username:    username,
		Destination: request.Destination,
		Days:        request.Days,
		Budget:      request.Budget,
		Currency:    request.Currency,
		Interests:   append([]string{}, request.Interests...),
		Season:      request.Season,
		TravelStyle: request.TravelStyle,
		GroupSize:   request.GroupSize,
		Notes:       request.Notes,
		Model:       model,
		RawResponse: raw,
		Title:       rendered.Title,
		Itinerary:   rendered.Itinerary,
		BudgetText:  rendered.Budget,
		Tips:        rendered.Tips,
		PackingList: rendered.PackingList,
	}
	plan.Stamp()

	if err := h.planRepo.Insert(ctx, plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}

	return plan, nil
}

func (h *HistoryService) ListFor(ctx context.Context, username string) ([]db_models.TripPlan, error) {
	plans, err := h.planRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	if plans == nil {
		plans = []db_models.TripPlan{}
	}
	return plans, nil
}

func (h *HistoryService) Get(ctx context.Context, username, planID string) (*db_models.TripPlan, error) {
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := h.planRepo.FindByID(ctx, username, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

// ToTripPlanResponse flattens a stored plan for the API and templates.
func ToTripPlanResponse(plan *db_models.TripPlan) response_models.TripPlanResponse {
	return response_models.TripPlanResponse{
		ID:          plan.ID.String(),
		Destination: plan.Destination,
		Days:        plan.Days,
		Budget:      plan.Budget,
		Currency:    plan.Currency,
		Interests:   plan.Interests,
		Season:      plan.Season,
		TravelStyle: plan.TravelStyle,
		GroupSize:   plan.GroupSize,
		Notes:       plan.Notes,
		Sections: response_models.RenderedPlan{
			Title:       plan.Title,
			Itinerary:   plan.Itinerary,
			Budget:      plan.BudgetText,
			Tips:        plan.Tips,
			PackingList: plan.PackingList,
		},
		SeasonNote: SeasonNote(plan.Season),
		CreatedAt:  utils.FormatDisplay(plan.CreatedAt),
	}
}

func ToHistoryEntries(plans []db_models.TripPlan) []response_models.HistoryEntryResponse {
	entries := make([]response_models.HistoryEntryResponse, 0, len(plans))
	for _, p := range plans {
		entries = append(entries, response_models.HistoryEntryResponse{
			ID:          p.ID.String(),
			Destination: p.Destination,
			Title:       p.Title,
			Days:        p.Days,
			CreatedAt:   utils.FormatDisplay(p.CreatedAt),
		})
	}
	return entries
}
