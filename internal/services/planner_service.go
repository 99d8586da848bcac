package services

import (
	"context"
	"go.uber.org/zap"
	"time"
	"travelstar/internal/models/request_models"
	"travelstar/internal/models/response_models"
	"travelstar/pkg/metrics"
	"travelstar/pkg/utils"
)

const DefaultCurrency = "INR"

type PlannerServiceInterface interface {
	// Generate runs one interaction: validate, build the prompt, call the model,
	// render the answer and record it in the user's history. A failed save does
	// not fail the call; the plan comes back with Saved=false and a warning.
	Generate(ctx context.Context, username string, request request_models.TripRequest) (*response_models.GenerationResponse, error)
}

type PlannerService struct {
	promptService  PromptServiceInterface
	renderService  RenderServiceInterface
	historyService HistoryServiceInterface
	llm            utils.CompletionClientInterface
	metrics        *metrics.Metrics
	log            *zap.Logger
}

func NewPlannerService(
	promptService PromptServiceInterface,
	renderService RenderServiceInterface,
	historyService HistoryServiceInterface,
	llm utils.CompletionClientInterface,
	m *metrics.Metrics,
	log *zap.Logger,
) PlannerServiceInterface {
	return &PlannerService{
		promptService:  promptService,
		renderService:  renderService,
		historyService: historyService,
		llm:            llm,
		metrics:        m,
		log:            log,
	}
}

func (p *PlannerService) Generate(ctx context.Context, username string, request request_models.TripRequest) (*response_models.GenerationResponse, error) {
	request.Normalize()
	if request.Currency == "" {
		request.Currency = DefaultCurrency
	}
	if err := request.Validate(); err != nil {
		p.metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return nil, err
	}

	prompt := p.promptService.Build(request)

	startTime := time.Now()
	raw, err := p.llm.Generate(ctx, prompt)
	p.metrics.ObserveInference(startTime)
	if err != nil {
		p.metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeInferenceFail).Inc()
		p.log.Warn("itinerary generation failed",
			zap.String("username", username),
			zap.String("destination", request.Destination),
			zap.Duration("elapsed", time.Since(startTime)),
			zap.Error(err))
		return nil, err
	}

	p.log.Info("itinerary generated",
		zap.String("username", username),
		zap.String("destination", request.Destination),
		zap.Int("days", request.Days),
		zap.Duration("elapsed", time.Since(startTime)))

	rendered := p.renderService.Render(raw)

	resp := &response_models.GenerationResponse{}
	plan, err := p.historyService.Save(ctx, username, request, rendered, raw, p.llm.Model())
	if err != nil {
		p.metrics.PersistenceFailures.Inc()
		p.metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeSaveFailed).Inc()
		p.log.Error("saving travel plan failed", zap.String("username", username), zap.Error(err))

		resp.Plan = response_models.TripPlanResponse{
			Destination: request.Destination,
			Days:        request.Days,
			Budget:      request.Budget,
			Currency:    request.Currency,
			Interests:   request.Interests,
			Season:      request.Season,
			TravelStyle: request.TravelStyle,
			GroupSize:   request.GroupSize,
			Notes:       request.Notes,
			Sections:    rendered,
			SeasonNote:  SeasonNote(request.Season),
			CreatedAt:   utils.FormatDisplay(time.Now()),
		}
		resp.Warning = utils.UserMessage(err)
		return resp, nil
	}

	p.metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	resp.Plan = ToTripPlanResponse(plan)
	resp.Saved = true
	return resp, nil
}
