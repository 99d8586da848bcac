package prompt_fx

import (
	"context"
	"fmt"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelstar/internal/config"
	"travelstar/internal/services"
	"travelstar/pkg/metrics"
	mem "travelstar/pkg/memcache"
	"travelstar/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	services.NewPromptService,
	services.NewRenderService,
	services.NewPlannerService,
)

// ProvideCompletionClient builds the inference client for LLM_PROVIDER and
// wraps it with the completion cache.
func ProvideCompletionClient(
	lc fx.Lifecycle,
	cfg *config.Config,
	store mem.CompletionStore,
	m *metrics.Metrics,
	log *zap.Logger,
) (utils.CompletionClientInterface, error) {
	inference := cfg.Inference

	var client utils.CompletionClientInterface
	switch inference.Provider {
	case config.ProviderHuggingFace:
		client = utils.NewOpenAICompletionClient(inference.Token, inference.BaseURL, inference.Model, inference.Timeout)
	case config.ProviderGemini:
		gemini, err := utils.NewGeminiCompletionClient(context.Background(), inference.Token, inference.Model, inference.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return gemini.Close() },
		})
		client = gemini
	default:
		return nil, fmt.Errorf("unsupported inference provider: %s", inference.Provider)
	}

	log.Info("Initialized inference client",
		zap.String("provider", inference.Provider),
		zap.String("model", client.Model()))

	if cfg.CacheTTL <= 0 {
		return client, nil
	}
	return mem.NewCachedCompletionClient(client, store, m.CacheHits.Inc), nil
}
