package memcache_fx

import (
	"go.uber.org/fx"
	"travelstar/internal/config"
	mem "travelstar/pkg/memcache"
)

var Module = fx.Provide(provideCompletionStore)

func provideCompletionStore(cfg *config.Config) mem.CompletionStore {
	return mem.NewCompletionCache(cfg.CacheTTL)
}
