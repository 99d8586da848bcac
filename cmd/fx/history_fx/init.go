package history_fx

import (
	"go.uber.org/fx"
	"travelstar/internal/services"
)

var Module = fx.Provide(services.NewHistoryService)
