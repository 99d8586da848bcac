package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelstar/internal/config"
	"travelstar/pkg/logger"
	"travelstar/pkg/metrics"
	"travelstar/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	metrics.New,
	provideSessionSigner,
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogLevel, zap.String("service", "travelstar"))
}

// Without SESSION_SECRET every restart signs out all users.
func provideSessionSigner(cfg *config.Config, log *zap.Logger) (*utils.SessionSigner, error) {
	secret := cfg.SessionSecret
	if secret == "" {
		generated, err := utils.GenerateSecureToken(32)
		if err != nil {
			return nil, err
		}
		secret = generated
		log.Warn("SESSION_SECRET not set, using a random key; sessions will not survive a restart")
	}
	return utils.NewSessionSigner(secret), nil
}
