package db_fx

import (
	"context"
	"fmt"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelstar/internal/config"
	"travelstar/internal/infra"
	"travelstar/internal/repositories"
)

var Module = fx.Provide(provideStores)

// provideStores opens the history store selected by STORE_DRIVER and closes
// it when the app stops.
func provideStores(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (repositories.AccountRepository, repositories.TripPlanRepository, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, coll, err := infra.InitMongo(context.Background(), cfg.Store.Mongo, log)
		if err != nil {
			return nil, nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.CloseMongo(ctx, client, log)
				return nil
			},
		})
		return repositories.NewMongoAccountRepository(coll), repositories.NewMongoTripPlanRepository(coll), nil

	case config.DriverPostgres:
		db, err := infra.InitPostgresql(cfg.Store.Postgres.URL, log)
		if err != nil {
			return nil, nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.ClosePostgresql(db, log)
				return nil
			},
		})
		return repositories.NewAccountRepository(db), repositories.NewTripPlanRepository(db), nil

	case config.DriverMemory:
		log.Warn("using in-memory store, accounts and history are lost on restart")
		store := repositories.NewMemoryStore()
		return store, store, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}
