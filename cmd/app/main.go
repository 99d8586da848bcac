package main

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"log"
	"net/http"
	"time"
	"travelstar/cmd/fx/account_fx"
	"travelstar/cmd/fx/config_fx"
	"travelstar/cmd/fx/controllers_fx"
	"travelstar/cmd/fx/db_fx"
	"travelstar/cmd/fx/history_fx"
	"travelstar/cmd/fx/memcache_fx"
	"travelstar/cmd/fx/prompt_fx"
	"travelstar/internal/config"
)

// @title Travelstar API
// @version 1.0
// @description AI travel itinerary planner
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		Modules(),
	)

	app.Run()
}

func Modules() fx.Option {
	return fx.Options(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		history_fx.Module,
		prompt_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
