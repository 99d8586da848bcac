package controllers_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelstar/internal/api"
	"travelstar/internal/api/controllers"
	"travelstar/internal/config"
	"travelstar/pkg/metrics"
	"travelstar/pkg/middleware"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewPageController),
	fx.Provide(ProvideRouter),
)

func ProvideRouter(
	cfg *config.Config,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	pageController *controllers.PageController,
	sessions middleware.SessionResolver,
	m *metrics.Metrics,
	log *zap.Logger,
) (*gin.Engine, error) {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(api.RouterParams{
		AccountController: accountController,
		PlanController:    planController,
		PageController:    pageController,
		Sessions:          sessions,
		Metrics:           m,
		Log:               log,
		EnablePprof:       cfg.PprofEnabled,
	})
}
