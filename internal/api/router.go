package api

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
	"travelstar/internal/api/controllers"
	"travelstar/internal/web"
	"travelstar/pkg/metrics"
	"travelstar/pkg/middleware"
)

type RouterParams struct {
	AccountController *controllers.AccountController
	PlanController    *controllers.PlanController
	PageController    *controllers.PageController
	Sessions          middleware.SessionResolver
	Metrics           *metrics.Metrics
	Log               *zap.Logger
	EnablePprof       bool
}

func NewRouter(p RouterParams) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log, p.Metrics))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SessionMiddleware(p.Sessions))
	r.SetHTMLTemplate(tmpl)

	RegisterRoutes(r, p)

	if p.EnablePprof {
		pprof.Register(r)
	}

	return r, nil
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	pages := p.PageController

	r.GET("/", pages.Home)
	r.GET("/tips", pages.Tips)
	r.GET("/login", pages.LoginPage)
	r.POST("/login", pages.Login)
	r.GET("/register", pages.RegisterPage)
	r.POST("/register", pages.Register)
	r.POST("/logout", pages.Logout)

	userPages := r.Group("/", middleware.RequirePageUser())
	userPages.POST("/plan", pages.GeneratePlan)
	userPages.GET("/history", pages.History)
	userPages.GET("/history/:planId", pages.HistoryDetail)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	apiGroup := r.Group("/api")

	accountGroup := apiGroup.Group("/accounts")
	accountGroup.POST("/register", p.AccountController.Register)
	accountGroup.POST("/login", p.AccountController.Login)

	planGroup := apiGroup.Group("/plans", middleware.RequireAPIUser())
	planGroup.POST("", p.PlanController.GeneratePlan)
	planGroup.GET("", p.PlanController.ListPlans)
	planGroup.GET("/:planId", p.PlanController.GetPlan)

	r.NoRoute(pages.NotFound)
}
