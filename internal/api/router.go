// Package api serves the projection engine over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/isday/compound-calculator/internal/api/handlers"
	"github.com/isday/compound-calculator/internal/api/middleware"
	"github.com/isday/compound-calculator/internal/calculation"
	"github.com/isday/compound-calculator/internal/config"
	"github.com/isday/compound-calculator/internal/i18n"
	"github.com/isday/compound-calculator/internal/metrics"
)

// NewRouter builds the gin engine with middleware and every route
func NewRouter(cfg config.ServerConfig, logger calculation.Logger) *gin.Engine {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	metrics.Init()

	router := gin.New()

	// Apply middleware
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())

	engine := calculation.NewCalculationEngine()
	engine.MaxPeriods = cfg.MaxPeriods
	engine.SetLogger(logger)

	fallback, _ := i18n.ParseTag(cfg.DefaultLang)
	langHandler := handlers.NewLanguageHandler(i18n.Default(), fallback)
	projectionHandler := handlers.NewProjectionHandler(engine, langHandler)
	evaluateHandler := handlers.NewEvaluateHandler(langHandler)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/languages", langHandler.ListLanguages)

		api.POST("/projections", projectionHandler.Project)
		api.POST("/projections/export", projectionHandler.Export)
		api.POST("/comparisons", projectionHandler.Compare)

		api.POST("/evaluate", evaluateHandler.Evaluate)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
