package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pageza/recipe-extract/backend/internal/api"
	"github.com/pageza/recipe-extract/backend/internal/metrics"
	"github.com/pageza/recipe-extract/backend/internal/middleware"
)

// Handlers groups the HTTP handlers the router mounts
type Handlers struct {
	Parse   *api.ParseHandler
	Imports *api.ImportHandler
	Health  *api.HealthHandler
}

// SetupRouter configures the application routes
func SetupRouter(log *zap.Logger, corsOrigins []string, limiter *middleware.RateLimiter, h Handlers) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestLogger(log),
		middleware.Recovery(),
		metrics.Middleware(),
		middleware.CORS(corsOrigins),
	)

	rateLimit := limiter.RateLimitMiddleware()

	// Parsing endpoints live at the root and under the versioned API
	h.Parse.RegisterRoutes(router, rateLimit)

	v1 := router.Group("/api/v1")
	h.Parse.RegisterRoutes(v1, rateLimit)
	h.Imports.RegisterRoutes(v1, rateLimit)

	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(middleware.NotFound)

	return router
}
