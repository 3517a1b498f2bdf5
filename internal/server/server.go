package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-extract/backend/config"
	"github.com/pageza/recipe-extract/backend/internal/api"
	"github.com/pageza/recipe-extract/backend/internal/fetch"
	"github.com/pageza/recipe-extract/backend/internal/middleware"
	"github.com/pageza/recipe-extract/backend/internal/router"
	"github.com/pageza/recipe-extract/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *zap.Logger
}

// New wires the services and handlers for cfg. redisClient may be nil, in
// which case requests are not rate limited.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *zap.Logger) *Server {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	fetcher := fetch.NewClient(cfg.FetchTimeout, cfg.FetchMaxBodyBytes, cfg.FetchUserAgent)
	extractor := service.NewRecipeExtractor(fetcher, cfg.RepairJSONLD)
	ingredients := service.NewIngredientService()
	imports := service.NewImportService(db, extractor)

	limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window: cfg.RateLimitWindow,
		Limit:  cfg.RateLimitRequests,
	})

	engine := router.SetupRouter(log, cfg.CORSOrigins, limiter, router.Handlers{
		Parse:   api.NewParseHandler(ingredients, extractor),
		Imports: api.NewImportHandler(imports),
		Health:  api.NewHealthHandler(db),
	})

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Handler exposes the routed engine, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until the server is shut down
func (s *Server) Start() error {
	s.log.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
