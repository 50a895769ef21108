package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/amanah_ledger/cmd/docs"
	portssvc "github.com/SscSPs/amanah_ledger/internal/core/ports/services"
	"github.com/SscSPs/amanah_ledger/internal/middleware"
	"github.com/SscSPs/amanah_ledger/internal/platform/config"
	"github.com/SscSPs/amanah_ledger/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	collector *metrics.Collector,
) error {
	if err := registerValidators(); err != nil {
		return err
	}

	r.GET("/health", getHealth)

	if cfg.MetricsEnabled && collector != nil {
		r.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimit, err)
	}
	mutationLimit := middleware.RateLimit(limiterInstance)

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerAccountRoutes(v1, services.Ledger)
	registerLedgerRoutes(v1, services.Ledger, services.Portfolio, mutationLimit)
	registerOrderRoutes(v1, services.Orders, mutationLimit)
	registerPortfolioRoutes(v1, services.Portfolio)
	registerHalalRoutes(v1, services.Halal)
	registerWatchlistRoutes(v1, services.Watchlist)
	registerMarketRoutes(v1, services.Market)
	registerProfileRoutes(v1, services.Profile)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// getHealth godoc
// @Summary Show the status of server.
// @Description Liveness probe.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": "amanah-ledger"})
}
