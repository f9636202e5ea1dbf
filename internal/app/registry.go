package app

import (
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/config"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/health"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/lifecycle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	logger *zap.Logger,
) {
	// --- Services ---
	lifecycleService := lifecycle.NewService(cfg.MaxBatchSize, logger)

	// --- Handlers ---
	healthHandler := health.NewHandler()
	lifecycleHandler := lifecycle.NewHandler(lifecycleService, logger)

	// --- Routes Registration ---
	health.RegisterRoutes(router, healthHandler)

	api := router.Group("/api/v1")
	{
		lifecycle.RegisterRoutes(api, lifecycleHandler, logger)
	}
}
