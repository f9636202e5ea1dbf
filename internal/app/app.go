package app

import (
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.L()
	}

	// Register Modules & Routes
	registerModules(router, cfg, logger)

	logger.Info("routes registered",
		zap.Int("max_batch_size", cfg.MaxBatchSize),
		zap.Int("routes", len(router.Routes())),
	)
	return nil
}
