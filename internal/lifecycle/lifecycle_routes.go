package lifecycle

import (
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	group := r.Group("/lifecycle")
	group.Use(middleware.RequestID())
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/onboard", handler.Onboard)
		group.POST("/onboard/batch", handler.OnboardBatch)
		group.POST("/offboard", handler.Offboard)
	}
}
