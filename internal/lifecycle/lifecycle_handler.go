package lifecycle

import (
	"net/http"

	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/apperror"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("lifecycle.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lifecycle.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("lifecycle request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Onboard(c *gin.Context) {
	h.logger.Debug("http onboard employee")
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http onboard employee bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Onboard(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) OnboardBatch(c *gin.Context) {
	h.logger.Debug("http onboard batch")
	var req OnboardBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http onboard batch bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	items, err := h.service.OnboardBatch(c.Request.Context(), req.Requests)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	succeeded := lo.CountBy(items, func(item OnboardBatchItem) bool {
		return item.Ok
	})
	meta := response.NewBatchMeta(len(items), succeeded)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Offboard(c *gin.Context) {
	h.logger.Debug("http offboard employee")
	var req OffboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http offboard employee bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Offboard(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
