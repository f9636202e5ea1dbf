package health

import (
	"net/http"

	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const Path = "/health"

type StatusResponse struct {
	Status string `json:"status"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Check always reports healthy: the process has no dependencies whose state could degrade it.
func (h *Handler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, StatusResponse{Status: "healthy"}, nil)
}

func RegisterRoutes(r gin.IRoutes, handler *Handler) {
	r.GET(Path, handler.Check)
	r.HEAD(Path, handler.Check)
}
