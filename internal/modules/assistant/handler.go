package assistant

import (
	"net/http"

	"localguide/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	ai := protected.Group("/ai")
	{
		ai.POST("/assistant", h.Chat)
		ai.POST("/planner", h.GeneratePlan)
	}
}

func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Message is required")
		return
	}
	response.Success(c, http.StatusOK, h.service.Chat(c.Request.Context(), req.Message))
}

func (h *Handler) GeneratePlan(c *gin.Context) {
	var req TripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Destination is required")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"plan": h.service.GeneratePlan(c.Request.Context(), req)})
}
