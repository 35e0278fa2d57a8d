package catalog

import (
	"errors"
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

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	events := v1.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterGuideRoutes(guide *gin.RouterGroup) {
	events := guide.Group("/events")
	{
		events.GET("/my", h.ListMine)
		events.POST("", h.Create)
		events.PUT("/:id", h.Update)
		events.POST("/:id/publish", h.Publish)
		events.POST("/:id/cancel", h.Cancel)
		events.POST("/:id/complete", h.Complete)
	}
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid query parameters")
		return
	}

	events, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load events")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"events": events,
		"total":  total,
	})
}

func (h *Handler) Get(c *gin.Context) {
	e, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Event not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) ListMine(c *gin.Context) {
	var q ListQuery
	_ = c.ShouldBindQuery(&q)

	events, total, err := h.service.ListByHost(c.Request.Context(), c.GetString("user_id"), q.Limit, q.Offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load listings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"events": events,
		"total":  total,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create event")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"event": e})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) Publish(c *gin.Context) {
	e, err := h.service.Publish(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to publish event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) Cancel(c *gin.Context) {
	e, err := h.service.Cancel(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to cancel event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) Complete(c *gin.Context) {
	e, err := h.service.Complete(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to complete event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Event not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, "You don't own this event")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid event data")
	case errors.Is(err, ErrGuideNotVerified):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, "Verification required before publishing")
	case errors.Is(err, ErrTerminalStatus), errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Event status does not allow this operation")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, fallback)
	}
}
