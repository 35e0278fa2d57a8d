package review

import (
	"errors"
	"net/http"
	"strconv"

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
	v1.GET("/events/:id/reviews", h.ListByEvent)
	v1.GET("/guides/:id/reviews", h.ListByGuide)
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/reviews", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Event not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Rating must be between 1 and 5")
		case errors.Is(err, ErrNotEligible):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Only completed bookings can be reviewed")
		case errors.Is(err, ErrAlreadyExists):
			response.Error(c, http.StatusConflict, response.CodeConflict, "This booking is already reviewed")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create review")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": r})
}

func (h *Handler) ListByEvent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.service.ListByEvent(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) ListByGuide(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.service.ListByGuide(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}
