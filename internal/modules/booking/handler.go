package booking

import (
	"errors"
	"net/http"
	"strconv"

	"localguide/internal/modules/wallet"
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
	b := protected.Group("/bookings")
	{
		b.POST("", h.Create)
		b.GET("", h.ListMine)
		b.GET("/stats", h.Stats)
		b.GET("/:id", h.Get)
		b.POST("/:id/pay", h.Pay)
		b.POST("/:id/cancel", h.Cancel)
		b.POST("/:id/complete", h.Complete)
	}
	protected.GET("/events/:id/bookings", h.ListForEvent)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	v, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create booking")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": v})
}

func (h *Handler) ListMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.ListMine(c.Request.Context(), c.GetString("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load booking stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.View(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": v})
}

func (h *Handler) Pay(c *gin.Context) {
	v, err := h.service.Pay(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to pay for booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": v})
}

func (h *Handler) Cancel(c *gin.Context) {
	v, err := h.service.Cancel(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to cancel booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": v})
}

func (h *Handler) Complete(c *gin.Context) {
	v, err := h.service.Complete(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to complete booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": v})
}

func (h *Handler) ListForEvent(c *gin.Context) {
	bookings, err := h.service.ListForEvent(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to load event bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Booking not found")
	case errors.Is(err, ErrEventNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Event not found")
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrOwnEvent):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid booking data")
	case errors.Is(err, ErrNotBookable), errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	case errors.Is(err, ErrSoldOut):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Not enough seats left")
	case errors.Is(err, wallet.ErrInsufficientFunds):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Insufficient wallet balance")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, fallback)
	}
}
