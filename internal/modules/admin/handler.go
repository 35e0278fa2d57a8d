package admin

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

// RegisterRoutes expects a group already behind JWT + admin role checks.
func (h *Handler) RegisterRoutes(adminGroup *gin.RouterGroup) {
	adminGroup.GET("/verifications", h.PendingVerifications)
	adminGroup.POST("/verifications/:id/approve", h.Approve)
	adminGroup.POST("/verifications/:id/reject", h.Reject)
	adminGroup.POST("/users/:id/ban", h.Ban)
	adminGroup.POST("/users/:id/unban", h.Unban)
}

func (h *Handler) PendingVerifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, total, err := h.service.PendingVerifications(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load verifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"verifications": items, "total": total})
}

func (h *Handler) Approve(c *gin.Context) {
	v, err := h.service.ApproveVerification(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to approve verification")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"verification": v})
}

type rejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *Handler) Reject(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Rejection reason is required")
		return
	}

	v, err := h.service.RejectVerification(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Reason)
	if err != nil {
		h.writeServiceError(c, err, "Failed to reject verification")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"verification": v})
}

func (h *Handler) Ban(c *gin.Context) {
	u, err := h.service.SetUserBanned(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		h.writeServiceError(c, err, "Failed to ban user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) Unban(c *gin.Context) {
	u, err := h.service.SetUserBanned(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		h.writeServiceError(c, err, "Failed to unban user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrVerificationNotFound), errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, ErrNotReviewable):
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, fallback)
	}
}
