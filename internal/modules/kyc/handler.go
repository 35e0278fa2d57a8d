package kyc

import (
	"errors"
	"net/http"

	"localguide/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type SubmitRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	DocumentURL  string `json:"document_url" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	kycGroup := protected.Group("/kyc")
	{
		kycGroup.POST("", h.Submit)
		kycGroup.GET("/status", h.Status)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	v, err := h.service.Submit(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotGuide):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Only guides submit verification")
		case errors.Is(err, ErrInvalidDocument):
			response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Document type must be passport, id_card or license")
		case errors.Is(err, ErrAlreadyPending):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Verification is already pending review")
		case errors.Is(err, ErrAlreadyVerified):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Account is already verified")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to submit verification")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"verification": v})
}

func (h *Handler) Status(c *gin.Context) {
	v, err := h.service.Status(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, ErrNoSubmission) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "No verification submitted")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load verification status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"verification": v})
}
