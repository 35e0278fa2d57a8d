package wallet

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	w := protected.Group("/wallet")
	{
		w.GET("", h.Get)
		w.GET("/transactions", h.History)
		w.POST("/topup", h.Topup)
		w.POST("/withdraw", h.Withdraw)
	}
}

func (h *Handler) Get(c *gin.Context) {
	w, err := h.service.Get(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load wallet")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wallet": walletResponse(w)})
}

func (h *Handler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.service.History(c.Request.Context(), c.GetString("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load transactions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transactions": entries})
}

func (h *Handler) Topup(c *gin.Context) {
	var req TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	entry, err := h.service.Topup(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to top up wallet")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"transaction": entry})
}

func (h *Handler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	entry, err := h.service.Withdraw(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to withdraw")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"transaction": entry})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Amount must be positive")
	case errors.Is(err, ErrInsufficientFunds):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Insufficient wallet balance")
	case errors.Is(err, ErrCurrencyMismatch):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Wallet currency does not match")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, fallback)
	}
}
