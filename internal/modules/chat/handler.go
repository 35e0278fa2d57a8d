package chat

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
	chat := protected.Group("/chat")
	{
		chat.POST("/threads", h.CreateThread)
		chat.GET("/threads", h.ListThreads)
		chat.GET("/threads/:id/messages", h.GetMessages)
		chat.POST("/threads/:id/messages", h.SendMessage)
		chat.POST("/threads/:id/read", h.MarkRead)
	}
}

func (h *Handler) CreateThread(c *gin.Context) {
	var req CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	thread, initial, err := h.service.GetOrCreateThread(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to open conversation")
		return
	}

	out := gin.H{"thread": thread}
	if initial != nil {
		out["initial_message"] = initial
	}
	response.Success(c, http.StatusCreated, out)
}

func (h *Handler) ListThreads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	threads, err := h.service.ListThreads(c.Request.Context(), c.GetString("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load conversations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"threads": threads})
}

func (h *Handler) GetMessages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.service.Messages(c.Request.Context(), c.GetString("user_id"), c.Param("id"), limit, offset)
	if err != nil {
		h.writeServiceError(c, err, "Failed to load messages")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	m, err := h.service.SendMessage(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Content)
	if err != nil {
		h.writeServiceError(c, err, "Failed to send message")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": m})
}

func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err, "Failed to mark conversation read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrThreadNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Conversation not found")
	case errors.Is(err, ErrRecipientNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Recipient not found")
	case errors.Is(err, ErrNotParticipant):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, "You are not part of this conversation")
	case errors.Is(err, ErrEmptyContent), errors.Is(err, ErrCannotMessageSelf):
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, fallback)
	}
}
