package chat

import "localguide/internal/domain"

type CreateThreadRequest struct {
	RecipientID    string  `json:"recipient_id" binding:"required"`
	EventID        *string `json:"event_id"`
	InitialMessage string  `json:"initial_message"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// WSClientMessage is what a connected client may push over the socket.
type WSClientMessage struct {
	Type     string `json:"type"` // "message" or "read"
	ThreadID string `json:"thread_id"`
	Content  string `json:"content,omitempty"`
}

// WSServerMessage is the envelope pushed to connected participants.
type WSServerMessage struct {
	Type    string              `json:"type"`
	Message *domain.ChatMessage `json:"message,omitempty"`
	Error   *WSError            `json:"error,omitempty"`
}

type WSError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
