package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	jwtsvc "localguide/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the web client's production host is fixed
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	hub     *Hub
	jwt     *jwtsvc.Service
	service *Service
}

func NewWSHandler(hub *Hub, jwt *jwtsvc.Service, service *Service) *WSHandler {
	return &WSHandler{hub: hub, jwt: jwt, service: service}
}

// HandleWebSocket serves GET /ws/chat?token=JWT. Browsers cannot set
// headers on websocket upgrades, so the token travels as a query param.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(userID, conn)
	log.Printf("chat ws connected user_id=%s", userID)

	defer func() {
		h.hub.Unregister(userID)
		log.Printf("chat ws disconnected user_id=%s", userID)
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})
	go h.pingLoop(conn)

	h.readLoop(conn, userID)
}

func (h *WSHandler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}

func (h *WSHandler) readLoop(conn *websocket.Conn, userID string) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("chat ws error user_id=%s: %v", userID, err)
			}
			return
		}

		var msg WSClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.sendError(conn, "INVALID_JSON", "Failed to parse message")
			continue
		}

		ctx := context.Background()
		switch msg.Type {
		case "message":
			if _, err := h.service.SendMessage(ctx, userID, msg.ThreadID, msg.Content); err != nil {
				h.sendError(conn, "SEND_FAILED", err.Error())
			}
		case "read":
			if err := h.service.MarkRead(ctx, userID, msg.ThreadID); err != nil {
				h.sendError(conn, "READ_FAILED", err.Error())
			}
		default:
			h.sendError(conn, "UNKNOWN_TYPE", "Unsupported message type")
		}
	}
}

func (h *WSHandler) sendError(conn *websocket.Conn, code, message string) {
	_ = conn.WriteJSON(WSServerMessage{Type: "error", Error: &WSError{Code: code, Message: message}})
}
