package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatThread is a two-party conversation. Participants are stored in
// sorted order so the (A,B) pair is unique regardless of who wrote first.
type ChatThread struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	ParticipantA string    `json:"participant_a" gorm:"size:36;index:idx_thread_pair,unique;not null"`
	ParticipantB string    `json:"participant_b" gorm:"size:36;index:idx_thread_pair,unique;not null"`
	EventID      *string   `json:"event_id,omitempty" gorm:"size:36;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	LastMessage *ChatMessage `json:"last_message,omitempty" gorm:"-"`
	Other       *Profile     `json:"other,omitempty" gorm:"-"`
	UnreadCount int64        `json:"unread_count" gorm:"-"`
}

func (ChatThread) TableName() string { return "chat_threads" }

func (t *ChatThread) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (t *ChatThread) HasParticipant(userID string) bool {
	return t.ParticipantA == userID || t.ParticipantB == userID
}

type ChatMessage struct {
	ID        string     `json:"id" gorm:"primaryKey;size:36"`
	ThreadID  string     `json:"thread_id" gorm:"size:36;index;not null"`
	SenderID  string     `json:"sender_id" gorm:"size:36;not null"`
	Content   string     `json:"content" gorm:"not null"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

func (m *ChatMessage) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
