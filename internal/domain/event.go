package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventOpen      EventStatus = "open"
	EventFull      EventStatus = "full"
	EventCancelled EventStatus = "cancelled"
	EventCompleted EventStatus = "completed"
)

// IsTerminal reports whether no further status change is allowed.
func (s EventStatus) IsTerminal() bool {
	return s == EventCancelled || s == EventCompleted
}

type EventVisibility string

const (
	VisibilityPublic  EventVisibility = "public"
	VisibilityPrivate EventVisibility = "private"
)

type ItineraryItem struct {
	Order       int    `json:"order"`
	Time        string `json:"time,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Event is a bookable listing run by a guide.
// All monetary amounts are integer minor units.
type Event struct {
	ID              string          `json:"id" gorm:"primaryKey;size:36"`
	HostID          string          `json:"host_id" gorm:"size:36;index;not null"`
	Title           string          `json:"title" gorm:"not null"`
	Description     string          `json:"description"`
	Category        string          `json:"category" gorm:"size:64;index"`
	City            string          `json:"city" gorm:"size:128;index"`
	Lat             float64         `json:"lat"`
	Lng             float64         `json:"lng"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	MinParticipants int             `json:"min_participants" gorm:"not null;default:1"`
	MaxParticipants int             `json:"max_participants" gorm:"not null"`
	SeatsBooked     int             `json:"seats_booked" gorm:"not null;default:0"`
	PriceCents      int64           `json:"price_cents" gorm:"not null"`
	Currency        string          `json:"currency" gorm:"size:3;not null;default:USD"`
	Status          EventStatus     `json:"status" gorm:"size:16;not null;default:draft;index"`
	Visibility      EventVisibility `json:"visibility" gorm:"size:16;not null;default:public"`
	Images          []string        `json:"images" gorm:"serializer:json;type:json"`
	Itinerary       []ItineraryItem `json:"itinerary" gorm:"serializer:json;type:json"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Host *Profile `json:"host,omitempty" gorm:"foreignKey:HostID;references:UserID"`
}

func (Event) TableName() string { return "events" }

func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// SeatsLeft never goes below zero even if SeatsBooked drifted past capacity.
func (e *Event) SeatsLeft() int {
	left := e.MaxParticipants - e.SeatsBooked
	if left < 0 {
		return 0
	}
	return left
}
