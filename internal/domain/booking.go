package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRefunded  BookingStatus = "refunded"
)

// bookingTransitions encodes the one-directional lifecycle:
// pending -> confirmed -> completed, with cancellation possible until
// completion and refund only after cancellation of a paid booking.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
	BookingCancelled: {BookingRefunded},
}

// CanTransition reports whether from -> to is an allowed status change.
func (from BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingRefunded
}

// Booking reserves seats on an Event. TotalCents is always
// seats * event price at creation time, in minor units.
type Booking struct {
	ID              string        `json:"id" gorm:"primaryKey;size:36"`
	EventID         string        `json:"event_id" gorm:"size:36;index;not null"`
	UserID          string        `json:"user_id" gorm:"size:36;index;not null"`
	Seats           int           `json:"seats" gorm:"not null"`
	TotalCents      int64         `json:"total_cents" gorm:"not null"`
	Currency        string        `json:"currency" gorm:"size:3;not null"`
	Status          BookingStatus `json:"status" gorm:"size:16;not null;default:pending;index"`
	PaymentIntentID *string       `json:"payment_intent_id,omitempty" gorm:"size:64"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID;references:ID"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
