package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review can only be written against a completed booking.
type Review struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	ReviewerID string    `json:"reviewer_id" gorm:"size:36;index;not null"`
	GuideID    string    `json:"guide_id" gorm:"size:36;index;not null"`
	EventID    string    `json:"event_id" gorm:"size:36;index;not null"`
	BookingID  string    `json:"booking_id" gorm:"size:36;uniqueIndex;not null"`
	Rating     int       `json:"rating" gorm:"not null"` // 1..5
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`

	Reviewer *Profile `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID;references:UserID"`
}

func (Review) TableName() string { return "reviews" }

func (r *Review) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
