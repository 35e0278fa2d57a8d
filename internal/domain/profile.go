package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the public face of a user. One per account.
type Profile struct {
	ID          string   `json:"id" gorm:"primaryKey;size:36"`
	UserID      string   `json:"user_id" gorm:"size:36;uniqueIndex;not null"`
	FullName    string   `json:"full_name"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Languages   []string `json:"languages" gorm:"serializer:json;type:json"`
	Interests   []string `json:"interests" gorm:"serializer:json;type:json"`
	City        string   `json:"city,omitempty"`
	RatingAvg   float64  `json:"rating_avg"`
	RatingCount int      `json:"rating_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationRejected   VerificationStatus = "rejected"
)

// GuideVerification is the KYC record a guide must pass before publishing
// listings. One active record per user.
type GuideVerification struct {
	ID              string             `json:"id" gorm:"primaryKey;size:36"`
	UserID          string             `json:"user_id" gorm:"size:36;uniqueIndex;not null"`
	DocumentType    string             `json:"document_type" gorm:"size:32"` // passport, id_card, license
	DocumentURL     string             `json:"document_url"`
	Status          VerificationStatus `json:"status" gorm:"size:16;not null;default:unverified"`
	SubmittedAt     time.Time          `json:"submitted_at"`
	VerifiedAt      *time.Time         `json:"verified_at,omitempty"`
	ReviewedBy      *string            `json:"reviewed_by,omitempty" gorm:"size:36"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func (GuideVerification) TableName() string { return "guide_verifications" }

func (v *GuideVerification) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
