package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleTourist UserRole = "tourist"
	RoleGuide   UserRole = "guide"
	RoleAdmin   UserRole = "admin"
)

func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleTourist, RoleGuide, RoleAdmin:
		return UserRole(s), true
	// "host" is a legacy alias for guide kept for old clients
	case "host":
		return RoleGuide, true
	}
	return "", false
}

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role" gorm:"size:16;not null;default:tourist"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	IsBanned     bool      `json:"-" gorm:"not null;default:false"`
	LastLoginAt  *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
