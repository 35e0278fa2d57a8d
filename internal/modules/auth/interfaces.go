package auth

import (
	"context"

	"localguide/internal/domain"

	"gorm.io/gorm"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	TouchLastLogin(ctx context.Context, id string) error
	DB() *gorm.DB
}

type ProfileRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

type VerificationRepositoryInterface interface {
	Create(ctx context.Context, v *domain.GuideVerification) error
	GetByUserID(ctx context.Context, userID string) (*domain.GuideVerification, error)
}
