package repository

import (
	"context"
	"errors"

	"localguide/internal/domain"

	"gorm.io/gorm"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(ctx context.Context, v *domain.GuideVerification) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VerificationRepository) GetByID(ctx context.Context, id string) (*domain.GuideVerification, error) {
	var v domain.GuideVerification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VerificationRepository) GetByUserID(ctx context.Context, userID string) (*domain.GuideVerification, error) {
	var v domain.GuideVerification
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *VerificationRepository) Update(ctx context.Context, v *domain.GuideVerification) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VerificationRepository) ListPending(ctx context.Context, limit, offset int) ([]domain.GuideVerification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	q := r.db.WithContext(ctx).Model(&domain.GuideVerification{}).Where("status = ?", domain.VerificationPending)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []domain.GuideVerification
	if err := q.Order("submitted_at asc").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
