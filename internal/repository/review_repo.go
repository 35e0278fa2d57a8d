package repository

import (
	"context"
	"errors"

	"localguide/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	var review domain.Review
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ReviewRepository) ListByEvent(ctx context.Context, eventID string, limit, offset int) ([]domain.Review, error) {
	return r.list(ctx, "event_id = ?", eventID, limit, offset)
}

func (r *ReviewRepository) ListByGuide(ctx context.Context, guideID string, limit, offset int) ([]domain.Review, error) {
	return r.list(ctx, "guide_id = ?", guideID, limit, offset)
}

func (r *ReviewRepository) list(ctx context.Context, cond string, arg string, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where(cond, arg).
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

// AggregateForGuide recomputes the guide's average rating from scratch.
func (r *ReviewRepository) AggregateForGuide(ctx context.Context, guideID string) (avg float64, count int64, err error) {
	row := struct {
		Avg   *float64
		Count int64
	}{}
	err = r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("guide_id = ?", guideID).
		Select("AVG(rating) as avg, COUNT(*) as count").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	if row.Avg != nil {
		avg = *row.Avg
	}
	return avg, row.Count, nil
}
