package repository

import (
	"context"
	"time"

	"localguide/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

func (r *BookingRepository) Create(ctx context.Context, tx *gorm.DB, b *domain.Booking) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).Preload("Event").Preload("Event.Host").Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Event").Preload("Event.Host").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByEvent(ctx context.Context, eventID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return r.UpdateFields(ctx, nil, id, map[string]any{"status": status})
}

// UpdateFields applies column updates within the caller's transaction when
// tx is non-nil.
func (r *BookingRepository) UpdateFields(ctx context.Context, tx *gorm.DB, id string, updates map[string]any) error {
	if tx == nil {
		tx = r.db
	}
	updates["updated_at"] = time.Now()
	return tx.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).Updates(updates).Error
}

// HasCompletedBooking reports whether a user holds a completed booking for
// the event, which is what makes them review-eligible.
func (r *BookingRepository) HasCompletedBooking(ctx context.Context, userID, eventID string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ? AND status = ?", userID, eventID, domain.BookingCompleted).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type BookingStats struct {
	Total     int64
	Upcoming  int64
	Completed int64
	Cancelled int64
}

func (r *BookingRepository) GetStatsByUserID(ctx context.Context, userID string) (*BookingStats, error) {
	stats := &BookingStats{}
	base := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("user_id = ?", userID)

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status IN ?", []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).Count(&stats.Upcoming).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", domain.BookingCompleted).Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status IN ?", []domain.BookingStatus{domain.BookingCancelled, domain.BookingRefunded}).Count(&stats.Cancelled).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *BookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Count(&count).Error
	return count, err
}

// RevenueCents sums confirmed and completed booking totals, in minor units.
func (r *BookingRepository) RevenueCents(ctx context.Context) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("status IN ?", []domain.BookingStatus{domain.BookingConfirmed, domain.BookingCompleted}).
		Select("SUM(total_cents)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
