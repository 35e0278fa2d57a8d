package repository

import (
	"context"
	"strings"

	"localguide/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) DB() *gorm.DB { return r.db }

// EventFilters narrows a catalog listing. Zero values mean "no filter".
type EventFilters struct {
	City          string
	Category      string
	Query         string
	PriceMinCents int64
	PriceMaxCents int64
	HostID        string
	Statuses      []domain.EventStatus
	PublicOnly    bool
	Limit         int
	Offset        int
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).Preload("Host").Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EventRepository) List(ctx context.Context, f EventFilters) ([]domain.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{})

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Query != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(f.Query)) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if f.PriceMinCents > 0 {
		q = q.Where("price_cents >= ?", f.PriceMinCents)
	}
	if f.PriceMaxCents > 0 {
		q = q.Where("price_cents <= ?", f.PriceMaxCents)
	}
	if f.HostID != "" {
		q = q.Where("host_id = ?", f.HostID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if f.PublicOnly {
		q = q.Where("visibility = ?", domain.VisibilityPublic)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var events []domain.Event
	if err := q.Preload("Host").Order("start_time asc").Limit(limit).Offset(offset).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ReserveSeats atomically claims seats on an open event. Returns false when
// the event is not open or has fewer seats left than requested.
func (r *EventRepository) ReserveSeats(ctx context.Context, tx *gorm.DB, eventID string, seats int) (bool, error) {
	if tx == nil {
		tx = r.db
	}
	res := tx.WithContext(ctx).Model(&domain.Event{}).
		Where("id = ? AND status = ? AND seats_booked + ? <= max_participants", eventID, domain.EventOpen, seats).
		Update("seats_booked", gorm.Expr("seats_booked + ?", seats))
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	// flip to full once capacity is reached
	err := tx.WithContext(ctx).Model(&domain.Event{}).
		Where("id = ? AND status = ? AND seats_booked >= max_participants", eventID, domain.EventOpen).
		Update("status", domain.EventFull).Error
	return true, err
}

// ReleaseSeats gives seats back after a cancellation and reopens a full event.
func (r *EventRepository) ReleaseSeats(ctx context.Context, tx *gorm.DB, eventID string, seats int) error {
	if tx == nil {
		tx = r.db
	}
	if err := tx.WithContext(ctx).Model(&domain.Event{}).
		Where("id = ?", eventID).
		Update("seats_booked", gorm.Expr("CASE WHEN seats_booked >= ? THEN seats_booked - ? ELSE 0 END", seats, seats)).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Model(&domain.Event{}).
		Where("id = ? AND status = ? AND seats_booked < max_participants", eventID, domain.EventFull).
		Update("status", domain.EventOpen).Error
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Event{}).Where("id = ?", id).Update("status", status).Error
}

func (r *EventRepository) CountByStatus(ctx context.Context, status domain.EventStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Event{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
