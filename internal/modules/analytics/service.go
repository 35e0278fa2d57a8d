package analytics

import (
	"context"

	"localguide/internal/domain"
	"localguide/internal/pkg/money"
	"localguide/internal/repository"
)

type Overview struct {
	Users struct {
		Tourists int64 `json:"tourists"`
		Guides   int64 `json:"guides"`
		Admins   int64 `json:"admins"`
	} `json:"users"`
	Events struct {
		Open      int64 `json:"open"`
		Full      int64 `json:"full"`
		Completed int64 `json:"completed"`
		Cancelled int64 `json:"cancelled"`
	} `json:"events"`
	Bookings         int64  `json:"bookings"`
	RevenueCents     int64  `json:"revenue_cents"`
	RevenueFormatted string `json:"revenue_formatted"`
}

type Service struct {
	users    *repository.UserRepository
	events   *repository.EventRepository
	bookings *repository.BookingRepository
}

func NewService(users *repository.UserRepository, events *repository.EventRepository, bookings *repository.BookingRepository) *Service {
	return &Service{users: users, events: events, bookings: bookings}
}

// Overview aggregates the platform-wide numbers the admin dashboard
// shows. Revenue counts confirmed and completed bookings, in minor units.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var o Overview
	var err error

	if o.Users.Tourists, err = s.users.CountByRole(ctx, domain.RoleTourist); err != nil {
		return nil, err
	}
	if o.Users.Guides, err = s.users.CountByRole(ctx, domain.RoleGuide); err != nil {
		return nil, err
	}
	if o.Users.Admins, err = s.users.CountByRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if o.Events.Open, err = s.events.CountByStatus(ctx, domain.EventOpen); err != nil {
		return nil, err
	}
	if o.Events.Full, err = s.events.CountByStatus(ctx, domain.EventFull); err != nil {
		return nil, err
	}
	if o.Events.Completed, err = s.events.CountByStatus(ctx, domain.EventCompleted); err != nil {
		return nil, err
	}
	if o.Events.Cancelled, err = s.events.CountByStatus(ctx, domain.EventCancelled); err != nil {
		return nil, err
	}

	if o.Bookings, err = s.bookings.CountAll(ctx); err != nil {
		return nil, err
	}
	if o.RevenueCents, err = s.bookings.RevenueCents(ctx); err != nil {
		return nil, err
	}
	o.RevenueFormatted = money.Format(o.RevenueCents, "USD")
	return &o, nil
}
