package booking

import (
	"context"
	"errors"
	"fmt"
	"log"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"gorm.io/gorm"
)

type paymentProvider interface {
	Pay(ctx context.Context, tx *gorm.DB, userID string, amountCents int64, currency, reference string) (string, error)
	Refund(ctx context.Context, tx *gorm.DB, userID string, amountCents int64, currency, reference string) (string, error)
	Payout(ctx context.Context, tx *gorm.DB, userID string, grossCents, commissionCents int64, currency, reference string) error
}

// Platform commission withheld from guide payouts, in basis points.
const commissionBps = 1000

func commissionFor(totalCents int64) int64 {
	return totalCents * commissionBps / 10000
}

type notifier interface {
	Push(ctx context.Context, userID, kind, title, body string) error
}

type Service struct {
	bookings *repository.BookingRepository
	events   *repository.EventRepository
	payments paymentProvider
	notify   notifier
}

func NewService(bookings *repository.BookingRepository, events *repository.EventRepository, payments paymentProvider, notify notifier) *Service {
	return &Service{bookings: bookings, events: events, payments: payments, notify: notify}
}

// Create reserves seats and opens a pending booking. The seat reservation
// and the booking row commit together, so a failure can never leak held
// seats. TotalCents is fixed here as seats * the event price at booking
// time; later price edits do not touch existing bookings.
func (s *Service) Create(ctx context.Context, userID string, req CreateBookingRequest) (*BookingView, error) {
	if req.Seats < 1 {
		return nil, ErrValidation
	}

	e, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("load event: %w", err)
	}
	if e.HostID == userID {
		return nil, ErrOwnEvent
	}
	if e.Status != domain.EventOpen {
		return nil, ErrNotBookable
	}

	b := &domain.Booking{
		EventID:    e.ID,
		UserID:     userID,
		Seats:      req.Seats,
		TotalCents: e.PriceCents * int64(req.Seats),
		Currency:   e.Currency,
		Status:     domain.BookingPending,
	}

	err = s.bookings.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reserved, txErr := s.events.ReserveSeats(ctx, tx, e.ID, req.Seats)
		if txErr != nil {
			return txErr
		}
		if !reserved {
			return ErrSoldOut
		}
		return s.bookings.Create(ctx, tx, b)
	})
	if err != nil {
		if errors.Is(err, ErrSoldOut) {
			return nil, ErrSoldOut
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.push(ctx, userID, "booking_created", "Booking received",
		fmt.Sprintf("Your booking for %q is pending payment.", e.Title))
	s.push(ctx, e.HostID, "booking_created", "New booking",
		fmt.Sprintf("%d seat(s) booked on %q.", req.Seats, e.Title))

	v := view(b)
	return &v, nil
}

// Pay debits the booker's wallet and confirms the booking. Wallet debit
// and status change are one transaction.
func (s *Service) Pay(ctx context.Context, userID, bookingID string) (*BookingView, error) {
	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if !b.Status.CanTransition(domain.BookingConfirmed) {
		return nil, ErrInvalidTransition
	}

	err = s.bookings.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		intentID, payErr := s.payments.Pay(ctx, tx, userID, b.TotalCents, b.Currency, "booking:"+b.ID)
		if payErr != nil {
			return payErr
		}
		return s.bookings.UpdateFields(ctx, tx, b.ID, map[string]any{
			"status":            domain.BookingConfirmed,
			"payment_intent_id": intentID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.push(ctx, userID, "booking_confirmed", "Booking confirmed",
		fmt.Sprintf("Payment received for booking %s.", b.ID))
	if b.Event != nil {
		s.push(ctx, b.Event.HostID, "booking_confirmed", "Booking paid",
			fmt.Sprintf("A booking on %q was paid.", b.Event.Title))
	}

	return s.View(ctx, userID, b.ID)
}

// Cancel releases the held seats. A paid booking is refunded to the
// wallet in the same transaction and ends refunded; an unpaid one ends
// cancelled.
func (s *Service) Cancel(ctx context.Context, userID, bookingID string) (*BookingView, error) {
	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	isHost := b.Event != nil && b.Event.HostID == userID
	if b.UserID != userID && !isHost {
		return nil, ErrForbidden
	}
	if !b.Status.CanTransition(domain.BookingCancelled) {
		return nil, ErrInvalidTransition
	}
	paid := b.Status == domain.BookingConfirmed

	err = s.bookings.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := s.events.ReleaseSeats(ctx, tx, b.EventID, b.Seats); txErr != nil {
			return txErr
		}
		status := domain.BookingCancelled
		if paid {
			if _, txErr := s.payments.Refund(ctx, tx, b.UserID, b.TotalCents, b.Currency, "booking:"+b.ID); txErr != nil {
				return txErr
			}
			status = domain.BookingRefunded
		}
		return s.bookings.UpdateFields(ctx, tx, b.ID, map[string]any{"status": status})
	})
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.push(ctx, b.UserID, "booking_cancelled", "Booking cancelled",
		fmt.Sprintf("Booking %s was cancelled.", b.ID))

	return s.View(ctx, userID, b.ID)
}

// Complete marks attendance and releases the guide's earnings. Only the
// event's guide can complete, and only a confirmed booking. The status
// change and the payout (gross minus platform commission) are one
// transaction.
func (s *Service) Complete(ctx context.Context, requesterID, bookingID string) (*BookingView, error) {
	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Event == nil || b.Event.HostID != requesterID {
		return nil, ErrForbidden
	}
	if !b.Status.CanTransition(domain.BookingCompleted) {
		return nil, ErrInvalidTransition
	}

	err = s.bookings.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := s.payments.Payout(ctx, tx, b.Event.HostID, b.TotalCents, commissionFor(b.TotalCents), b.Currency, "booking:"+b.ID); txErr != nil {
			return txErr
		}
		return s.bookings.UpdateFields(ctx, tx, b.ID, map[string]any{"status": domain.BookingCompleted})
	})
	if err != nil {
		return nil, fmt.Errorf("complete booking: %w", err)
	}

	s.push(ctx, b.UserID, "booking_completed", "Experience completed",
		"Thanks for joining. You can now leave a review.")
	s.push(ctx, b.Event.HostID, "payout_posted", "Earnings released",
		fmt.Sprintf("Payout for booking %s credited to your wallet.", b.ID))

	return s.View(ctx, requesterID, b.ID)
}

func (s *Service) ListMine(ctx context.Context, userID string, limit, offset int) ([]BookingView, error) {
	bookings, err := s.bookings.GetByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return views(bookings), nil
}

// ListForEvent returns an event's bookings to its guide.
func (s *Service) ListForEvent(ctx context.Context, requesterID, eventID string) ([]BookingView, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if e.HostID != requesterID {
		return nil, ErrForbidden
	}
	bookings, err := s.bookings.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return views(bookings), nil
}

// View returns one booking to its owner or the event's guide.
func (s *Service) View(ctx context.Context, requesterID, bookingID string) (*BookingView, error) {
	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	isHost := b.Event != nil && b.Event.HostID == requesterID
	if b.UserID != requesterID && !isHost {
		return nil, ErrForbidden
	}
	v := view(b)
	return &v, nil
}

func (s *Service) Stats(ctx context.Context, userID string) (*repository.BookingStats, error) {
	return s.bookings.GetStatsByUserID(ctx, userID)
}

func (s *Service) get(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) push(ctx context.Context, userID, kind, title, body string) {
	if s.notify == nil {
		return
	}
	if err := s.notify.Push(ctx, userID, kind, title, body); err != nil {
		log.Printf("notify user_id=%s kind=%s error=%v", userID, kind, err)
	}
}
