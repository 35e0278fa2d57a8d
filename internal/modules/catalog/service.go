package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"gorm.io/gorm"
)

type kycChecker interface {
	IsVerified(ctx context.Context, userID string) (bool, error)
}

type Service struct {
	events *repository.EventRepository
	kyc    kycChecker
}

func NewService(events *repository.EventRepository, kyc kycChecker) *Service {
	return &Service{events: events, kyc: kyc}
}

// List returns the public catalog: open and full listings, public
// visibility only.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Event, int64, error) {
	return s.events.List(ctx, repository.EventFilters{
		City:          q.City,
		Category:      q.Category,
		Query:         q.Query,
		PriceMinCents: q.PriceMin,
		PriceMaxCents: q.PriceMax,
		Statuses:      []domain.EventStatus{domain.EventOpen, domain.EventFull},
		PublicOnly:    true,
		Limit:         q.Limit,
		Offset:        q.Offset,
	})
}

func (s *Service) ListByHost(ctx context.Context, hostID string, limit, offset int) ([]domain.Event, int64, error) {
	return s.events.List(ctx, repository.EventFilters{
		HostID: hostID,
		Limit:  limit,
		Offset: offset,
	})
}

// Get looks an event up by id. A missing id is ErrNotFound, never a panic.
func (s *Service) Get(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, hostID string, req CreateEventRequest) (*domain.Event, error) {
	if err := validateSchedule(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.PriceCents < 0 {
		return nil, ErrValidation
	}
	minP := req.MinParticipants
	if minP <= 0 {
		minP = 1
	}
	if req.MaxParticipants < minP {
		return nil, ErrValidation
	}

	status := domain.EventDraft
	if req.Publish {
		verified, err := s.kyc.IsVerified(ctx, hostID)
		if err != nil {
			return nil, err
		}
		if !verified {
			return nil, ErrGuideNotVerified
		}
		status = domain.EventOpen
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	visibility := domain.VisibilityPublic
	if req.Visibility == string(domain.VisibilityPrivate) {
		visibility = domain.VisibilityPrivate
	}

	e := &domain.Event{
		HostID:          hostID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		City:            req.City,
		Lat:             req.Lat,
		Lng:             req.Lng,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MinParticipants: minP,
		MaxParticipants: req.MaxParticipants,
		PriceCents:      req.PriceCents,
		Currency:        currency,
		Status:          status,
		Visibility:      visibility,
		Images:          req.Images,
		Itinerary:       req.Itinerary,
	}

	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, hostID, eventID string, req UpdateEventRequest) (*domain.Event, error) {
	e, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.HostID != hostID {
		return nil, ErrForbidden
	}
	if e.Status.IsTerminal() {
		return nil, ErrTerminalStatus
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.City != nil {
		e.City = *req.City
	}
	if req.Lat != nil {
		e.Lat = *req.Lat
	}
	if req.Lng != nil {
		e.Lng = *req.Lng
	}
	if req.StartTime != nil {
		e.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		e.EndTime = *req.EndTime
	}
	if err := validateSchedule(e.StartTime, e.EndTime); err != nil {
		return nil, err
	}
	if req.MinParticipants != nil && *req.MinParticipants > 0 {
		e.MinParticipants = *req.MinParticipants
	}
	if req.MaxParticipants != nil {
		if *req.MaxParticipants < e.MinParticipants || *req.MaxParticipants < e.SeatsBooked {
			return nil, ErrValidation
		}
		e.MaxParticipants = *req.MaxParticipants
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, ErrValidation
		}
		e.PriceCents = *req.PriceCents
	}
	if req.Visibility != nil {
		switch domain.EventVisibility(*req.Visibility) {
		case domain.VisibilityPublic, domain.VisibilityPrivate:
			e.Visibility = domain.EventVisibility(*req.Visibility)
		default:
			return nil, ErrValidation
		}
	}
	if req.Images != nil {
		e.Images = req.Images
	}
	if req.Itinerary != nil {
		e.Itinerary = req.Itinerary
	}

	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Publish moves a draft to open. Requires a verified guide.
func (s *Service) Publish(ctx context.Context, hostID, eventID string) (*domain.Event, error) {
	e, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.HostID != hostID {
		return nil, ErrForbidden
	}
	if e.Status != domain.EventDraft {
		return nil, ErrInvalidTransition
	}

	verified, err := s.kyc.IsVerified(ctx, hostID)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrGuideNotVerified
	}

	e.Status = domain.EventOpen
	return e, s.events.Update(ctx, e)
}

// Cancel is allowed from any non-terminal status.
func (s *Service) Cancel(ctx context.Context, hostID, eventID string) (*domain.Event, error) {
	return s.moveToTerminal(ctx, hostID, eventID, domain.EventCancelled)
}

// Complete marks a finished event. Only open or full events complete.
func (s *Service) Complete(ctx context.Context, hostID, eventID string) (*domain.Event, error) {
	e, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.Status != domain.EventOpen && e.Status != domain.EventFull {
		return nil, ErrInvalidTransition
	}
	return s.moveToTerminal(ctx, hostID, eventID, domain.EventCompleted)
}

func (s *Service) moveToTerminal(ctx context.Context, hostID, eventID string, to domain.EventStatus) (*domain.Event, error) {
	e, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.HostID != hostID {
		return nil, ErrForbidden
	}
	if e.Status.IsTerminal() {
		return nil, ErrTerminalStatus
	}
	e.Status = to
	return e, s.events.Update(ctx, e)
}

func validateSchedule(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return ErrValidation
	}
	return nil
}
