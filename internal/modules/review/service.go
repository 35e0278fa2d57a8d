package review

import (
	"context"
	"errors"
	"fmt"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	reviews  *repository.ReviewRepository
	bookings *repository.BookingRepository
	events   *repository.EventRepository
	profiles *repository.ProfileRepository
}

func NewService(reviews *repository.ReviewRepository, bookings *repository.BookingRepository, events *repository.EventRepository, profiles *repository.ProfileRepository) *Service {
	return &Service{reviews: reviews, bookings: bookings, events: events, profiles: profiles}
}

// Create writes a review for an event the reviewer actually attended.
// Eligibility is a completed booking, and each booking reviews at most
// once. The guide's denormalized rating is refreshed afterwards.
func (s *Service) Create(ctx context.Context, reviewerID string, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	e, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("load event: %w", err)
	}

	b, err := s.bookings.HasCompletedBooking(ctx, reviewerID, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEligible
		}
		return nil, err
	}

	taken, err := s.reviews.ExistsForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAlreadyExists
	}

	r := &domain.Review{
		ReviewerID: reviewerID,
		GuideID:    e.HostID,
		EventID:    e.ID,
		BookingID:  b.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if err := s.refreshGuideRating(ctx, e.HostID); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListByEvent(ctx context.Context, eventID string, limit, offset int) ([]domain.Review, error) {
	return s.reviews.ListByEvent(ctx, eventID, limit, offset)
}

func (s *Service) ListByGuide(ctx context.Context, guideID string, limit, offset int) ([]domain.Review, error) {
	return s.reviews.ListByGuide(ctx, guideID, limit, offset)
}

func (s *Service) refreshGuideRating(ctx context.Context, guideID string) error {
	avg, count, err := s.reviews.AggregateForGuide(ctx, guideID)
	if err != nil {
		return err
	}
	return s.profiles.SetRating(ctx, guideID, avg, count)
}
