package profile

import (
	"context"
	"errors"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("profile not found")

type Service struct {
	profiles *repository.ProfileRepository
}

func NewService(profiles *repository.ProfileRepository) *Service {
	return &Service{profiles: profiles}
}

// Get resolves a public profile. Every id the API hands out (event host,
// review guide, registered user) is a user id, so that lookup comes first;
// the profile's own id is accepted as a fallback.
func (s *Service) Get(ctx context.Context, id string) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p, err = s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.Profile, error) {
	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.Languages != nil {
		p.Languages = req.Languages
	}
	if req.Interests != nil {
		p.Interests = req.Interests
	}

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) SetAvatar(ctx context.Context, userID, url string) (*domain.Profile, error) {
	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.AvatarURL = url
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
