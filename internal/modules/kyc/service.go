package kyc

import (
	"context"
	"errors"
	"time"

	"localguide/internal/domain"
	"localguide/internal/repository"
)

var (
	ErrNotGuide        = errors.New("only guides submit verification")
	ErrAlreadyPending  = errors.New("verification already pending")
	ErrAlreadyVerified = errors.New("already verified")
	ErrNoSubmission    = errors.New("no verification submitted")
	ErrInvalidDocument = errors.New("invalid document type")
)

var documentTypes = map[string]bool{
	"passport": true,
	"id_card":  true,
	"license":  true,
}

type Service struct {
	verifications *repository.VerificationRepository
	users         *repository.UserRepository
}

func NewService(verifications *repository.VerificationRepository, users *repository.UserRepository) *Service {
	return &Service{verifications: verifications, users: users}
}

// Submit files (or re-files after rejection) a guide's identity document.
func (s *Service) Submit(ctx context.Context, userID string, req SubmitRequest) (*domain.GuideVerification, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleGuide {
		return nil, ErrNotGuide
	}
	if !documentTypes[req.DocumentType] {
		return nil, ErrInvalidDocument
	}

	v, err := s.verifications.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if v == nil {
		v = &domain.GuideVerification{
			UserID:       userID,
			DocumentType: req.DocumentType,
			DocumentURL:  req.DocumentURL,
			Status:       domain.VerificationPending,
			SubmittedAt:  now,
		}
		return v, s.verifications.Create(ctx, v)
	}

	switch v.Status {
	case domain.VerificationPending:
		return nil, ErrAlreadyPending
	case domain.VerificationVerified:
		return nil, ErrAlreadyVerified
	}

	v.DocumentType = req.DocumentType
	v.DocumentURL = req.DocumentURL
	v.Status = domain.VerificationPending
	v.SubmittedAt = now
	v.RejectionReason = ""
	v.VerifiedAt = nil
	v.ReviewedBy = nil
	return v, s.verifications.Update(ctx, v)
}

func (s *Service) Status(ctx context.Context, userID string) (*domain.GuideVerification, error) {
	v, err := s.verifications.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNoSubmission
	}
	return v, nil
}

// IsVerified gates listing publication.
func (s *Service) IsVerified(ctx context.Context, userID string) (bool, error) {
	v, err := s.verifications.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return v != nil && v.Status == domain.VerificationVerified, nil
}
