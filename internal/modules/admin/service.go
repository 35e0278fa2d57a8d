package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrVerificationNotFound = errors.New("verification not found")
	ErrNotReviewable        = errors.New("verification is not pending review")
	ErrUserNotFound         = errors.New("user not found")
	ErrReasonRequired       = errors.New("rejection reason required")
)

type notifier interface {
	Push(ctx context.Context, userID, kind, title, body string) error
}

type Service struct {
	verifications *repository.VerificationRepository
	users         *repository.UserRepository
	notify        notifier
}

func NewService(verifications *repository.VerificationRepository, users *repository.UserRepository, notify notifier) *Service {
	return &Service{verifications: verifications, users: users, notify: notify}
}

func (s *Service) PendingVerifications(ctx context.Context, limit, offset int) ([]domain.GuideVerification, int64, error) {
	return s.verifications.ListPending(ctx, limit, offset)
}

// ApproveVerification marks a pending submission verified, which unlocks
// listing publication for that guide.
func (s *Service) ApproveVerification(ctx context.Context, adminID, verificationID string) (*domain.GuideVerification, error) {
	v, err := s.pending(ctx, verificationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	v.Status = domain.VerificationVerified
	v.VerifiedAt = &now
	v.ReviewedBy = &adminID
	v.RejectionReason = ""
	if err := s.verifications.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("approve verification: %w", err)
	}

	s.push(ctx, v.UserID, "kyc_approved", "Verification approved",
		"Your identity is verified. You can now publish listings.")
	return v, nil
}

// RejectVerification sends the submission back with a reason. The guide
// may re-file afterwards.
func (s *Service) RejectVerification(ctx context.Context, adminID, verificationID, reason string) (*domain.GuideVerification, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}
	v, err := s.pending(ctx, verificationID)
	if err != nil {
		return nil, err
	}

	v.Status = domain.VerificationRejected
	v.ReviewedBy = &adminID
	v.RejectionReason = reason
	v.VerifiedAt = nil
	if err := s.verifications.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("reject verification: %w", err)
	}

	s.push(ctx, v.UserID, "kyc_rejected", "Verification rejected", reason)
	return v, nil
}

// SetUserBanned bans or unbans an account. A banned user cannot log in.
func (s *Service) SetUserBanned(ctx context.Context, userID string, banned bool) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.users.SetBanned(ctx, userID, banned); err != nil {
		return nil, err
	}
	u.IsBanned = banned
	if banned {
		s.push(ctx, userID, "account_banned", "Account suspended",
			"Your account has been suspended. Contact support for details.")
	}
	return u, nil
}

func (s *Service) pending(ctx context.Context, id string) (*domain.GuideVerification, error) {
	v, err := s.verifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	if v.Status != domain.VerificationPending {
		return nil, ErrNotReviewable
	}
	return v, nil
}

func (s *Service) push(ctx context.Context, userID, kind, title, body string) {
	if s.notify == nil {
		return
	}
	if err := s.notify.Push(ctx, userID, kind, title, body); err != nil {
		log.Printf("notify user_id=%s kind=%s error=%v", userID, kind, err)
	}
}
