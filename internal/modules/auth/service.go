package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"localguide/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}

// provider avatars mirror the demo accounts the social-login simulation
// has always returned.
var providerAvatars = map[string]string{
	"google":   "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=150&q=80",
	"facebook": "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=150&q=80",
}

// Service contains all business logic for authentication
type Service struct {
	users         UserRepositoryInterface
	profiles      ProfileRepositoryInterface
	verifications VerificationRepositoryInterface
	jwt           jwtService
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(
	users UserRepositoryInterface,
	profiles ProfileRepositoryInterface,
	verifications VerificationRepositoryInterface,
	jwt jwtService,
) *Service {
	return &Service{
		users:         users,
		profiles:      profiles,
		verifications: verifications,
		jwt:           jwt,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	role := domain.RoleTourist
	if req.Role != "" {
		parsed, ok := domain.ParseRole(req.Role)
		if !ok || parsed == domain.RoleAdmin {
			return nil, ErrInvalidRole
		}
		role = parsed
	}

	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	tx := s.users.DB().WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	profile := &domain.Profile{
		UserID:    user.ID,
		FullName:  req.FullName,
		City:      req.City,
		Languages: []string{},
		Interests: []string{},
	}
	if err := tx.Create(profile).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// guides start unverified and must pass KYC before publishing
	if role == domain.RoleGuide {
		verification := &domain.GuideVerification{
			UserID: user.ID,
			Status: domain.VerificationUnverified,
		}
		if err := tx.Create(verification).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	user.Profile = profile
	return s.issueToken(user)
}

// Login authenticates by email and password. The role in the result always
// comes from the stored account, never from the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsBanned || !user.IsActive {
		return nil, ErrAccountBanned
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	_ = s.users.TouchLastLogin(ctx, user.ID)

	return s.issueToken(user)
}

// LoginWithProvider simulates a social login. The provider account is
// provisioned on first use with a provider-tagged email and avatar.
func (s *Service) LoginWithProvider(ctx context.Context, provider string) (*LoginResult, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	avatar, ok := providerAvatars[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}

	email := fmt.Sprintf("alex@%s.com", provider)
	return s.getOrProvision(ctx, email, domain.RoleTourist, fmt.Sprintf("Alex (%s)", provider), avatar)
}

// DemoLogin provisions (or reuses) a demo account carrying the requested
// role. The issued session reflects the stored account's role, so the
// requested role round-trips without any post-login override.
func (s *Service) DemoLogin(ctx context.Context, roleStr string) (*LoginResult, error) {
	role, ok := domain.ParseRole(roleStr)
	if !ok {
		return nil, ErrInvalidRole
	}
	email := fmt.Sprintf("demo-%s@localguide.example", role)
	return s.getOrProvision(ctx, email, role, "Alex Traveler", "")
}

func (s *Service) getOrProvision(ctx context.Context, email string, role domain.UserRole, fullName, avatarURL string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if user.IsBanned || !user.IsActive {
			return nil, ErrAccountBanned
		}
		_ = s.users.TouchLastLogin(ctx, user.ID)
		return s.issueToken(user)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &domain.User{
		Email:    email,
		Role:     role,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		UserID:    user.ID,
		FullName:  fullName,
		AvatarURL: avatarURL,
		Languages: []string{"English"},
		Interests: []string{"Food", "Photography"},
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	user.Profile = profile
	return s.issueToken(user)
}

// Logout acknowledges the teardown. Sessions are stateless bearer tokens,
// so there is nothing server-side to invalidate; the client discards the
// token deterministically.
func (s *Service) Logout(_ context.Context) error {
	return nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) issueToken(user *domain.User) (*LoginResult, error) {
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func userResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.Profile != nil {
		resp.FullName = u.Profile.FullName
		resp.AvatarURL = u.Profile.AvatarURL
		resp.City = u.Profile.City
	}
	return resp
}
