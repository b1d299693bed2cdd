package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/dto"
	"github.com/SscSPs/currency_rates_app/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, now: time.Now}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// normalizeEmail case-folds an email so that lookups and uniqueness ignore case.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
		AuthProvider: domain.ProviderLocal,
		CreatedAt:    s.now(),
	}

	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			fe := apperrors.FieldErrors{}
			fe.Add("email", "User with this email already exists.")
			return nil, fe
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", saved.ID))
	return saved, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Keep response timing close to the wrong-password path.
			utils.BurnPasswordCheck(password)
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) || !user.IsActive {
		s.LogDebug(ctx, "Rejected login", slog.Int64("user_id", user.ID))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	s.touchLastLogin(ctx, user)
	return user, nil
}

func (s *userService) GetOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	email := normalizeEmail(info.Email)
	if info.Subject == "" || email == "" || !info.EmailVerified {
		return nil, fmt.Errorf("%w: google account has no verified email", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByGoogleSubject(ctx, info.Subject)
	if err == nil {
		return s.activeGoogleUser(ctx, user)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	user, err = s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.userRepo.LinkGoogleSubject(ctx, user.ID, info.Subject); err != nil {
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
		subject := info.Subject
		user.GoogleSubject = &subject
		s.LogInfo(ctx, "Linked google account", slog.Int64("user_id", user.ID))
		return s.activeGoogleUser(ctx, user)
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	subject := info.Subject
	created, err := s.userRepo.SaveUser(ctx, domain.User{
		Email:         email,
		FirstName:     info.GivenName,
		LastName:      info.FamilyName,
		IsActive:      true,
		AuthProvider:  domain.ProviderGoogle,
		GoogleSubject: &subject,
		CreatedAt:     s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}
	s.LogInfo(ctx, "User registered via google", slog.Int64("user_id", created.ID))
	return s.activeGoogleUser(ctx, created)
}

func (s *userService) activeGoogleUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", apperrors.ErrUnauthorized)
	}
	s.touchLastLogin(ctx, user)
	return user, nil
}

// touchLastLogin records the sign-in. Failure is logged and does not block the login.
func (s *userService) touchLastLogin(ctx context.Context, user *domain.User) {
	at := s.now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, at); err != nil {
		s.LogError(ctx, err, "Failed to update last login", slog.Int64("user_id", user.ID))
		return
	}
	user.LastLoginAt = &at
}
