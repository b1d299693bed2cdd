package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/platform/config"
	"github.com/SscSPs/currency_rates_app/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for handling JWT and refresh tokens.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:      cfg,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateAccessToken(user.ID, s.cfg.JWTSecret, s.cfg.AccessTokenTTL, s.cfg.JWTIssuer, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.Int64("user_id", user.ID))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken creates a new refresh token and replaces the stored one, so the
// previously issued token stops working.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	rawToken, tokenHash, err := utils.NewRefreshToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := s.now().Add(s.cfg.RefreshTokenTTL)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, tokenHash, expiresAt); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.Int64("user_id", user.ID))
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	user.RefreshTokenHash = &tokenHash
	user.RefreshTokenExpiryTime = &expiresAt
	return rawToken, expiresAt, nil
}

// ValidateRefreshToken looks the token up by its hash and checks that it has not expired.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, refreshTokenString string) (*domain.User, error) {
	if refreshTokenString == "" {
		return nil, fmt.Errorf("%w: refresh token is empty", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByRefreshTokenHash(ctx, utils.HashRefreshToken(refreshTokenString))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown refresh token", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenExpiryTime == nil || !s.now().Before(*user.RefreshTokenExpiryTime) {
		s.LogInfo(ctx, "Stored refresh token has expired", slog.Int64("user_id", user.ID))
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// --- GoogleOAuthHandlerSvcFacade Implementation ---

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange oauth code for token: %v", apperrors.ErrUnauthorized, err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: google ID token validation failed: %v", apperrors.ErrUnauthorized, err)
	}
	return payload, nil
}

// GetUserInfo reads the identity claims out of a validated ID token payload.
func (s *googleOAuthHandlerService) GetUserInfo(payload *idtoken.Payload) (*domain.GoogleUserInfo, error) {
	if payload == nil || payload.Subject == "" {
		return nil, fmt.Errorf("%w: id token has no subject", apperrors.ErrUnauthorized)
	}

	info := &domain.GoogleUserInfo{Subject: payload.Subject}
	info.Email, _ = payload.Claims["email"].(string)
	info.GivenName, _ = payload.Claims["given_name"].(string)
	info.FamilyName, _ = payload.Claims["family_name"].(string)
	switch v := payload.Claims["email_verified"].(type) {
	case bool:
		info.EmailVerified = v
	case string:
		info.EmailVerified = v == "true"
	}

	return info, nil
}
