package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by their (lower-case) email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByGoogleSubject retrieves a user linked to a Google account.
	FindUserByGoogleSubject(ctx context.Context, subject string) (*domain.User, error)

	// FindUserByRefreshTokenHash retrieves the user holding the given refresh token hash.
	FindUserByRefreshTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and returns it with its assigned ID.
	// A taken email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateRefreshToken stores the hash and expiry of the user's current refresh token.
	UpdateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error

	// ClearRefreshToken removes the user's refresh token.
	ClearRefreshToken(ctx context.Context, userID int64) error

	// UpdateLastLogin records a successful sign-in.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error

	// LinkGoogleSubject attaches a Google account to an existing user.
	LinkGoogleSubject(ctx context.Context, userID int64, subject string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
