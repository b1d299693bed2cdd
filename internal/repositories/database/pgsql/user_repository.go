package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_rates_app/internal/models"
	"github.com/SscSPs/currency_rates_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, password_hash, first_name, last_name, is_active, is_staff, is_superuser,
	auth_provider, google_subject, created_at, last_login_at, refresh_token_hash, refresh_token_expires_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.ID,
		&m.Email,
		&m.PasswordHash,
		&m.FirstName,
		&m.LastName,
		&m.IsActive,
		&m.IsStaff,
		&m.IsSuperuser,
		&m.AuthProvider,
		&m.GoogleSubject,
		&m.CreatedAt,
		&m.LastLoginAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	return m, err
}

func (r *PgxUserRepository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM app_users WHERE ` + where + `;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.findOne(ctx, "id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *PgxUserRepository) FindUserByGoogleSubject(ctx context.Context, subject string) (*domain.User, error) {
	return r.findOne(ctx, "google_subject = $1", subject)
}

func (r *PgxUserRepository) FindUserByRefreshTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	return r.findOne(ctx, "refresh_token_hash = $1", tokenHash)
}

// SaveUser inserts a new user and returns it with the generated id and created_at.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO app_users (email, password_hash, first_name, last_name, is_active, is_staff, is_superuser,
			auth_provider, google_subject, last_login_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns + `;
	`
	saved, err := scanUser(r.Pool.QueryRow(ctx, query,
		m.Email,
		m.PasswordHash,
		m.FirstName,
		m.LastName,
		m.IsActive,
		m.IsStaff,
		m.IsSuperuser,
		m.AuthProvider,
		m.GoogleSubject,
		m.LastLoginAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user with email %s", apperrors.ErrDuplicate, m.Email)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	u := mapping.ToDomainUser(saved)
	return &u, nil
}

func (r *PgxUserRepository) exec(ctx context.Context, userID int64, query string, args ...any) error {
	tag, err := r.Pool.Exec(ctx, query, append([]any{userID}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	return r.exec(ctx, userID,
		`UPDATE app_users SET refresh_token_hash = $2, refresh_token_expires_at = $3 WHERE id = $1;`,
		tokenHash, expiresAt)
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	return r.exec(ctx, userID,
		`UPDATE app_users SET refresh_token_hash = NULL, refresh_token_expires_at = NULL WHERE id = $1;`)
}

func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	return r.exec(ctx, userID, `UPDATE app_users SET last_login_at = $2 WHERE id = $1;`, at)
}

func (r *PgxUserRepository) LinkGoogleSubject(ctx context.Context, userID int64, subject string) error {
	err := r.exec(ctx, userID, `UPDATE app_users SET google_subject = $2 WHERE id = $1;`, subject)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: google account already linked", apperrors.ErrDuplicate)
	}
	return err
}
