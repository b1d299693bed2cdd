package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_rates_app/internal/models"
	"github.com/SscSPs/currency_rates_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserCurrencyRepository struct {
	BaseRepository
}

// newPgxUserCurrencyRepository creates a new repository for watchlist data.
func newPgxUserCurrencyRepository(pool *pgxpool.Pool) portsrepo.UserCurrencyRepositoryWithTx {
	return &PgxUserCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserCurrencyRepositoryWithTx = (*PgxUserCurrencyRepository)(nil)

// ListUserCurrencies returns the user's watchlist.
func (r *PgxUserCurrencyRepository) ListUserCurrencies(ctx context.Context, userID int64) ([]domain.UserCurrency, error) {
	query := `
		SELECT id, user_id, charcode, threshold, created_at, updated_at
		FROM user_currencies
		WHERE user_id = $1
		ORDER BY charcode;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist for user %d: %w", userID, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.UserCurrency, error) {
		var m models.UserCurrency
		err := row.Scan(&m.ID, &m.UserID, &m.Charcode, &m.Threshold, &m.CreatedAt, &m.UpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan watchlist for user %d: %w", userID, err)
	}
	return mapping.ToDomainUserCurrencySlice(entries), nil
}

// UpsertUserCurrencyTx writes the (user, charcode) entry inside tx.
// An existing entry keeps its id and created_at; only threshold and updated_at change.
func (r *PgxUserCurrencyRepository) UpsertUserCurrencyTx(ctx context.Context, tx pgx.Tx, entry domain.UserCurrency) (*domain.UserCurrency, error) {
	query := `
		INSERT INTO user_currencies (user_id, charcode, threshold)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, charcode) DO UPDATE SET
			threshold = EXCLUDED.threshold,
			updated_at = NOW()
		RETURNING id, user_id, charcode, threshold, created_at, updated_at;
	`
	var m models.UserCurrency
	err := tx.QueryRow(ctx, query, entry.UserID, entry.Charcode, entry.Threshold).Scan(
		&m.ID, &m.UserID, &m.Charcode, &m.Threshold, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert watchlist entry %s for user %d: %w", entry.Charcode, entry.UserID, err)
	}
	uc := mapping.ToDomainUserCurrency(m)
	return &uc, nil
}
