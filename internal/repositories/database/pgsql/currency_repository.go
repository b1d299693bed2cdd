package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_rates_app/internal/models"
	"github.com/SscSPs/currency_rates_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrencies registers charcodes, leaving existing rows untouched.
func (r *PgxCurrencyRepository) SaveCurrencies(ctx context.Context, charcodes []string) (int, error) {
	if len(charcodes) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO currencies (charcode)
		VALUES ($1)
		ON CONFLICT (charcode) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, code := range charcodes {
		batch.Queue(query, code)
	}

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for _, code := range charcodes {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to save currency %s: %w", code, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	query := `
		SELECT id, charcode, created_at
		FROM currencies
		WHERE id = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&modelCurr.ID,
		&modelCurr.Charcode,
		&modelCurr.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: currency with ID %d", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find currency by ID %d: %w", id, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT id, charcode, created_at
		FROM currencies
		ORDER BY charcode;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.ID,
			&currency.Charcode,
			&currency.CreatedAt,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// IsEmpty reports whether no currency has been registered yet.
func (r *PgxCurrencyRepository) IsEmpty(ctx context.Context) (bool, error) {
	var empty bool
	if err := r.Pool.QueryRow(ctx, `SELECT NOT EXISTS (SELECT 1 FROM currencies);`).Scan(&empty); err != nil {
		return false, fmt.Errorf("failed to check currency registry: %w", err)
	}
	return empty, nil
}
