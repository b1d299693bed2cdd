package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_rates_app/internal/models"
	"github.com/SscSPs/currency_rates_app/internal/utils/mapping"
	"github.com/SscSPs/currency_rates_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for rate data.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

// ListRates retrieves rates matching q ordered by (value, id) in the requested direction.
// With a positive limit one extra row is fetched to decide whether a next page exists.
func (r *PgxRateRepository) ListRates(ctx context.Context, q domain.RateQuery) ([]domain.Rate, *string, error) {
	if q.Charcodes != nil && len(q.Charcodes) == 0 {
		return []domain.Rate{}, nil, nil
	}

	var (
		conds []string
		args  []any
	)
	addCond := func(format string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if q.Charcodes != nil {
		addCond("charcode = ANY($%d)", q.Charcodes)
	}
	if q.Charcode != "" {
		addCond("charcode = $%d", q.Charcode)
	}
	if q.DateFrom != nil {
		addCond("date >= $%d", *q.DateFrom)
	}
	if q.DateTo != nil {
		addCond("date <= $%d", *q.DateTo)
	}

	direction, cmp := "ASC", ">"
	if q.Order.Descending() {
		direction, cmp = "DESC", "<"
	}

	if q.NextToken != nil && *q.NextToken != "" {
		lastValue, lastID, err := pagination.DecodeRateCursor(*q.NextToken)
		if err != nil {
			fe := apperrors.FieldErrors{}
			fe.Add("next_token", "Invalid pagination token.")
			return nil, nil, fe
		}
		// Tuple comparison keeps the cursor stable across equal values.
		args = append(args, lastValue, lastID)
		conds = append(conds, fmt.Sprintf("(value, id) %s ($%d, $%d)", cmp, len(args)-1, len(args)))
	}

	var sb strings.Builder
	sb.WriteString("SELECT id, date, charcode, value FROM rates")
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	fmt.Fprintf(&sb, " ORDER BY value %s, id %s", direction, direction)

	fetchLimit := 0
	if q.Limit > 0 {
		fetchLimit = q.Limit + 1
		args = append(args, fetchLimit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rate, error) {
		var m models.Rate
		err := row.Scan(&m.ID, &m.Date, &m.Charcode, &m.Value)
		return m, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan rates: %w", err)
	}

	var nextToken *string
	if fetchLimit > 0 && len(modelRates) > q.Limit {
		last := modelRates[q.Limit-1]
		token := pagination.EncodeRateCursor(last.Value, last.ID)
		nextToken = &token
		modelRates = modelRates[:q.Limit]
	}

	return mapping.ToDomainRateSlice(modelRates), nextToken, nil
}

// ListCharcodesForDate returns the charcodes already stored for date.
func (r *PgxRateRepository) ListCharcodesForDate(ctx context.Context, date time.Time) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT charcode FROM rates WHERE date = $1;`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query charcodes for %s: %w", date.Format(time.DateOnly), err)
	}
	defer rows.Close()

	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan charcodes for %s: %w", date.Format(time.DateOnly), err)
	}
	return codes, nil
}

// SaveRates inserts rates in one batch. Rows whose (date, charcode) already exists are skipped.
func (r *PgxRateRepository) SaveRates(ctx context.Context, rates []domain.Rate) (int, error) {
	if len(rates) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO rates (date, charcode, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (date, charcode) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, rate := range rates {
		m := mapping.ToModelRate(rate)
		batch.Queue(query, m.Date, m.Charcode, m.Value)
	}

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for _, rate := range rates {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert rate %s on %s: %w", rate.Charcode, rate.Date.Format(time.DateOnly), err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
