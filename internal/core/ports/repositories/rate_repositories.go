package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
)

// RateReader defines read operations for rate data
type RateReader interface {
	// ListRates returns rates matching q ordered by value (then id) and, when q.Limit is set,
	// a token for the next page.
	ListRates(ctx context.Context, q domain.RateQuery) ([]domain.Rate, *string, error)

	// ListCharcodesForDate returns the charcodes that already have a rate on date.
	ListCharcodesForDate(ctx context.Context, date time.Time) ([]string, error)
}

// RateWriter defines write operations for rate data
type RateWriter interface {
	// SaveRates inserts rates, silently skipping any (date, charcode) that already exists.
	// It returns the number of rows actually inserted.
	SaveRates(ctx context.Context, rates []domain.Rate) (int, error)
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
