package repositories

import (
	"context"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its surrogate id.
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// ListCurrencies retrieves all known currencies ordered by charcode.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// IsEmpty reports whether the registry has no currencies yet.
	IsEmpty(ctx context.Context) (bool, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrencies registers the given charcodes, skipping ones already present.
	// It returns the number of rows actually inserted.
	SaveCurrencies(ctx context.Context, charcodes []string) (int, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
