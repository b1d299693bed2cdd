package repositories

import (
	"context"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserCurrencyReader defines read operations for watchlist data
type UserCurrencyReader interface {
	// ListUserCurrencies returns the user's watchlist ordered by charcode.
	ListUserCurrencies(ctx context.Context, userID int64) ([]domain.UserCurrency, error)
}

// UserCurrencyWriter defines write operations for watchlist data
type UserCurrencyWriter interface {
	// UpsertUserCurrencyTx creates the (user, charcode) entry or updates its threshold, inside tx.
	UpsertUserCurrencyTx(ctx context.Context, tx pgx.Tx, entry domain.UserCurrency) (*domain.UserCurrency, error)
}

// UserCurrencyRepositoryFacade combines all watchlist-related repository interfaces
type UserCurrencyRepositoryFacade interface {
	UserCurrencyReader
	UserCurrencyWriter
}

// UserCurrencyRepositoryWithTx extends UserCurrencyRepositoryFacade with transaction capabilities
type UserCurrencyRepositoryWithTx interface {
	UserCurrencyRepositoryFacade
	TransactionManager
}
