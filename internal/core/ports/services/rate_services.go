package services

import (
	"context"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/SscSPs/currency_rates_app/internal/dto"
)

// RateReaderSvc defines read operations over ingested rates
type RateReaderSvc interface {
	// ListRates lists every rate for anonymous callers (userID nil) and the caller's watched
	// rates, annotated against their thresholds, otherwise.
	ListRates(ctx context.Context, userID *int64, params dto.ListRatesParams) ([]domain.RateRow, *string, error)

	// GetAnalytics returns one currency's rates over a date range annotated against a threshold.
	GetAnalytics(ctx context.Context, currencyID int64, params dto.AnalyticsParams) ([]domain.RateRow, error)

	// RenderAnalyticsChart draws the same series as GetAnalytics as a PNG image.
	RenderAnalyticsChart(ctx context.Context, currencyID int64, params dto.AnalyticsParams) ([]byte, error)
}

// WatchlistSvc defines operations on the caller's watchlist
type WatchlistSvc interface {
	// WatchCurrency adds a currency to the user's watchlist or updates its threshold.
	WatchCurrency(ctx context.Context, userID int64, req dto.WatchCurrencyRequest) (*domain.UserCurrency, error)

	// ListWatchlist returns the user's watchlist.
	ListWatchlist(ctx context.Context, userID int64) ([]domain.UserCurrency, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	WatchlistSvc
}
