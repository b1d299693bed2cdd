package services

import (
	"context"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
)

// IngestionSvc pulls rates from the remote feed into the store.
type IngestionSvc interface {
	// IngestDailyAndBackfill ingests today and the configured number of previous days.
	// Failures are logged and reflected in the summary only.
	IngestDailyAndBackfill(ctx context.Context, today time.Time) domain.IngestionSummary
}
