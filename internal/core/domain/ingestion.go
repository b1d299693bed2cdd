package domain

import "time"

// IngestionSummary describes the outcome of one ingestion run.
// It is informational only: failed dates are expected and are retried by later runs.
type IngestionSummary struct {
	StartedAt            time.Time
	DatesAttempted       int
	DatesFailed          int
	RatesInserted        int
	CurrenciesRegistered int
	FailedDates          []time.Time
}
