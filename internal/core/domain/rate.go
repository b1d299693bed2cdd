package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is one ingested value of a currency on a calendar date.
// There is at most one Rate per (Date, Charcode).
type Rate struct {
	ID       int64           `json:"id"`
	Date     time.Time       `json:"date"`
	Charcode string          `json:"charcode"`
	Value    decimal.Decimal `json:"value"`
}

// ThresholdMatch classifies a rate value against a threshold.
type ThresholdMatch string

const (
	ThresholdExceeded ThresholdMatch = "exceeded"
	ThresholdLess     ThresholdMatch = "less"
	ThresholdEqual    ThresholdMatch = "equal"
)

// RateRow is a Rate plus the derived fields computed by the annotators.
// Pointer fields stay nil when a row was not annotated.
type RateRow struct {
	Rate
	IsThresholdExceeded *bool
	PercentageRatio     *string
	ThresholdMatchType  *ThresholdMatch
	IsMinValue          *bool
	IsMaxValue          *bool
}

// NewRateRows wraps plain rates into unannotated rows, preserving order.
func NewRateRows(rates []Rate) []RateRow {
	rows := make([]RateRow, len(rates))
	for i, r := range rates {
		rows[i] = RateRow{Rate: r}
	}
	return rows
}

// RateQuery filters and orders a rate listing. Zero-valued fields do not filter.
type RateQuery struct {
	Charcodes []string // restrict to these codes; nil means all, empty non-nil means none
	Charcode  string
	DateFrom  *time.Time
	DateTo    *time.Time
	Order     SortOrder

	// Keyset pagination. Limit <= 0 returns every matching row.
	Limit     int
	NextToken *string
}
