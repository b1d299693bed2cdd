// Package analytics holds the pure annotation passes applied to rate rows before they are returned to clients.
package analytics

import (
	"fmt"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentageOfThreshold returns 100*value/threshold rounded half-to-even to two places, suffixed with "%".
func PercentageOfThreshold(value decimal.Decimal, threshold int64) string {
	ratio := value.Mul(hundred).Div(decimal.NewFromInt(threshold))
	return ratio.StringFixedBank(2) + "%"
}

// ClassifyThreshold compares value to threshold.
func ClassifyThreshold(value decimal.Decimal, threshold int64) domain.ThresholdMatch {
	switch value.Cmp(decimal.NewFromInt(threshold)) {
	case 1:
		return domain.ThresholdExceeded
	case -1:
		return domain.ThresholdLess
	default:
		return domain.ThresholdEqual
	}
}

// AnnotateAnalytics fills the analytics fields of rows in place and returns the same slice.
//
// Rows must already be filtered to one currency and sorted by value in the given order;
// min/max flags are positional and trust that order.
func AnnotateAnalytics(rows []domain.RateRow, threshold int64, order domain.SortOrder) ([]domain.RateRow, error) {
	if threshold <= 0 {
		return rows, fmt.Errorf("%w: got %d", apperrors.ErrInvalidThreshold, threshold)
	}

	last := len(rows) - 1
	for i := range rows {
		row := &rows[i]

		ratio := PercentageOfThreshold(row.Value, threshold)
		match := ClassifyThreshold(row.Value, threshold)
		exceeded := match == domain.ThresholdExceeded

		first, final := i == 0, i == last
		isMin := (first && !order.Descending()) || (final && order.Descending())
		isMax := (final && !order.Descending()) || (first && order.Descending())

		row.PercentageRatio = &ratio
		row.ThresholdMatchType = &match
		row.IsThresholdExceeded = &exceeded
		row.IsMinValue = &isMin
		row.IsMaxValue = &isMax
	}
	return rows, nil
}

// AnnotateWatchlist sets IsThresholdExceeded on every row whose charcode has a threshold.
// Rows outside the map are left untouched.
func AnnotateWatchlist(rows []domain.RateRow, thresholds map[string]int64) []domain.RateRow {
	for i := range rows {
		threshold, ok := thresholds[rows[i].Charcode]
		if !ok {
			continue
		}
		exceeded := rows[i].Value.GreaterThan(decimal.NewFromInt(threshold))
		rows[i].IsThresholdExceeded = &exceeded
	}
	return rows
}
