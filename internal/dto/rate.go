package dto

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/SscSPs/currency_rates_app/internal/validation"
	"github.com/shopspring/decimal"
)

const (
	maxPageSize = 1000

	// maxThreshold is the largest value the INTEGER threshold column holds.
	maxThreshold = math.MaxInt32
)

var orderChoices = []string{string(domain.SortByValueAsc), string(domain.SortByValueDesc)}

// RateResponse is one rate row. Analytics fields are present only when computed.
type RateResponse struct {
	ID                  int64                  `json:"id"`
	Date                string                 `json:"date" example:"2024-05-01"`
	Charcode            string                 `json:"charcode" example:"USD"`
	Value               decimal.Decimal        `json:"value" swaggertype:"string" example:"91.5123"`
	IsThresholdExceeded *bool                  `json:"is_threshold_exceeded,omitempty"`
	PercentageRatio     *string                `json:"percentage_ratio,omitempty" example:"66.67%"`
	ThresholdMatchType  *domain.ThresholdMatch `json:"threshold_match_type,omitempty" swaggertype:"string" enums:"exceeded,less,equal"`
	IsMinValue          *bool                  `json:"is_min_value,omitempty"`
	IsMaxValue          *bool                  `json:"is_max_value,omitempty"`
}

// ToRateResponse converts a domain.RateRow to RateResponse DTO
func ToRateResponse(r domain.RateRow) RateResponse {
	return RateResponse{
		ID:                  r.ID,
		Date:                r.Date.Format(time.DateOnly),
		Charcode:            r.Charcode,
		Value:               r.Value,
		IsThresholdExceeded: r.IsThresholdExceeded,
		PercentageRatio:     r.PercentageRatio,
		ThresholdMatchType:  r.ThresholdMatchType,
		IsMinValue:          r.IsMinValue,
		IsMaxValue:          r.IsMaxValue,
	}
}

// ListRatesResponse wraps a rate listing.
type ListRatesResponse struct {
	Rates     []RateResponse `json:"rates"`
	NextToken *string        `json:"next_token,omitempty"`
}

// ToListRatesResponse converts annotated rows to ListRatesResponse DTO
func ToListRatesResponse(rows []domain.RateRow, nextToken *string) ListRatesResponse {
	out := make([]RateResponse, len(rows))
	for i, r := range rows {
		out[i] = ToRateResponse(r)
	}
	return ListRatesResponse{Rates: out, NextToken: nextToken}
}

// ListRatesParams defines query parameters for listing rates.
type ListRatesParams struct {
	OrderBy   string `form:"order_by"`
	Limit     int    `form:"limit"`
	NextToken string `form:"next_token"`
}

// Validate applies the listing rules.
func (p ListRatesParams) Validate() error {
	return validation.Check(
		validation.Field{Name: "order_by", Value: p.OrderBy, Optional: true, Rules: []validation.Rule{validation.OneOf(orderChoices...)}},
		validation.Field{Name: "limit", Value: p.Limit, Optional: true, Rules: []validation.Rule{validation.MinValue(1), validation.MaxValue(maxPageSize)}},
	)
}

// ToQuery builds the store query for a validated listing request.
func (p ListRatesParams) ToQuery() domain.RateQuery {
	q := domain.RateQuery{Order: domain.ParseSortOrder(p.OrderBy), Limit: p.Limit}
	if p.NextToken != "" {
		token := p.NextToken
		q.NextToken = &token
	}
	return q
}

// AnalyticsParams defines query parameters for the per-currency analytics view.
// Values stay strings so that a missing parameter can be told apart from a bad one.
type AnalyticsParams struct {
	Threshold string `form:"threshold"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	OrderBy   string `form:"order_by"`
}

// Validate applies the analytics rules. Integer parsing of threshold happens in Parse; a
// parsed threshold <= 0 passes here and is rejected by the annotator.
func (p AnalyticsParams) Validate() error {
	return validation.Check(
		validation.Field{Name: "threshold", Value: p.Threshold, Rules: []validation.Rule{validation.Required()}},
		validation.Field{Name: "date_from", Value: p.DateFrom, Rules: []validation.Rule{validation.Required(), validation.Date()}},
		validation.Field{Name: "date_to", Value: p.DateTo, Rules: []validation.Rule{validation.Required(), validation.Date()}},
		validation.Field{Name: "order_by", Value: p.OrderBy, Optional: true, Rules: []validation.Rule{validation.OneOf(orderChoices...)}},
	)
}

// AnalyticsQuery is the parsed form of AnalyticsParams.
type AnalyticsQuery struct {
	Threshold int64
	DateFrom  time.Time
	DateTo    time.Time
	Order     domain.SortOrder
}

// Parse validates p and converts it to typed values.
func (p AnalyticsParams) Parse() (AnalyticsQuery, error) {
	fe := apperrors.FieldErrors{}
	if err := p.Validate(); err != nil && !errors.As(err, &fe) {
		return AnalyticsQuery{}, err
	}
	// Negative values parse; the annotator rejects them as an invalid threshold.
	threshold, err := strconv.ParseInt(strings.TrimSpace(p.Threshold), 10, 64)
	if err != nil && p.Threshold != "" {
		fe.Add("threshold", "A valid integer is required.")
	}
	if err := fe.OrNil(); err != nil {
		return AnalyticsQuery{}, err
	}
	// Both dates already passed the datetime rule.
	from, _ := time.Parse(time.DateOnly, p.DateFrom)
	to, _ := time.Parse(time.DateOnly, p.DateTo)

	return AnalyticsQuery{
		Threshold: threshold,
		DateFrom:  from,
		DateTo:    to,
		Order:     domain.ParseSortOrder(p.OrderBy),
	}, nil
}

// WatchCurrencyRequest is the body of POST /rates.
type WatchCurrencyRequest struct {
	Currency  int64 `json:"currency" example:"1"`
	Threshold int64 `json:"threshold" example:"90"`
}

// Validate applies the watch rules.
func (r WatchCurrencyRequest) Validate() error {
	return validation.Check(
		validation.Field{Name: "currency", Value: r.Currency, Rules: []validation.Rule{validation.Required(), validation.MinValue(1)}},
		validation.Field{Name: "threshold", Value: r.Threshold, Rules: []validation.Rule{
			validation.Required(), validation.MinValue(1), validation.MaxValue(maxThreshold),
		}},
	)
}

// UserCurrencyResponse is one watchlist entry.
type UserCurrencyResponse struct {
	ID        int64  `json:"id"`
	Charcode  string `json:"charcode"`
	Threshold int64  `json:"threshold"`
}

// ToUserCurrencyResponse converts a domain.UserCurrency to UserCurrencyResponse DTO
func ToUserCurrencyResponse(uc domain.UserCurrency) UserCurrencyResponse {
	return UserCurrencyResponse{ID: uc.ID, Charcode: uc.Charcode, Threshold: uc.Threshold}
}

// WatchlistResponse wraps the caller's watchlist.
type WatchlistResponse struct {
	Currencies []UserCurrencyResponse `json:"currencies"`
}

// ToWatchlistResponse converts watchlist entries to WatchlistResponse DTO
func ToWatchlistResponse(entries []domain.UserCurrency) WatchlistResponse {
	out := make([]UserCurrencyResponse, len(entries))
	for i, e := range entries {
		out[i] = ToUserCurrencyResponse(e)
	}
	return WatchlistResponse{Currencies: out}
}
