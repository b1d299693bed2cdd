package dto

import "github.com/SscSPs/currency_rates_app/internal/core/domain"

// CurrencyResponse is one registry entry.
type CurrencyResponse struct {
	ID       int64  `json:"id"`
	Charcode string `json:"charcode"`
}

// ListCurrenciesResponse wraps the registry listing.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToListCurrenciesResponse converts domain currencies to ListCurrenciesResponse DTO
func ToListCurrenciesResponse(currencies []domain.Currency) ListCurrenciesResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		out[i] = CurrencyResponse{ID: c.ID, Charcode: c.Charcode}
	}
	return ListCurrenciesResponse{Currencies: out}
}
