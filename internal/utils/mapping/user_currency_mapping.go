package mapping

import (
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/SscSPs/currency_rates_app/internal/models"
)

// ToDomainUserCurrency converts a model UserCurrency to a domain UserCurrency
func ToDomainUserCurrency(m models.UserCurrency) domain.UserCurrency {
	return domain.UserCurrency{
		ID:        m.ID,
		UserID:    m.UserID,
		Charcode:  m.Charcode,
		Threshold: m.Threshold,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainUserCurrencySlice converts a slice of model UserCurrencies to a slice of domain UserCurrencies
func ToDomainUserCurrencySlice(ms []models.UserCurrency) []domain.UserCurrency {
	ds := make([]domain.UserCurrency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUserCurrency(m)
	}
	return ds
}
