package mapping

import (
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/SscSPs/currency_rates_app/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		ID:       d.ID,
		Date:     d.Date,
		Charcode: d.Charcode,
		Value:    d.Value,
	}
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		ID:       m.ID,
		Date:     m.Date,
		Charcode: m.Charcode,
		Value:    m.Value,
	}
}

// ToDomainRateSlice converts a slice of model Rates to a slice of domain Rates
func ToDomainRateSlice(ms []models.Rate) []domain.Rate {
	ds := make([]domain.Rate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRate(m)
	}
	return ds
}
