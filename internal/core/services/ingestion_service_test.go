package services_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/adapters/ratefeed"
	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/SscSPs/currency_rates_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory registry and rate table with the same
// uniqueness rules as the database.
type memoryStore struct {
	currencies []string
	rates      map[string]domain.Rate // key: date|charcode
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rates: map[string]domain.Rate{}}
}

func rateKey(date time.Time, code string) string {
	return date.Format(time.DateOnly) + "|" + code
}

func (s *memoryStore) FindCurrencyByID(_ context.Context, id int64) (*domain.Currency, error) {
	if id < 1 || int(id) > len(s.currencies) {
		return nil, apperrors.ErrNotFound
	}
	return &domain.Currency{ID: id, Charcode: s.currencies[id-1]}, nil
}

func (s *memoryStore) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	out := make([]domain.Currency, len(s.currencies))
	for i, c := range s.currencies {
		out[i] = domain.Currency{ID: int64(i + 1), Charcode: c}
	}
	return out, nil
}

func (s *memoryStore) IsEmpty(_ context.Context) (bool, error) {
	return len(s.currencies) == 0, nil
}

func (s *memoryStore) SaveCurrencies(_ context.Context, codes []string) (int, error) {
	n := 0
	for _, code := range codes {
		known := false
		for _, c := range s.currencies {
			known = known || c == code
		}
		if !known {
			s.currencies = append(s.currencies, code)
			n++
		}
	}
	return n, nil
}

func (s *memoryStore) ListRates(_ context.Context, _ domain.RateQuery) ([]domain.Rate, *string, error) {
	out := make([]domain.Rate, 0, len(s.rates))
	for _, r := range s.rates {
		out = append(out, r)
	}
	return out, nil, nil
}

func (s *memoryStore) ListCharcodesForDate(_ context.Context, date time.Time) ([]string, error) {
	var codes []string
	for _, r := range s.rates {
		if r.Date.Equal(date) {
			codes = append(codes, r.Charcode)
		}
	}
	return codes, nil
}

func (s *memoryStore) SaveRates(_ context.Context, rates []domain.Rate) (int, error) {
	n := 0
	for _, r := range rates {
		k := rateKey(r.Date, r.Charcode)
		if _, exists := s.rates[k]; exists {
			continue
		}
		r.ID = int64(len(s.rates) + 1)
		s.rates[k] = r
		n++
	}
	return n, nil
}

func snapshot(date time.Time, values map[string]string) ratefeed.FetchResult {
	snap := &ratefeed.Snapshot{Date: date, HasCurrencies: true, Rates: map[string]decimal.Decimal{}}
	for code, v := range values {
		snap.Rates[code] = decimal.RequireFromString(v)
	}
	return ratefeed.FetchResult{Snapshot: snap}
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIngestion_IdempotentRerun(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)

	fetcher := new(MockRateFetcher)
	fetcher.On("FetchDaily", ctx).Return(snapshot(utcDate(2024, 5, 3), map[string]string{"USD": "91.5", "EUR": "98.1"}))
	fetcher.On("FetchArchive", ctx, utcDate(2024, 5, 2)).Return(snapshot(utcDate(2024, 5, 2), map[string]string{"USD": "91.2", "EUR": "97.9"}))
	fetcher.On("FetchArchive", ctx, utcDate(2024, 5, 1)).Return(snapshot(utcDate(2024, 5, 1), map[string]string{"USD": "90.9", "EUR": "97.5"}))

	store := newMemoryStore()
	svc := services.NewIngestionService(fetcher, store, store, 3)

	first := svc.IngestDailyAndBackfill(ctx, today)
	assert.Equal(t, 3, first.DatesAttempted)
	assert.Equal(t, 0, first.DatesFailed)
	assert.Equal(t, 6, first.RatesInserted)
	assert.Equal(t, 2, first.CurrenciesRegistered)

	second := svc.IngestDailyAndBackfill(ctx, today)
	assert.Equal(t, 0, second.RatesInserted)
	assert.Equal(t, 0, second.CurrenciesRegistered)
	assert.Len(t, store.rates, 6)
	assert.True(t, store.rates[rateKey(utcDate(2024, 5, 2), "USD")].Value.Equal(decimal.RequireFromString("91.2")))
}

func TestIngestion_FailedDateDoesNotStopOthers(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.May, 3, 9, 0, 0, 0, time.UTC)

	fetcher := new(MockRateFetcher)
	fetcher.On("FetchDaily", ctx).Return(ratefeed.FetchResult{Err: fmt.Errorf("%w: timeout", apperrors.ErrUpstreamFetch)})
	fetcher.On("FetchArchive", ctx, utcDate(2024, 5, 2)).Return(ratefeed.FetchResult{Err: fmt.Errorf("%w: 404", apperrors.ErrUpstreamFetch)})
	fetcher.On("FetchArchive", ctx, utcDate(2024, 5, 1)).Return(snapshot(utcDate(2024, 5, 1), map[string]string{"USD": "90.9"}))

	store := newMemoryStore()
	summary := services.NewIngestionService(fetcher, store, store, 3).IngestDailyAndBackfill(ctx, today)

	assert.Equal(t, 3, summary.DatesAttempted)
	assert.Equal(t, 2, summary.DatesFailed)
	assert.Equal(t, []time.Time{utcDate(2024, 5, 3), utcDate(2024, 5, 2)}, summary.FailedDates)
	assert.Equal(t, 1, summary.RatesInserted)
	// The registry is populated from whichever date succeeds first.
	assert.Equal(t, []string{"USD"}, store.currencies)
}

func TestIngestion_RegistryOnlyPopulatedOnce(t *testing.T) {
	ctx := context.Background()
	today := utcDate(2024, 5, 3)

	fetcher := new(MockRateFetcher)
	fetcher.On("FetchDaily", ctx).Return(snapshot(utcDate(2024, 5, 3), map[string]string{"USD": "91.5"}))
	fetcher.On("FetchArchive", ctx, utcDate(2024, 5, 2)).Return(snapshot(utcDate(2024, 5, 2), map[string]string{"USD": "91.2", "XDR": "120.1"}))

	store := newMemoryStore()
	summary := services.NewIngestionService(fetcher, store, store, 2).IngestDailyAndBackfill(ctx, today)

	assert.Equal(t, 3, summary.RatesInserted)
	// XDR gets rates but never a registry row.
	assert.Equal(t, []string{"USD"}, store.currencies)
	_, ok := store.rates[rateKey(utcDate(2024, 5, 2), "XDR")]
	assert.True(t, ok)
}

func TestIngestion_UsesFeedDateWhenPresent(t *testing.T) {
	ctx := context.Background()
	// A weekend archive request returns the previous business day.
	fetcher := new(MockRateFetcher)
	fetcher.On("FetchDaily", ctx).Return(snapshot(utcDate(2024, 5, 3), map[string]string{"USD": "91.5"}))
	fetcher.On("FetchArchive", ctx, utcDate(2024, 5, 2)).Return(snapshot(time.Time{}, map[string]string{"USD": "91.2"}))
	fetcher.On("FetchArchive", ctx, utcDate(2024, 5, 1)).Return(snapshot(utcDate(2024, 5, 3), map[string]string{"USD": "91.5"}))

	store := newMemoryStore()
	summary := services.NewIngestionService(fetcher, store, store, 3).IngestDailyAndBackfill(ctx, utcDate(2024, 5, 3))

	assert.Equal(t, 2, summary.RatesInserted)
	dates := make([]string, 0, len(store.rates))
	for k := range store.rates {
		dates = append(dates, k)
	}
	sort.Strings(dates)
	assert.Equal(t, []string{"2024-05-02|USD", "2024-05-03|USD"}, dates)
}

func TestIngestion_SnapshotWithoutCurrencyMap(t *testing.T) {
	ctx := context.Background()
	fetcher := new(MockRateFetcher)
	fetcher.On("FetchDaily", ctx).Return(ratefeed.FetchResult{Snapshot: &ratefeed.Snapshot{Date: utcDate(2024, 5, 3)}})

	store := newMemoryStore()
	summary := services.NewIngestionService(fetcher, store, store, 1).IngestDailyAndBackfill(ctx, utcDate(2024, 5, 3))

	assert.Equal(t, 0, summary.DatesFailed)
	assert.Equal(t, 0, summary.RatesInserted)
	assert.Empty(t, store.currencies)
}

func TestIngestion_StoreErrorIsLoggedAndSkipped(t *testing.T) {
	ctx := context.Background()
	fetcher := new(MockRateFetcher)
	fetcher.On("FetchDaily", ctx).Return(snapshot(utcDate(2024, 5, 3), map[string]string{"USD": "91.5"}))
	fetcher.On("FetchArchive", ctx, utcDate(2024, 5, 2)).Return(snapshot(utcDate(2024, 5, 2), map[string]string{"USD": "91.2"}))

	currencyRepo := new(MockCurrencyRepository)
	currencyRepo.On("IsEmpty", ctx).Return(false, nil)
	rateRepo := new(MockRateRepository)
	rateRepo.On("ListCharcodesForDate", ctx, utcDate(2024, 5, 3)).Return(nil, errors.New("connection reset")).Once()
	rateRepo.On("ListCharcodesForDate", ctx, utcDate(2024, 5, 2)).Return([]string{}, nil).Once()
	rateRepo.On("SaveRates", ctx, mock.MatchedBy(func(rs []domain.Rate) bool {
		return len(rs) == 1 && rs[0].Charcode == "USD"
	})).Return(1, nil).Once()

	summary := services.NewIngestionService(fetcher, currencyRepo, rateRepo, 2).IngestDailyAndBackfill(ctx, utcDate(2024, 5, 3))

	require.Equal(t, 1, summary.DatesFailed)
	assert.Equal(t, 1, summary.RatesInserted)
	rateRepo.AssertExpectations(t)
}

func TestIngestion_CancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := new(MockRateFetcher)
	store := newMemoryStore()
	summary := services.NewIngestionService(fetcher, store, store, 30).IngestDailyAndBackfill(ctx, utcDate(2024, 5, 3))

	assert.Equal(t, 0, summary.DatesAttempted)
	fetcher.AssertNotCalled(t, "FetchDaily", mock.Anything)
}
