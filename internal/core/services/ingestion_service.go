package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/adapters/ratefeed"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
)

// RateFetcher is the part of the feed client ingestion depends on.
type RateFetcher interface {
	FetchDaily(ctx context.Context) ratefeed.FetchResult
	FetchArchive(ctx context.Context, date time.Time) ratefeed.FetchResult
}

type ingestionService struct {
	BaseService
	fetcher      RateFetcher
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rateRepo     portsrepo.RateRepositoryFacade
	days         int
	now          func() time.Time
}

// NewIngestionService creates the service that loads today's snapshot plus days-1 archived ones.
func NewIngestionService(
	fetcher RateFetcher,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	rateRepo portsrepo.RateRepositoryFacade,
	days int,
) portssvc.IngestionSvc {
	if days < 1 {
		days = 1
	}
	return &ingestionService{
		fetcher:      fetcher,
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		days:         days,
		now:          time.Now,
	}
}

var _ portssvc.IngestionSvc = (*ingestionService)(nil)

// IngestDailyAndBackfill walks today and the previous days-1 dates. A failed date is logged
// and skipped; it never stops the others.
func (s *ingestionService) IngestDailyAndBackfill(ctx context.Context, today time.Time) domain.IngestionSummary {
	logger := s.GetLogger(ctx)
	summary := domain.IngestionSummary{StartedAt: s.now()}
	base := calendarDate(today)

	for i := 0; i < s.days; i++ {
		if ctx.Err() != nil {
			logger.Warn("Ingestion interrupted", slog.String("error", ctx.Err().Error()))
			break
		}

		target := base.AddDate(0, 0, -i)
		summary.DatesAttempted++

		var res ratefeed.FetchResult
		if i == 0 {
			res = s.fetcher.FetchDaily(ctx)
		} else {
			res = s.fetcher.FetchArchive(ctx, target)
		}

		if !res.OK() {
			logger.Warn("Skipping date, feed unavailable",
				slog.String("date", target.Format(time.DateOnly)),
				slog.String("error", fetchErrorText(res)))
			summary.DatesFailed++
			summary.FailedDates = append(summary.FailedDates, target)
			continue
		}

		registered, inserted, err := s.ingestSnapshot(ctx, target, res.Snapshot)
		summary.CurrenciesRegistered += registered
		summary.RatesInserted += inserted
		if err != nil {
			s.LogError(ctx, err, "Failed to store snapshot", slog.String("date", target.Format(time.DateOnly)))
			summary.DatesFailed++
			summary.FailedDates = append(summary.FailedDates, target)
		}
	}

	logger.Info("Ingestion finished",
		slog.Int("dates_attempted", summary.DatesAttempted),
		slog.Int("dates_failed", summary.DatesFailed),
		slog.Int("rates_inserted", summary.RatesInserted),
		slog.Int("currencies_registered", summary.CurrenciesRegistered),
		slog.Duration("took", s.now().Sub(summary.StartedAt)))
	return summary
}

// ingestSnapshot stores one snapshot. The registry is populated from the first snapshot
// stored while it is empty; rates already present for the date are left untouched.
func (s *ingestionService) ingestSnapshot(ctx context.Context, target time.Time, snap *ratefeed.Snapshot) (registered, inserted int, err error) {
	if !snap.HasCurrencies {
		s.LogInfo(ctx, "Snapshot has no currency map", slog.String("date", target.Format(time.DateOnly)))
		return 0, 0, nil
	}

	date := target
	if !snap.Date.IsZero() {
		date = snap.Date
	}
	codes := snap.Charcodes()

	empty, err := s.currencyRepo.IsEmpty(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to check currency registry: %w", err)
	}
	if empty {
		registered, err = s.currencyRepo.SaveCurrencies(ctx, codes)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to populate currency registry: %w", err)
		}
		s.LogInfo(ctx, "Currency registry populated", slog.Int("count", registered))
	}

	existing, err := s.rateRepo.ListCharcodesForDate(ctx, date)
	if err != nil {
		return registered, 0, err
	}
	stored := make(map[string]struct{}, len(existing))
	for _, code := range existing {
		stored[code] = struct{}{}
	}

	rates := make([]domain.Rate, 0, len(codes))
	for _, code := range codes {
		if _, ok := stored[code]; ok {
			continue
		}
		rates = append(rates, domain.Rate{Date: date, Charcode: code, Value: snap.Rates[code]})
	}
	if len(rates) == 0 {
		s.LogDebug(ctx, "Date already ingested", slog.String("date", date.Format(time.DateOnly)))
		return registered, 0, nil
	}

	inserted, err = s.rateRepo.SaveRates(ctx, rates)
	if err != nil {
		return registered, inserted, err
	}
	s.LogDebug(ctx, "Rates stored",
		slog.String("date", date.Format(time.DateOnly)),
		slog.Int("inserted", inserted))
	return registered, inserted, nil
}

// calendarDate keeps the wall-clock date of t and drops the rest.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fetchErrorText(res ratefeed.FetchResult) string {
	if res.Err != nil {
		return res.Err.Error()
	}
	return "empty snapshot"
}
