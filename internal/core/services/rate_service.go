package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/dto"
	"github.com/SscSPs/currency_rates_app/internal/utils/analytics"
	"github.com/SscSPs/currency_rates_app/internal/utils/charts"
)

// rateService serves rate listings, per-currency analytics and the caller's watchlist.
type rateService struct {
	BaseService
	rateRepo         portsrepo.RateReader
	currencyRepo     portsrepo.CurrencyReader
	userCurrencyRepo portsrepo.UserCurrencyRepositoryWithTx
}

// NewRateService creates a new rate service.
func NewRateService(
	rateRepo portsrepo.RateReader,
	currencyRepo portsrepo.CurrencyReader,
	userCurrencyRepo portsrepo.UserCurrencyRepositoryWithTx,
) portssvc.RateSvcFacade {
	return &rateService{
		rateRepo:         rateRepo,
		currencyRepo:     currencyRepo,
		userCurrencyRepo: userCurrencyRepo,
	}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) ListRates(ctx context.Context, userID *int64, params dto.ListRatesParams) ([]domain.RateRow, *string, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	q := params.ToQuery()

	var thresholds map[string]int64
	if userID != nil {
		entries, err := s.userCurrencyRepo.ListUserCurrencies(ctx, *userID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load watchlist: %w", err)
		}
		thresholds = domain.ThresholdsByCharcode(entries)

		// A non-nil empty slice means "nothing watched", which lists no rates.
		q.Charcodes = make([]string, 0, len(thresholds))
		for code := range thresholds {
			q.Charcodes = append(q.Charcodes, code)
		}
		sort.Strings(q.Charcodes)
	}

	rates, nextToken, err := s.rateRepo.ListRates(ctx, q)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to list rates")
		return nil, nil, fmt.Errorf("failed to list rates: %w", err)
	}

	rows := domain.NewRateRows(rates)
	if userID != nil {
		rows = analytics.AnnotateWatchlist(rows, thresholds)
	}
	return rows, nextToken, nil
}

func (s *rateService) GetAnalytics(ctx context.Context, currencyID int64, params dto.AnalyticsParams) ([]domain.RateRow, error) {
	_, _, rows, err := s.analyticsSeries(ctx, currencyID, params)
	return rows, err
}

func (s *rateService) RenderAnalyticsChart(ctx context.Context, currencyID int64, params dto.AnalyticsParams) ([]byte, error) {
	currency, q, rows, err := s.analyticsSeries(ctx, currencyID, params)
	if err != nil {
		return nil, err
	}

	img, err := charts.RenderRateChart(currency.Charcode, rows, q.Threshold)
	if err != nil {
		if errors.Is(err, charts.ErrNotEnoughPoints) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		s.LogError(ctx, err, "Failed to render chart", slog.String("charcode", currency.Charcode))
		return nil, err
	}
	return img, nil
}

// analyticsSeries resolves the currency (404 first), then parses the query (400),
// then loads and annotates the rates.
func (s *rateService) analyticsSeries(ctx context.Context, currencyID int64, params dto.AnalyticsParams) (*domain.Currency, dto.AnalyticsQuery, []domain.RateRow, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, dto.AnalyticsQuery{}, nil, fmt.Errorf("failed to get currency %d: %w", currencyID, err)
	}

	q, err := params.Parse()
	if err != nil {
		return nil, dto.AnalyticsQuery{}, nil, err
	}
	if q.Threshold <= 0 {
		return nil, dto.AnalyticsQuery{}, nil, apperrors.ErrInvalidThreshold
	}

	rates, _, err := s.rateRepo.ListRates(ctx, domain.RateQuery{
		Charcode: currency.Charcode,
		DateFrom: &q.DateFrom,
		DateTo:   &q.DateTo,
		Order:    q.Order,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load analytics rates", slog.String("charcode", currency.Charcode))
		return nil, dto.AnalyticsQuery{}, nil, fmt.Errorf("failed to load rates: %w", err)
	}

	rows, err := analytics.AnnotateAnalytics(domain.NewRateRows(rates), q.Threshold, q.Order)
	if err != nil {
		return nil, dto.AnalyticsQuery{}, nil, err
	}
	return currency, q, rows, nil
}

func (s *rateService) WatchCurrency(ctx context.Context, userID int64, req dto.WatchCurrencyRequest) (*domain.UserCurrency, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, req.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %d: %w", req.Currency, err)
	}

	tx, err := s.userCurrencyRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := s.userCurrencyRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back watchlist transaction")
		}
	}()

	entry, err := s.userCurrencyRepo.UpsertUserCurrencyTx(ctx, tx, domain.UserCurrency{
		UserID:    userID,
		Charcode:  currency.Charcode,
		Threshold: req.Threshold,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save watchlist entry", slog.String("charcode", currency.Charcode))
		return nil, fmt.Errorf("failed to save watchlist entry: %w", err)
	}

	if err := s.userCurrencyRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Watchlist entry saved",
		slog.String("charcode", entry.Charcode),
		slog.Int64("threshold", entry.Threshold))
	return entry, nil
}

func (s *rateService) ListWatchlist(ctx context.Context, userID int64) ([]domain.UserCurrency, error) {
	entries, err := s.userCurrencyRepo.ListUserCurrencies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	if entries == nil {
		return []domain.UserCurrency{}, nil
	}
	return entries, nil
}
