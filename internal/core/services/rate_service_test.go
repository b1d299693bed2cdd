package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/core/services"
	"github.com/SscSPs/currency_rates_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	suite.Suite
	rateRepo         *MockRateRepository
	currencyRepo     *MockCurrencyRepository
	userCurrencyRepo *MockUserCurrencyRepository
	service          portssvc.RateSvcFacade
	ctx              context.Context
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.rateRepo = new(MockRateRepository)
	suite.currencyRepo = new(MockCurrencyRepository)
	suite.userCurrencyRepo = new(MockUserCurrencyRepository)
	suite.service = services.NewRateService(suite.rateRepo, suite.currencyRepo, suite.userCurrencyRepo)
	suite.ctx = context.Background()
}

func (suite *RateServiceTestSuite) TearDownTest() {
	suite.rateRepo.AssertExpectations(suite.T())
	suite.currencyRepo.AssertExpectations(suite.T())
	suite.userCurrencyRepo.AssertExpectations(suite.T())
}

func rate(id int64, day int, code, value string) domain.Rate {
	return domain.Rate{
		ID:       id,
		Date:     time.Date(2024, time.May, day, 0, 0, 0, 0, time.UTC),
		Charcode: code,
		Value:    decimal.RequireFromString(value),
	}
}

func analyticsParams(threshold string) dto.AnalyticsParams {
	return dto.AnalyticsParams{Threshold: threshold, DateFrom: "2024-05-01", DateTo: "2024-05-31"}
}

func (suite *RateServiceTestSuite) TestListRates_AnonymousSeesEverythingUnannotated() {
	all := []domain.Rate{rate(1, 1, "EUR", "98.1"), rate(2, 1, "USD", "91.5")}
	suite.rateRepo.On("ListRates", suite.ctx, mock.MatchedBy(func(q domain.RateQuery) bool {
		return q.Charcodes == nil && q.Order == domain.SortByValueAsc
	})).Return(all, nil, nil).Once()

	rows, next, err := suite.service.ListRates(suite.ctx, nil, dto.ListRatesParams{})
	suite.Require().NoError(err)
	suite.Nil(next)
	suite.Require().Len(rows, 2)
	for _, r := range rows {
		suite.Nil(r.IsThresholdExceeded)
	}
}

func (suite *RateServiceTestSuite) TestListRates_WatchlistAnnotation() {
	userID := int64(7)
	suite.userCurrencyRepo.On("ListUserCurrencies", suite.ctx, userID).
		Return([]domain.UserCurrency{{UserID: userID, Charcode: "USD", Threshold: 150}}, nil).Once()
	suite.rateRepo.On("ListRates", suite.ctx, mock.MatchedBy(func(q domain.RateQuery) bool {
		return len(q.Charcodes) == 1 && q.Charcodes[0] == "USD" && q.Order == domain.SortByValueDesc
	})).Return([]domain.Rate{rate(1, 2, "USD", "160"), rate(2, 1, "USD", "140")}, nil, nil).Once()

	rows, _, err := suite.service.ListRates(suite.ctx, &userID, dto.ListRatesParams{OrderBy: "-value"})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Require().NotNil(rows[0].IsThresholdExceeded)
	suite.True(*rows[0].IsThresholdExceeded)
	suite.Require().NotNil(rows[1].IsThresholdExceeded)
	suite.False(*rows[1].IsThresholdExceeded)
	suite.Nil(rows[0].PercentageRatio)
}

func (suite *RateServiceTestSuite) TestListRates_EmptyWatchlistListsNothing() {
	userID := int64(7)
	suite.userCurrencyRepo.On("ListUserCurrencies", suite.ctx, userID).Return([]domain.UserCurrency{}, nil).Once()
	suite.rateRepo.On("ListRates", suite.ctx, mock.MatchedBy(func(q domain.RateQuery) bool {
		return q.Charcodes != nil && len(q.Charcodes) == 0
	})).Return([]domain.Rate{}, nil, nil).Once()

	rows, _, err := suite.service.ListRates(suite.ctx, &userID, dto.ListRatesParams{})
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *RateServiceTestSuite) TestListRates_InvalidOrder() {
	_, _, err := suite.service.ListRates(suite.ctx, nil, dto.ListRatesParams{OrderBy: "date"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestGetAnalytics_ThresholdScenario() {
	suite.currencyRepo.On("FindCurrencyByID", suite.ctx, int64(1)).
		Return(&domain.Currency{ID: 1, Charcode: "USD"}, nil).Once()
	suite.rateRepo.On("ListRates", suite.ctx, mock.MatchedBy(func(q domain.RateQuery) bool {
		return q.Charcode == "USD" && q.DateFrom != nil && q.DateTo != nil &&
			q.DateFrom.Equal(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)) &&
			q.DateTo.Equal(time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.Rate{rate(1, 1, "USD", "100"), rate(2, 2, "USD", "200")}, nil, nil).Once()

	rows, err := suite.service.GetAnalytics(suite.ctx, 1, analyticsParams("150"))
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal("66.67%", *rows[0].PercentageRatio)
	suite.Equal(domain.ThresholdLess, *rows[0].ThresholdMatchType)
	suite.True(*rows[0].IsMinValue)
	suite.False(*rows[0].IsMaxValue)

	suite.Equal("133.33%", *rows[1].PercentageRatio)
	suite.Equal(domain.ThresholdExceeded, *rows[1].ThresholdMatchType)
	suite.True(*rows[1].IsThresholdExceeded)
	suite.True(*rows[1].IsMaxValue)
}

func (suite *RateServiceTestSuite) TestGetAnalytics_UnknownCurrencyBeforeParamErrors() {
	suite.currencyRepo.On("FindCurrencyByID", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAnalytics(suite.ctx, 99, dto.AnalyticsParams{})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RateServiceTestSuite) TestGetAnalytics_MissingParams() {
	suite.currencyRepo.On("FindCurrencyByID", suite.ctx, int64(1)).
		Return(&domain.Currency{ID: 1, Charcode: "USD"}, nil).Once()

	_, err := suite.service.GetAnalytics(suite.ctx, 1, dto.AnalyticsParams{Threshold: "150"})

	var fe apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fe)
	suite.Contains(fe, "date_from")
	suite.Contains(fe, "date_to")
}

func (suite *RateServiceTestSuite) TestGetAnalytics_ZeroThreshold() {
	suite.currencyRepo.On("FindCurrencyByID", suite.ctx, int64(1)).
		Return(&domain.Currency{ID: 1, Charcode: "USD"}, nil).Once()

	_, err := suite.service.GetAnalytics(suite.ctx, 1, analyticsParams("0"))
	suite.ErrorIs(err, apperrors.ErrInvalidThreshold)
	suite.rateRepo.AssertNotCalled(suite.T(), "ListRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetAnalytics_NegativeThreshold() {
	suite.currencyRepo.On("FindCurrencyByID", suite.ctx, int64(1)).
		Return(&domain.Currency{ID: 1, Charcode: "USD"}, nil).Once()

	_, err := suite.service.GetAnalytics(suite.ctx, 1, analyticsParams("-5"))
	suite.ErrorIs(err, apperrors.ErrInvalidThreshold)
	suite.NotErrorIs(err, apperrors.ErrValidation)
	suite.rateRepo.AssertNotCalled(suite.T(), "ListRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestRenderAnalyticsChart() {
	suite.currencyRepo.On("FindCurrencyByID", suite.ctx, int64(1)).
		Return(&domain.Currency{ID: 1, Charcode: "USD"}, nil).Once()
	suite.rateRepo.On("ListRates", suite.ctx, mock.Anything).
		Return([]domain.Rate{rate(1, 1, "USD", "100"), rate(2, 2, "USD", "200")}, nil, nil).Once()

	img, err := suite.service.RenderAnalyticsChart(suite.ctx, 1, analyticsParams("150"))
	suite.Require().NoError(err)
	suite.NotEmpty(img)
}

func (suite *RateServiceTestSuite) TestRenderAnalyticsChart_SinglePoint() {
	suite.currencyRepo.On("FindCurrencyByID", suite.ctx, int64(1)).
		Return(&domain.Currency{ID: 1, Charcode: "USD"}, nil).Once()
	suite.rateRepo.On("ListRates", suite.ctx, mock.Anything).
		Return([]domain.Rate{rate(1, 1, "USD", "100")}, nil, nil).Once()

	_, err := suite.service.RenderAnalyticsChart(suite.ctx, 1, analyticsParams("150"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestWatchCurrency_Upserts() {
	suite.currencyRepo.On("FindCurrencyByID", suite.ctx, int64(1)).
		Return(&domain.Currency{ID: 1, Charcode: "USD"}, nil).Once()
	suite.userCurrencyRepo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.userCurrencyRepo.On("UpsertUserCurrencyTx", suite.ctx, mock.Anything, domain.UserCurrency{
		UserID: 7, Charcode: "USD", Threshold: 90,
	}).Return(&domain.UserCurrency{ID: 3, UserID: 7, Charcode: "USD", Threshold: 90}, nil).Once()
	suite.userCurrencyRepo.On("Commit", suite.ctx, mock.Anything).Return(nil).Once()
	suite.userCurrencyRepo.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.WatchCurrency(suite.ctx, 7, dto.WatchCurrencyRequest{Currency: 1, Threshold: 90})
	suite.Require().NoError(err)
	suite.Equal(int64(3), entry.ID)
	suite.Equal("USD", entry.Charcode)
}

func (suite *RateServiceTestSuite) TestWatchCurrency_UnknownCurrency() {
	suite.currencyRepo.On("FindCurrencyByID", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.WatchCurrency(suite.ctx, 7, dto.WatchCurrencyRequest{Currency: 99, Threshold: 90})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.userCurrencyRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *RateServiceTestSuite) TestWatchCurrency_InvalidThreshold() {
	_, err := suite.service.WatchCurrency(suite.ctx, 7, dto.WatchCurrencyRequest{Currency: 1, Threshold: 0})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestListWatchlist_NeverNil() {
	suite.userCurrencyRepo.On("ListUserCurrencies", suite.ctx, int64(7)).Return(nil, nil).Once()

	entries, err := suite.service.ListWatchlist(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
