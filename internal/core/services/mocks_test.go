package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/adapters/ratefeed"
	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) userResult(args mock.Arguments) (*domain.User, error) {
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return m.userResult(m.Called(ctx, userID))
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, email))
}

func (m *MockUserRepository) FindUserByGoogleSubject(ctx context.Context, subject string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, subject))
}

func (m *MockUserRepository) FindUserByRefreshTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, tokenHash))
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	return m.userResult(m.Called(ctx, user))
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	return m.Called(ctx, userID, tokenHash, expiresAt).Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func (m *MockUserRepository) LinkGoogleSubject(ctx context.Context, userID int64, subject string) error {
	return m.Called(ctx, userID, subject).Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	args := m.Called(ctx, id)
	var c *domain.Currency
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Currency)
	}
	return c, args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	var cs []domain.Currency
	if args.Get(0) != nil {
		cs = args.Get(0).([]domain.Currency)
	}
	return cs, args.Error(1)
}

func (m *MockCurrencyRepository) IsEmpty(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrencies(ctx context.Context, charcodes []string) (int, error) {
	args := m.Called(ctx, charcodes)
	return args.Int(0), args.Error(1)
}

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) ListRates(ctx context.Context, q domain.RateQuery) ([]domain.Rate, *string, error) {
	args := m.Called(ctx, q)
	var rates []domain.Rate
	if args.Get(0) != nil {
		rates = args.Get(0).([]domain.Rate)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return rates, next, args.Error(2)
}

func (m *MockRateRepository) ListCharcodesForDate(ctx context.Context, date time.Time) ([]string, error) {
	args := m.Called(ctx, date)
	var codes []string
	if args.Get(0) != nil {
		codes = args.Get(0).([]string)
	}
	return codes, args.Error(1)
}

func (m *MockRateRepository) SaveRates(ctx context.Context, rates []domain.Rate) (int, error) {
	args := m.Called(ctx, rates)
	return args.Int(0), args.Error(1)
}

// --- Mock UserCurrencyRepository ---
type MockUserCurrencyRepository struct {
	mock.Mock
}

func (m *MockUserCurrencyRepository) ListUserCurrencies(ctx context.Context, userID int64) ([]domain.UserCurrency, error) {
	args := m.Called(ctx, userID)
	var entries []domain.UserCurrency
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.UserCurrency)
	}
	return entries, args.Error(1)
}

func (m *MockUserCurrencyRepository) UpsertUserCurrencyTx(ctx context.Context, tx pgx.Tx, entry domain.UserCurrency) (*domain.UserCurrency, error) {
	args := m.Called(ctx, tx, entry)
	var uc *domain.UserCurrency
	if args.Get(0) != nil {
		uc = args.Get(0).(*domain.UserCurrency)
	}
	return uc, args.Error(1)
}

func (m *MockUserCurrencyRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockUserCurrencyRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockUserCurrencyRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock RateFetcher ---
type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchDaily(ctx context.Context) ratefeed.FetchResult {
	return m.Called(ctx).Get(0).(ratefeed.FetchResult)
}

func (m *MockRateFetcher) FetchArchive(ctx context.Context, date time.Time) ratefeed.FetchResult {
	return m.Called(ctx, date).Get(0).(ratefeed.FetchResult)
}
