package pgsql

import (
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		RateRepo:         newPgxRateRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		UserCurrencyRepo: newPgxUserCurrencyRepository(dbPool),
	}
}
