package services

import (
	portsrepo "github.com/SscSPs/currency_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fetcher RateFetcher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:           NewCurrencyService(repos.CurrencyRepo),
		Rate:               NewRateService(repos.RateRepo, repos.CurrencyRepo, repos.UserCurrencyRepo),
		User:               NewUserService(repos.UserRepo),
		TokenService:       NewTokenService(cfg, repos.UserRepo),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
		Ingestion:          NewIngestionService(fetcher, repos.CurrencyRepo, repos.RateRepo, cfg.IngestDays),
	}
}
