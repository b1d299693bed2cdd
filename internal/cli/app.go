package cli

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/currency_rates_app/internal/adapters/ratefeed"
	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/core/services"
	"github.com/SscSPs/currency_rates_app/internal/platform/config"
	"github.com/SscSPs/currency_rates_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_rates_app/pkg/database"
)

// App wires configuration, storage and services for the subcommands.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewApp creates an App.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return &App{cfg: cfg, logger: logger}
}

// openServices connects to the database and builds the service container.
// The returned pool must be closed by the caller.
func (a *App) openServices(ctx context.Context) (*pgxpool.Pool, *portssvc.ServiceContainer, error) {
	pool, err := database.NewPgxPool(ctx, a.cfg.DatabaseURL, a.cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(pool)
	return pool, services.NewServiceContainer(a.cfg, repos, a.newFeedClient()), nil
}

func (a *App) newFeedClient() *ratefeed.Client {
	return ratefeed.NewClient(
		ratefeed.WithDailyURL(a.cfg.FeedDailyURL),
		ratefeed.WithArchive(a.cfg.FeedArchiveBaseURL, a.cfg.FeedArchiveSuffix),
		ratefeed.WithCurrencyKey(a.cfg.FeedCurrencyKey),
		ratefeed.WithTimeout(a.cfg.FeedTimeout),
		ratefeed.WithRateLimit(a.cfg.FeedRequestsPerSecond),
		ratefeed.WithLogger(a.logger),
	)
}

func (a *App) migrate(direction database.MigrationDirection) error {
	return database.RunMigrations(a.logger, a.cfg.DatabaseURL, a.cfg.MigrationsPath, direction)
}
