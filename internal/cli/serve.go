package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/handlers"
	"github.com/SscSPs/currency_rates_app/internal/middleware"
	"github.com/SscSPs/currency_rates_app/internal/platform/config"
	"github.com/SscSPs/currency_rates_app/internal/scheduler"
	"github.com/SscSPs/currency_rates_app/internal/utils"
	"github.com/SscSPs/currency_rates_app/pkg/database"
)

const shutdownTimeout = 10 * time.Second

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the daily ingestion schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Serve(cmd.Context(), skipMigrations)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply database migrations on startup")
}

// Serve runs the API until SIGINT or SIGTERM. When ingestion is enabled the daily
// schedule runs alongside it.
func (a *App) Serve(parent context.Context, skipMigrations bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !skipMigrations {
		if err := a.migrate(database.MigrateUp); err != nil {
			return err
		}
	}

	pool, svc, err := a.openServices(ctx)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	posthogClient := utils.InitializePosthogClient(a.cfg.PosthogAPIKey, a.cfg.PosthogEndpoint, a.logger)
	defer posthogClient.Close()

	router, err := a.newRouter(svc, posthogClient)
	if err != nil {
		return err
	}

	if a.cfg.IngestEnabled {
		if err := a.startScheduler(ctx, svc.Ingestion); err != nil {
			return err
		}
	} else {
		a.logger.Info("Scheduled ingestion disabled")
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server starting", slog.String("port", a.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	a.logger.Info("Server stopped")
	return nil
}

func (a *App) newRouter(svc *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if a.cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, tracking)
	r.Use(
		middleware.StructuredLoggingMiddleware(a.logger),
		gin.Recovery(),
		cors.New(corsConfig(a.cfg)),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, a.cfg, svc); err != nil {
		return nil, err
	}
	return r, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 || slices.Contains(cfg.CORSAllowedOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	c.AddAllowHeaders("Authorization")
	c.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	return c
}

// startScheduler runs the daily ingestion in the background until ctx is done.
func (a *App) startScheduler(ctx context.Context, ingestion portssvc.IngestionSvc) error {
	sched, err := scheduler.New(scheduler.Options{
		Hour:         a.cfg.IngestHour,
		Minute:       a.cfg.IngestMinute,
		Location:     a.cfg.IngestLocation,
		RunOnStartup: a.cfg.IngestOnStartup,
	}, a.logger)
	if err != nil {
		return err
	}

	jobLogger := a.logger.With(slog.String("job", "ingest_rates"))
	go func() {
		err := sched.Run(ctx, func(ctx context.Context, now time.Time) error {
			summary := ingestion.IngestDailyAndBackfill(middleware.WithLogger(ctx, jobLogger), now)
			if summary.DatesAttempted > 0 && summary.DatesFailed == summary.DatesAttempted {
				return fmt.Errorf("every date failed (%d)", summary.DatesFailed)
			}
			return nil
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("Scheduler stopped", slog.String("error", err.Error()))
		}
	}()
	return nil
}
