package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/SscSPs/currency_rates_app/internal/middleware"
	"github.com/SscSPs/currency_rates_app/pkg/database"
)

var ingestDays int

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest today's rates and backfill previous days once, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := getApp().Ingest(cmd.Context(), ingestDays)
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	ingestCmd.Flags().IntVar(&ingestDays, "days", 0, "Number of days to load, today included (defaults to INGEST_DAYS)")
}

// Ingest runs a single ingestion pass.
func (a *App) Ingest(ctx context.Context, days int) (domain.IngestionSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if days < 0 {
		return domain.IngestionSummary{}, fmt.Errorf("--days must not be negative")
	}
	if days > 0 {
		a.cfg.IngestDays = days
	}

	pool, svc, err := a.openServices(ctx)
	if err != nil {
		return domain.IngestionSummary{}, err
	}
	defer database.ClosePgxPool(pool)

	now := time.Now().In(a.cfg.IngestLocation)
	jobLogger := a.logger.With(slog.String("job", "ingest_rates"))
	return svc.Ingestion.IngestDailyAndBackfill(middleware.WithLogger(ctx, jobLogger), now), nil
}

func printSummary(w io.Writer, s domain.IngestionSummary) {
	fmt.Fprintf(w, "dates attempted:       %d\n", s.DatesAttempted)
	fmt.Fprintf(w, "dates failed:          %d\n", s.DatesFailed)
	fmt.Fprintf(w, "rates inserted:        %d\n", s.RatesInserted)
	fmt.Fprintf(w, "currencies registered: %d\n", s.CurrenciesRegistered)
	for _, d := range s.FailedDates {
		fmt.Fprintf(w, "  failed: %s\n", d.Format(time.DateOnly))
	}
}
