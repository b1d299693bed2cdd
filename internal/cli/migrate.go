package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/currency_rates_app/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply all pending migrations (up) or roll back the last one (down)",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := database.MigrateUp
		if len(args) == 1 {
			direction = database.MigrationDirection(args[0])
		}
		if err := getApp().migrate(direction); err != nil {
			return fmt.Errorf("migrate %s: %w", direction, err)
		}
		return nil
	},
}
