package nutlog

import (
	"database/sql"
	"fmt"

	"github.com/nutlog/nutlog/internal/app"
	"github.com/nutlog/nutlog/internal/db"
	"github.com/nutlog/nutlog/internal/service"
	"github.com/spf13/cobra"
)

// migrateCmd runs the day-key correction explicitly and prints its report.
// withDB already runs the same pass before every command; this exists to
// inspect the outcome, in particular entries that keep failing.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run the one-time day-key correction and print its report",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}
		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer func(sqldb *sql.DB) { _ = sqldb.Close() }(sqldb)

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}
		report, err := service.RunDayKeyMigrationIfNeeded(sqldb)
		if err != nil {
			return err
		}
		if report.AlreadyDone {
			fmt.Fprintln(cmd.OutOrStdout(), "Day-key migration already complete")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Checked %d entries, rewrote %d\n", report.Checked, report.Rewritten)
		for _, w := range report.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
		}
		if len(report.Warnings) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Migration incomplete; failed entries retry on next run")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
