package nutlog

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/nutlog/nutlog/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportDays int
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the per-day series as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			var w io.Writer = cmd.OutOrStdout()
			if exportOut != "" {
				f, err := os.Create(exportOut)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := service.ExportSeriesCSV(sqldb, w, exportDays); err != nil {
				return err
			}
			if exportOut != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d days to %s\n", exportDays, exportOut)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().IntVar(&exportDays, "days", 30, "Number of days ending today")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to file instead of stdout")
}
