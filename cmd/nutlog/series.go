package nutlog

import (
	"database/sql"
	"fmt"

	"github.com/nutlog/nutlog/internal/service"
	"github.com/spf13/cobra"
)

var seriesDays int

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Show a per-day series ending today, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			series, err := service.Series(sqldb, seriesDays)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tKCAL\tF\tC\tP\tBURNED\tNET")
			for _, d := range series {
				net := d.Totals.Calories - d.Burned
				if net < 0 {
					net = 0
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.1f\t%.1f\t%.1f\t%d\t%d\n",
					d.Day, d.Totals.Calories, d.Totals.FatG, d.Totals.CarbsG, d.Totals.ProteinG, d.Burned, net)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.Flags().IntVar(&seriesDays, "days", 7, "Number of days ending today")
}
