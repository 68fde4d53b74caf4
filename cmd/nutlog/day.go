package nutlog

import (
	"database/sql"
	"fmt"

	"github.com/nutlog/nutlog/internal/service"
	"github.com/spf13/cobra"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show a day's totals, calories burned, and net calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDayFlag(dayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			totals, err := service.DayTotals(sqldb, day)
			if err != nil {
				return err
			}
			burned, err := service.BurnedForDay(sqldb, day)
			if err != nil {
				return err
			}
			net, err := service.NetCalories(sqldb, day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", day)
			fmt.Fprintf(cmd.OutOrStdout(), "Intake: %d kcal\n", totals.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Macros: F %.1fg | C %.1fg | P %.1fg\n", totals.FatG, totals.CarbsG, totals.ProteinG)
			fmt.Fprintf(cmd.OutOrStdout(), "Burned: %d kcal\n", burned)
			fmt.Fprintf(cmd.OutOrStdout(), "Net: %d kcal\n", net)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Day YYYY-MM-DD (default today)")
}
