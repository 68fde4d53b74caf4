package nutlog

import (
	"database/sql"
	"fmt"

	"github.com/nutlog/nutlog/internal/service"
	"github.com/spf13/cobra"
)

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "Manage per-day calories-burned offsets",
}

var (
	burnSetDate     string
	burnSetCalories int
)

var burnSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the calories burned for a day (overwrites)",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDayFlag(burnSetDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetBurned(sqldb, day, burnSetCalories); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %d kcal burned on %s\n", burnSetCalories, day)
			return nil
		})
	},
}

var burnShowDate string

var burnShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the calories burned for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDayFlag(burnShowDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			burned, err := service.BurnedForDay(sqldb, day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d kcal burned\n", day, burned)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(burnCmd)
	burnCmd.AddCommand(burnSetCmd, burnShowCmd)

	burnSetCmd.Flags().StringVar(&burnSetDate, "date", "", "Day YYYY-MM-DD (default today)")
	burnSetCmd.Flags().IntVar(&burnSetCalories, "calories", 0, "Calories burned")
	_ = burnSetCmd.MarkFlagRequired("calories")

	burnShowCmd.Flags().StringVar(&burnShowDate, "date", "", "Day YYYY-MM-DD (default today)")
}
