package nutlog

import (
	"database/sql"
	"fmt"

	"github.com/nutlog/nutlog/internal/model"
	"github.com/nutlog/nutlog/internal/service"
	"github.com/spf13/cobra"
)

var foodsLimit int

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List unique foods ranked by frequency and recency",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ranked, err := service.UniqueFoods(sqldb)
			if err != nil {
				return err
			}
			if foodsLimit > 0 && len(ranked) > foodsLimit {
				ranked = ranked[:foodsLimit]
			}
			printRankedFoods(cmd, ranked)
			return nil
		})
	},
}

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search logged foods by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ranked, err := service.SearchFoods(sqldb, args[0], searchLimit)
			if err != nil {
				return err
			}
			printRankedFoods(cmd, ranked)
			return nil
		})
	},
}

func printRankedFoods(cmd *cobra.Command, ranked []model.RankedFood) {
	fmt.Fprintln(cmd.OutOrStdout(), "FOOD\tFREQ\tQTY\tKCAL\tF\tC\tP")
	for _, rf := range ranked {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.1f %s\t%d\t%.1f\t%.1f\t%.1f\n",
			rf.Food, rf.Frequency, rf.Quantity, rf.Unit, rf.Calories, rf.FatG, rf.CarbsG, rf.ProteinG)
	}
}

func init() {
	rootCmd.AddCommand(foodsCmd, searchCmd)
	foodsCmd.Flags().IntVar(&foodsLimit, "limit", 0, "Limit results (0 = all)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", service.DefaultSearchLimit, "Result limit")
}
