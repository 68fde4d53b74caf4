package nutlog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nutlog",
	Short: "nutlog is a local-first food and calorie ledger",
	Long:  "nutlog keeps a local ledger of food intake and daily calories burned, and derives day totals, multi-day series, and ranked food search without any network access.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
