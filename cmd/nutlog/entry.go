package nutlog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/nutlog/nutlog/internal/model"
	"github.com/nutlog/nutlog/internal/service"
	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage food intake entries",
}

var (
	entryFood       string
	entryQuantity   float64
	entryUnit       string
	entryCalories   int
	entryFat        float64
	entryCarbs      float64
	entryProtein    float64
	entryMethod     string
	entryConfidence float64
	entryDate       string
)

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.CreateEntryInput{
			Food:     entryFood,
			Quantity: entryQuantity,
			Unit:     entryUnit,
			Calories: entryCalories,
			FatG:     entryFat,
			CarbsG:   entryCarbs,
			ProteinG: entryProtein,
			Method:   entryMethod,
			Day:      entryDate,
		}
		if cmd.Flags().Changed("confidence") {
			v := entryConfidence
			in.Confidence = &v
		}
		return withDB(func(sqldb *sql.DB) error {
			e, err := service.CreateEntry(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s (%s, %d kcal on %s)\n", e.ID, e.Food, e.Calories, e.Day)
			return nil
		})
	},
}

var entryListDate string

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries for a day, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDayFlag(entryListDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListEntriesForDay(sqldb, day)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tFOOD\tQTY\tKCAL\tF\tC\tP\tMETHOD")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f %s\t%d\t%.1f\t%.1f\t%.1f\t%s\n",
					e.ID, e.LoggedAt.Local().Format("15:04"), e.Food, e.Quantity, e.Unit, e.Calories, e.FatG, e.CarbsG, e.ProteinG, e.Method)
			}
			return nil
		})
	},
}

var entryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			e, err := service.EntryByID(sqldb, args[0])
			if err != nil {
				return err
			}
			printEntry(cmd, e)
			return nil
		})
	},
}

var (
	updateFood     string
	updateQuantity float64
	updateUnit     string
	updateCalories int
	updateFat      float64
	updateCarbs    float64
	updateProtein  float64
	updateDate     string
)

var entryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.UpdateEntryInput{ID: args[0]}
		if cmd.Flags().Changed("food") {
			in.Food = &updateFood
		}
		if cmd.Flags().Changed("quantity") {
			in.Quantity = &updateQuantity
		}
		if cmd.Flags().Changed("unit") {
			in.Unit = &updateUnit
		}
		if cmd.Flags().Changed("calories") {
			in.Calories = &updateCalories
		}
		if cmd.Flags().Changed("fat") {
			in.FatG = &updateFat
		}
		if cmd.Flags().Changed("carbs") {
			in.CarbsG = &updateCarbs
		}
		if cmd.Flags().Changed("protein") {
			in.ProteinG = &updateProtein
		}
		if cmd.Flags().Changed("date") {
			in.Day = &updateDate
		}
		return withDB(func(sqldb *sql.DB) error {
			e, err := service.UpdateEntry(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s\n", e.ID)
			return nil
		})
	},
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", id)
			return nil
		})
	},
}

func printEntry(cmd *cobra.Command, e model.Entry) {
	fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", e.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Day: %s\n", e.Day)
	fmt.Fprintf(cmd.OutOrStdout(), "Logged: %s\n", e.LoggedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(cmd.OutOrStdout(), "Food: %s\n", e.Food)
	fmt.Fprintf(cmd.OutOrStdout(), "Quantity: %.1f %s\n", e.Quantity, e.Unit)
	fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d\n", e.Calories)
	fmt.Fprintf(cmd.OutOrStdout(), "Fat: %.1f\nCarbs: %.1f\nProtein: %.1f\n", e.FatG, e.CarbsG, e.ProteinG)
	fmt.Fprintf(cmd.OutOrStdout(), "Method: %s\n", e.Method)
	if e.Confidence != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Confidence: %.2f\n", *e.Confidence)
	}
}

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entryAddCmd, entryListCmd, entryShowCmd, entryUpdateCmd, entryDeleteCmd)

	entryAddCmd.Flags().StringVar(&entryFood, "food", "", "Food name")
	entryAddCmd.Flags().Float64Var(&entryQuantity, "quantity", 1, "Amount consumed")
	entryAddCmd.Flags().StringVar(&entryUnit, "unit", "serving", "Unit for the amount")
	entryAddCmd.Flags().IntVar(&entryCalories, "calories", 0, "Calories")
	entryAddCmd.Flags().Float64Var(&entryFat, "fat", 0, "Fat grams")
	entryAddCmd.Flags().Float64Var(&entryCarbs, "carbs", 0, "Carbs grams")
	entryAddCmd.Flags().Float64Var(&entryProtein, "protein", 0, "Protein grams")
	entryAddCmd.Flags().StringVar(&entryMethod, "method", "text", "Entry method: text, voice, barcode, or photo")
	entryAddCmd.Flags().Float64Var(&entryConfidence, "confidence", 0, "Parser confidence score")
	entryAddCmd.Flags().StringVar(&entryDate, "date", "", "Historical day YYYY-MM-DD (default today)")
	_ = entryAddCmd.MarkFlagRequired("food")
	_ = entryAddCmd.MarkFlagRequired("calories")

	entryListCmd.Flags().StringVar(&entryListDate, "date", "", "Day YYYY-MM-DD (default today)")

	entryUpdateCmd.Flags().StringVar(&updateFood, "food", "", "Food name")
	entryUpdateCmd.Flags().Float64Var(&updateQuantity, "quantity", 0, "Amount consumed")
	entryUpdateCmd.Flags().StringVar(&updateUnit, "unit", "", "Unit for the amount")
	entryUpdateCmd.Flags().IntVar(&updateCalories, "calories", 0, "Calories")
	entryUpdateCmd.Flags().Float64Var(&updateFat, "fat", 0, "Fat grams")
	entryUpdateCmd.Flags().Float64Var(&updateCarbs, "carbs", 0, "Carbs grams")
	entryUpdateCmd.Flags().Float64Var(&updateProtein, "protein", 0, "Protein grams")
	entryUpdateCmd.Flags().StringVar(&updateDate, "date", "", "Move entry to day YYYY-MM-DD")
}
