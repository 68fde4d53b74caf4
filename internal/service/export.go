package service

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ExportSeriesCSV writes the n-day series as CSV, oldest day first. It is a
// pure consumer of Series output; nothing is read that Series and the offset
// store do not already expose.
func ExportSeriesCSV(db *sql.DB, w io.Writer, n int) error {
	series, err := Series(db, n)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "calories", "fat_g", "carbs_g", "protein_g", "burned", "net"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, d := range series {
		net := d.Totals.Calories - d.Burned
		if net < 0 {
			net = 0
		}
		record := []string{
			d.Day,
			strconv.Itoa(d.Totals.Calories),
			strconv.FormatFloat(d.Totals.FatG, 'f', 1, 64),
			strconv.FormatFloat(d.Totals.CarbsG, 'f', 1, 64),
			strconv.FormatFloat(d.Totals.ProteinG, 'f', 1, 64),
			strconv.Itoa(d.Burned),
			strconv.Itoa(net),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row for %s: %w", d.Day, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
