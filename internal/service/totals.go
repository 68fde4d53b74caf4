package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nutlog/nutlog/internal/model"
)

// DayTotals sums the macro fields over the day's entries. Nothing is cached;
// every call recomputes from the store.
func DayTotals(db *sql.DB, day string) (model.MacroTotals, error) {
	if _, err := ParseDayKey(day); err != nil {
		return model.MacroTotals{}, err
	}
	var t model.MacroTotals
	err := db.QueryRow(`
SELECT IFNULL(SUM(calories), 0), IFNULL(SUM(fat_g), 0), IFNULL(SUM(carbs_g), 0), IFNULL(SUM(protein_g), 0)
FROM entries
WHERE day = ?
`, day).Scan(&t.Calories, &t.FatG, &t.CarbsG, &t.ProteinG)
	if err != nil {
		return model.MacroTotals{}, fmt.Errorf("day totals for %s: %w", day, err)
	}
	return t, nil
}

// NetCalories is consumed minus burned for a day, floored at zero.
func NetCalories(db *sql.DB, day string) (int, error) {
	totals, err := DayTotals(db, day)
	if err != nil {
		return 0, err
	}
	burned, err := BurnedForDay(db, day)
	if err != nil {
		return 0, err
	}
	net := totals.Calories - burned
	if net < 0 {
		net = 0
	}
	return net, nil
}

// Series returns one DayStat per calendar day for the n days ending today,
// oldest first. Days without entries appear with zero totals so chart
// consumers see the gaps.
func Series(db *sql.DB, n int) ([]model.DayStat, error) {
	if n <= 0 {
		return nil, fmt.Errorf("series length must be > 0: %w", ErrValidation)
	}
	now := time.Now()
	out := make([]model.DayStat, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := DayKey(now.AddDate(0, 0, -i))
		totals, err := DayTotals(db, day)
		if err != nil {
			return nil, err
		}
		burned, err := BurnedForDay(db, day)
		if err != nil {
			return nil, err
		}
		out = append(out, model.DayStat{Day: day, Totals: totals, Burned: burned})
	}
	return out, nil
}
