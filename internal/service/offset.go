package service

import (
	"database/sql"
	"fmt"
)

// BurnedForDay returns the calories-burned offset recorded for a day. A day
// with no record reads as 0.
func BurnedForDay(db *sql.DB, day string) (int, error) {
	if _, err := ParseDayKey(day); err != nil {
		return 0, err
	}
	var burned int
	err := db.QueryRow(`SELECT calories_burned FROM day_offsets WHERE day = ?`, day).Scan(&burned)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get offset for %s: %w", day, err)
	}
	return burned, nil
}

// SetBurned overwrites the day's offset wholesale. There is no merging; the
// last write wins.
func SetBurned(db *sql.DB, day string, calories int) error {
	if _, err := ParseDayKey(day); err != nil {
		return err
	}
	if err := validateNonNegativeInt("calories burned", calories); err != nil {
		return err
	}
	_, err := db.Exec(`
INSERT INTO day_offsets(day, calories_burned)
VALUES(?, ?)
ON CONFLICT(day) DO UPDATE SET calories_burned=excluded.calories_burned
`, day, calories)
	if err != nil {
		return fmt.Errorf("set offset for %s: %w", day, err)
	}
	return nil
}
