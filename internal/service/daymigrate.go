package service

import (
	"database/sql"
	"fmt"
	"time"
)

// DayKeyMigrationReport describes one correction pass. Warnings carry the
// per-entry failures that kept the migration flag unset.
type DayKeyMigrationReport struct {
	AlreadyDone bool     `json:"already_done"`
	Checked     int      `json:"checked"`
	Rewritten   int      `json:"rewritten"`
	Warnings    []string `json:"warnings,omitempty"`
}

// RunDayKeyMigrationIfNeeded repairs entries whose day key was derived by
// truncating the UTC form of the logged timestamp instead of taking the local
// calendar date. An entry is stale when its stored day matches the UTC date
// of its timestamp while the local date of that same instant differs; such
// entries get the local date written in place, leaving the id and every other
// field untouched. Entries whose day does not match the UTC date were either
// already corrected or carry an explicit historical override, so re-checking
// them is a no-op and re-runs are safe.
//
// The pass is at-least-once and partial-failure tolerant: a failing entry is
// recorded as a warning and skipped, and the done flag is only set after a
// pass with zero failures, so the next startup retries the remainder.
func RunDayKeyMigrationIfNeeded(db *sql.DB) (*DayKeyMigrationReport, error) {
	report := &DayKeyMigrationReport{}

	value, found, err := GetConfig(db, ConfigDayKeyMigration)
	if err != nil {
		return nil, err
	}
	if found && value == "done" {
		report.AlreadyDone = true
		return report, nil
	}

	rows, err := db.Query(`SELECT id, day, logged_at FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("scan entries for day-key migration: %w", err)
	}
	type entryDay struct {
		id       string
		day      string
		loggedAt string
	}
	pending := make([]entryDay, 0)
	for rows.Next() {
		var ed entryDay
		if err := rows.Scan(&ed.id, &ed.day, &ed.loggedAt); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan entry day: %w", err)
		}
		pending = append(pending, ed)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterate entry days: %w", err)
	}
	_ = rows.Close()

	for _, ed := range pending {
		report.Checked++
		corrected, err := correctedDayKey(ed.day, ed.loggedAt)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("entry %s: %v", ed.id, err))
			continue
		}
		if corrected == ed.day {
			continue
		}
		res, err := db.Exec(`UPDATE entries SET day = ? WHERE id = ?`, corrected, ed.id)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("entry %s: rewrite day: %v", ed.id, err))
			continue
		}
		if affected, err := res.RowsAffected(); err != nil || affected == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("entry %s: day rewrite did not apply", ed.id))
			continue
		}
		report.Rewritten++
	}

	if len(report.Warnings) > 0 {
		return report, nil
	}
	if err := SetConfig(db, ConfigDayKeyMigration, "done"); err != nil {
		return nil, err
	}
	return report, nil
}

// correctedDayKey returns the day an entry should carry. Only a day equal to
// the UTC date of the logged instant is treated as a product of the old
// convention; anything else is kept as-is.
func correctedDayKey(day, loggedAt string) (string, error) {
	if _, err := time.Parse(DayKeyFormat, day); err != nil {
		return "", fmt.Errorf("invalid stored day %q: %w", day, err)
	}
	t, err := time.Parse(time.RFC3339Nano, loggedAt)
	if err != nil {
		return "", fmt.Errorf("invalid logged_at %q: %w", loggedAt, err)
	}
	if day != t.UTC().Format(DayKeyFormat) {
		return day, nil
	}
	return DayKey(t.In(time.Local)), nil
}
