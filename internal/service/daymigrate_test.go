package service_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/nutlog/nutlog/internal/service"
)

// The corrections depend on the process zone, so these tests pin time.Local.
// No t.Parallel here or anywhere in this package.
func withZone(t *testing.T, offsetHours int) {
	t.Helper()
	orig := time.Local
	time.Local = time.FixedZone("test", offsetHours*3600)
	t.Cleanup(func() { time.Local = orig })
}

// insertLegacyEntry writes a row the way clients with the UTC day bug did:
// day is the UTC date of the logged instant, not the local one.
func insertLegacyEntry(t *testing.T, db *sql.DB, id, day, loggedAt string) {
	t.Helper()
	_, err := db.Exec(`
INSERT INTO entries(id, day, logged_at, food, quantity, unit, calories)
VALUES(?, ?, ?, 'Apple', 1, '', 95)
`, id, day, loggedAt)
	if err != nil {
		t.Fatalf("insert legacy entry %s: %v", id, err)
	}
}

func TestDayKeyMigrationRewritesWestOfUTC(t *testing.T) {
	withZone(t, -5)
	db := newTestDB(t)
	defer db.Close()

	// Logged 21:00 Jan 9 local, which is 02:00 Jan 10 UTC; the old
	// convention stamped it Jan 10.
	insertLegacyEntry(t, db, "evening", "2025-01-10", "2025-01-10T02:00:00.000000000Z")
	// Logged 10:00 Jan 10 local; UTC and local dates agree.
	insertLegacyEntry(t, db, "midday", "2025-01-10", "2025-01-10T15:00:00.000000000Z")

	report, err := service.RunDayKeyMigrationIfNeeded(db)
	if err != nil {
		t.Fatalf("run migration: %v", err)
	}
	if report.AlreadyDone {
		t.Fatalf("expected first run to execute")
	}
	if report.Checked != 2 || report.Rewritten != 1 {
		t.Fatalf("expected 2 checked / 1 rewritten, got %+v", report)
	}

	evening, err := service.EntryByID(db, "evening")
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if evening.Day != "2025-01-09" {
		t.Fatalf("expected evening entry re-keyed to 2025-01-09, got %s", evening.Day)
	}
	if evening.Food != "Apple" || evening.Calories != 95 || !evening.LoggedAt.Equal(time.Date(2025, 1, 10, 2, 0, 0, 0, time.UTC)) {
		t.Fatalf("migration must touch only the day field, got %+v", evening)
	}

	midday, err := service.EntryByID(db, "midday")
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if midday.Day != "2025-01-10" {
		t.Fatalf("expected midday entry unchanged, got %s", midday.Day)
	}
}

func TestDayKeyMigrationKeepsHistoricalOverrides(t *testing.T) {
	withZone(t, -5)
	db := newTestDB(t)
	defer db.Close()

	// A user-chosen backdate never matches the UTC date of its timestamp
	// and must survive the pass untouched.
	insertLegacyEntry(t, db, "backdated", "2024-12-25", "2025-01-10T02:00:00.000000000Z")

	report, err := service.RunDayKeyMigrationIfNeeded(db)
	if err != nil {
		t.Fatalf("run migration: %v", err)
	}
	if report.Rewritten != 0 {
		t.Fatalf("expected no rewrites, got %+v", report)
	}
	got, err := service.EntryByID(db, "backdated")
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if got.Day != "2024-12-25" {
		t.Fatalf("expected backdated day kept, got %s", got.Day)
	}
}

func TestDayKeyMigrationSecondRunMutatesNothing(t *testing.T) {
	withZone(t, -5)
	db := newTestDB(t)
	defer db.Close()

	insertLegacyEntry(t, db, "evening", "2025-01-10", "2025-01-10T02:00:00.000000000Z")

	if _, err := service.RunDayKeyMigrationIfNeeded(db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	before, err := service.ListAllEntries(db)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}

	report, err := service.RunDayKeyMigrationIfNeeded(db)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !report.AlreadyDone || report.Checked != 0 || report.Rewritten != 0 {
		t.Fatalf("expected second run to be a flagged no-op, got %+v", report)
	}

	after, err := service.ListAllEntries(db)
	if err != nil {
		t.Fatalf("list entries again: %v", err)
	}
	for i := range before {
		if before[i].Day != after[i].Day {
			t.Fatalf("second run mutated entry %s", before[i].ID)
		}
	}
}

func TestDayKeyMigrationNoOpAtUTC(t *testing.T) {
	withZone(t, 0)
	db := newTestDB(t)
	defer db.Close()

	insertLegacyEntry(t, db, "evening", "2025-01-10", "2025-01-10T02:00:00.000000000Z")

	report, err := service.RunDayKeyMigrationIfNeeded(db)
	if err != nil {
		t.Fatalf("run migration: %v", err)
	}
	if report.Rewritten != 0 {
		t.Fatalf("expected no rewrites at UTC, got %+v", report)
	}

	// The flag still flips so the pass never runs again.
	report, err = service.RunDayKeyMigrationIfNeeded(db)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !report.AlreadyDone {
		t.Fatalf("expected flag set after clean pass")
	}
}

func TestDayKeyMigrationPartialFailureRetries(t *testing.T) {
	withZone(t, -5)
	db := newTestDB(t)
	defer db.Close()

	insertLegacyEntry(t, db, "evening", "2025-01-10", "2025-01-10T02:00:00.000000000Z")
	// A corrupt day written by some older client cannot be re-keyed; the
	// pass must skip it, fix everything else, and leave the flag unset.
	insertLegacyEntry(t, db, "corrupt", "not-a-day", "2025-01-10T08:00:00.000000000Z")

	report, err := service.RunDayKeyMigrationIfNeeded(db)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("expected one warning, got %+v", report.Warnings)
	}
	if report.Rewritten != 1 {
		t.Fatalf("expected healthy entry rewritten despite failure, got %+v", report)
	}
	fixed, err := service.EntryByID(db, "evening")
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if fixed.Day != "2025-01-09" {
		t.Fatalf("expected healthy entry corrected, got %s", fixed.Day)
	}

	// Flag stays unset, so the next startup retries. The already-corrected
	// entry no longer matches its UTC date and must not shift again.
	report, err = service.RunDayKeyMigrationIfNeeded(db)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if report.AlreadyDone {
		t.Fatalf("flag must not be set while entries keep failing")
	}
	if report.Rewritten != 0 {
		t.Fatalf("already-corrected entries must re-check as no-ops, got %+v", report)
	}
	fixed, err = service.EntryByID(db, "evening")
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if fixed.Day != "2025-01-09" {
		t.Fatalf("corrected entry shifted again on retry, got %s", fixed.Day)
	}

	// Once the stray entry is repaired, a clean pass completes the migration.
	if _, err := db.Exec(`UPDATE entries SET day = '2025-01-05' WHERE id = 'corrupt'`); err != nil {
		t.Fatalf("repair corrupt entry: %v", err)
	}
	if _, err := service.RunDayKeyMigrationIfNeeded(db); err != nil {
		t.Fatalf("third run: %v", err)
	}
	report, err = service.RunDayKeyMigrationIfNeeded(db)
	if err != nil {
		t.Fatalf("fourth run: %v", err)
	}
	if !report.AlreadyDone {
		t.Fatalf("expected flag set after clean pass")
	}
}
