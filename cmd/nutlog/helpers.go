package nutlog

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nutlog/nutlog/internal/app"
	"github.com/nutlog/nutlog/internal/db"
	"github.com/nutlog/nutlog/internal/service"
)

// withDB opens the database, brings the schema up to date, runs the one-time
// day-key correction, and hands the connection to the command body. Per-entry
// correction failures are reported but never block a command; the pass
// retries them on the next invocation.
func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	report, err := service.RunDayKeyMigrationIfNeeded(sqldb)
	if err != nil {
		return err
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "day-key migration: %s\n", w)
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func resolveDayFlag(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return service.DayKey(time.Now()), nil
	}
	if _, err := service.ParseDayKey(value); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}
