package service

import (
	"fmt"
	"time"
)

// DayKeyFormat is the calendar-day identifier format used to partition
// entries and offsets.
const DayKeyFormat = "2006-01-02"

// timestampFormat stores creation instants in UTC with fixed-width
// nanoseconds so the TEXT column orders lexicographically by time.
const timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

// DayKey returns the calendar-day key for t using the wall-clock date in t's
// location. Every component that partitions by day routes through this
// function; deriving a day by truncating a UTC-formatted string is exactly
// the midnight-boundary bug the day-key correction pass exists to undo.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// ParseDayKey validates a day key and returns local midnight of that day.
func ParseDayKey(day string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyFormat, day, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD: %w", day, ErrValidation)
	}
	return t, nil
}
