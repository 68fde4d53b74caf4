package model

import "time"

// Entry is one logged food intake. ID is assigned at creation and never
// changes; Day is the local calendar-day key the entry is partitioned under
// and is rewritten only by the day-key correction pass.
type Entry struct {
	ID         string
	Day        string
	LoggedAt   time.Time
	Food       string
	Quantity   float64
	Unit       string
	Calories   int
	FatG       float64
	CarbsG     float64
	ProteinG   float64
	Method     string
	Confidence *float64
}

// MacroTotals is the macro 4-tuple summed over a set of entries.
type MacroTotals struct {
	Calories int     `json:"calories"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
	ProteinG float64 `json:"protein_g"`
}

// DayStat is one day of a chart-ready series: totals consumed plus the
// calories-burned offset recorded for that day.
type DayStat struct {
	Day    string      `json:"day"`
	Totals MacroTotals `json:"totals"`
	Burned int         `json:"burned"`
}

// RankedFood is a deduplicated food name with its usage frequency and the
// values of its most recent entry, used for search and quick re-entry.
type RankedFood struct {
	Food         string  `json:"food"`
	Frequency    int     `json:"frequency"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Calories     int     `json:"calories"`
	FatG         float64 `json:"fat_g"`
	CarbsG       float64 `json:"carbs_g"`
	ProteinG     float64 `json:"protein_g"`
	LastLoggedAt time.Time
}
