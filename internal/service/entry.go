package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutlog/nutlog/internal/model"
)

// Methods tag where an entry came from. Informational only; the engine never
// calls the producing parsers itself.
const (
	MethodText    = "text"
	MethodVoice   = "voice"
	MethodBarcode = "barcode"
	MethodPhoto   = "photo"
)

type CreateEntryInput struct {
	Food       string
	Quantity   float64
	Unit       string
	Calories   int
	FatG       float64
	CarbsG     float64
	ProteinG   float64
	Method     string
	Confidence *float64
	Day        string // optional historical day; defaults to DayKey(now)
}

// UpdateEntryInput carries a partial update: nil fields are left untouched.
type UpdateEntryInput struct {
	ID       string
	Food     *string
	Quantity *float64
	Unit     *string
	Calories *int
	FatG     *float64
	CarbsG   *float64
	ProteinG *float64
	Day      *string
}

const entryColumns = `id, day, logged_at, food, quantity, unit, calories, fat_g, carbs_g, protein_g, method, confidence`

func CreateEntry(db *sql.DB, in CreateEntryInput) (model.Entry, error) {
	in.Food = strings.TrimSpace(in.Food)
	if in.Food == "" {
		return model.Entry{}, fmt.Errorf("food name is required: %w", ErrValidation)
	}
	if err := validateNonNegativeFloat("quantity", in.Quantity); err != nil {
		return model.Entry{}, err
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return model.Entry{}, err
	}
	if err := validateNonNegativeFloat("fat", in.FatG); err != nil {
		return model.Entry{}, err
	}
	if err := validateNonNegativeFloat("carbs", in.CarbsG); err != nil {
		return model.Entry{}, err
	}
	if err := validateNonNegativeFloat("protein", in.ProteinG); err != nil {
		return model.Entry{}, err
	}
	if in.Confidence != nil {
		if err := validateNonNegativeFloat("confidence", *in.Confidence); err != nil {
			return model.Entry{}, err
		}
	}
	method, err := normalizeMethod(in.Method)
	if err != nil {
		return model.Entry{}, err
	}

	now := time.Now()
	day := strings.TrimSpace(in.Day)
	if day == "" {
		day = DayKey(now)
	} else if _, err := ParseDayKey(day); err != nil {
		return model.Entry{}, err
	}

	e := model.Entry{
		ID:         uuid.NewString(),
		Day:        day,
		LoggedAt:   now,
		Food:       in.Food,
		Quantity:   in.Quantity,
		Unit:       strings.TrimSpace(in.Unit),
		Calories:   in.Calories,
		FatG:       in.FatG,
		CarbsG:     in.CarbsG,
		ProteinG:   in.ProteinG,
		Method:     method,
		Confidence: in.Confidence,
	}

	_, err = db.Exec(`
INSERT INTO entries(id, day, logged_at, food, quantity, unit, calories, fat_g, carbs_g, protein_g, method, confidence)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, e.ID, e.Day, e.LoggedAt.UTC().Format(timestampFormat), e.Food, e.Quantity, e.Unit, e.Calories, e.FatG, e.CarbsG, e.ProteinG, e.Method, nullableFloat(e.Confidence))
	if err != nil {
		return model.Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	return e, nil
}

func EntryByID(db *sql.DB, id string) (model.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Entry{}, fmt.Errorf("entry id is required: %w", ErrValidation)
	}
	row := db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return model.Entry{}, fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Entry{}, fmt.Errorf("get entry %s: %w", id, err)
	}
	return e, nil
}

func UpdateEntry(db *sql.DB, in UpdateEntryInput) (model.Entry, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return model.Entry{}, fmt.Errorf("entry id is required: %w", ErrValidation)
	}

	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	if in.Food != nil {
		food := strings.TrimSpace(*in.Food)
		if food == "" {
			return model.Entry{}, fmt.Errorf("food name is required: %w", ErrValidation)
		}
		sets = append(sets, "food = ?")
		args = append(args, food)
	}
	if in.Quantity != nil {
		if err := validateNonNegativeFloat("quantity", *in.Quantity); err != nil {
			return model.Entry{}, err
		}
		sets = append(sets, "quantity = ?")
		args = append(args, *in.Quantity)
	}
	if in.Unit != nil {
		sets = append(sets, "unit = ?")
		args = append(args, strings.TrimSpace(*in.Unit))
	}
	if in.Calories != nil {
		if err := validateNonNegativeInt("calories", *in.Calories); err != nil {
			return model.Entry{}, err
		}
		sets = append(sets, "calories = ?")
		args = append(args, *in.Calories)
	}
	if in.FatG != nil {
		if err := validateNonNegativeFloat("fat", *in.FatG); err != nil {
			return model.Entry{}, err
		}
		sets = append(sets, "fat_g = ?")
		args = append(args, *in.FatG)
	}
	if in.CarbsG != nil {
		if err := validateNonNegativeFloat("carbs", *in.CarbsG); err != nil {
			return model.Entry{}, err
		}
		sets = append(sets, "carbs_g = ?")
		args = append(args, *in.CarbsG)
	}
	if in.ProteinG != nil {
		if err := validateNonNegativeFloat("protein", *in.ProteinG); err != nil {
			return model.Entry{}, err
		}
		sets = append(sets, "protein_g = ?")
		args = append(args, *in.ProteinG)
	}
	if in.Day != nil {
		if _, err := ParseDayKey(*in.Day); err != nil {
			return model.Entry{}, err
		}
		sets = append(sets, "day = ?")
		args = append(args, strings.TrimSpace(*in.Day))
	}
	if len(sets) == 0 {
		return model.Entry{}, fmt.Errorf("no fields to update: %w", ErrValidation)
	}

	args = append(args, in.ID)
	res, err := db.Exec(`UPDATE entries SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return model.Entry{}, fmt.Errorf("update entry %s: %w", in.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.Entry{}, fmt.Errorf("read rows affected for entry %s: %w", in.ID, err)
	}
	if affected == 0 {
		return model.Entry{}, fmt.Errorf("entry %s: %w", in.ID, ErrNotFound)
	}
	return EntryByID(db, in.ID)
}

func DeleteEntry(db *sql.DB, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("entry id is required: %w", ErrValidation)
	}
	res, err := db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for entry %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListEntriesForDay returns the day's entries, most recent first.
func ListEntriesForDay(db *sql.DB, day string) ([]model.Entry, error) {
	if _, err := ParseDayKey(day); err != nil {
		return nil, err
	}
	rows, err := db.Query(`SELECT `+entryColumns+` FROM entries WHERE day = ? ORDER BY logged_at DESC`, day)
	if err != nil {
		return nil, fmt.Errorf("list entries for %s: %w", day, err)
	}
	return collectEntries(rows)
}

// ListAllEntries returns every entry, oldest first. The ranking pass depends
// on this order.
func ListAllEntries(db *sql.DB) ([]model.Entry, error) {
	rows, err := db.Query(`SELECT ` + entryColumns + ` FROM entries ORDER BY logged_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return collectEntries(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (model.Entry, error) {
	var e model.Entry
	var loggedAtRaw string
	var confidence sql.NullFloat64
	if err := row.Scan(&e.ID, &e.Day, &loggedAtRaw, &e.Food, &e.Quantity, &e.Unit, &e.Calories, &e.FatG, &e.CarbsG, &e.ProteinG, &e.Method, &confidence); err != nil {
		return model.Entry{}, err
	}
	loggedAt, err := time.Parse(time.RFC3339Nano, loggedAtRaw)
	if err != nil {
		return model.Entry{}, fmt.Errorf("parse logged_at for entry %s: %w", e.ID, err)
	}
	e.LoggedAt = loggedAt
	if confidence.Valid {
		v := confidence.Float64
		e.Confidence = &v
	}
	return e, nil
}

func collectEntries(rows *sql.Rows) ([]model.Entry, error) {
	defer rows.Close()
	entries := make([]model.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func normalizeMethod(method string) (string, error) {
	method = strings.ToLower(strings.TrimSpace(method))
	switch method {
	case "":
		return MethodText, nil
	case MethodText, MethodVoice, MethodBarcode, MethodPhoto:
		return method, nil
	default:
		return "", fmt.Errorf("invalid method %q (use text, voice, barcode, or photo): %w", method, ErrValidation)
	}
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}
