package service

import (
	"database/sql"
	"sort"
	"strings"

	"github.com/nutlog/nutlog/internal/model"
)

// DefaultSearchLimit caps SearchFoods results when the caller passes no
// limit of its own.
const DefaultSearchLimit = 5

// minSearchQueryLen gates out noisy one-character matches.
const minSearchQueryLen = 2

// UniqueFoods groups all entries by case-insensitive food name and ranks the
// groups by frequency, most-used first; equal frequencies rank the more
// recently logged food first. Each group is represented by its most recent
// entry, so the literal casing and macro values shown are the latest ones.
func UniqueFoods(db *sql.DB) ([]model.RankedFood, error) {
	entries, err := ListAllEntries(db)
	if err != nil {
		return nil, err
	}

	// Entries arrive oldest first; overwriting on every hit leaves the most
	// recent entry as the group representative.
	groups := make(map[string]*model.RankedFood, len(entries))
	for _, e := range entries {
		key := normalizeFood(e.Food)
		rf, ok := groups[key]
		if !ok {
			rf = &model.RankedFood{}
			groups[key] = rf
		}
		rf.Frequency++
		rf.Food = e.Food
		rf.Quantity = e.Quantity
		rf.Unit = e.Unit
		rf.Calories = e.Calories
		rf.FatG = e.FatG
		rf.CarbsG = e.CarbsG
		rf.ProteinG = e.ProteinG
		rf.LastLoggedAt = e.LoggedAt
	}

	out := make([]model.RankedFood, 0, len(groups))
	for _, rf := range groups {
		out = append(out, *rf)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].LastLoggedAt.After(out[j].LastLoggedAt)
	})
	return out, nil
}

// SearchFoods filters UniqueFoods to names containing query as a
// case-insensitive substring at any position, preserving rank order. Queries
// shorter than two characters return no matches. A limit <= 0 falls back to
// DefaultSearchLimit.
func SearchFoods(db *sql.DB, query string, limit int) ([]model.RankedFood, error) {
	q := normalizeFood(query)
	if len([]rune(q)) < minSearchQueryLen {
		return []model.RankedFood{}, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	ranked, err := UniqueFoods(db)
	if err != nil {
		return nil, err
	}
	out := make([]model.RankedFood, 0, limit)
	for _, rf := range ranked {
		if !strings.Contains(normalizeFood(rf.Food), q) {
			continue
		}
		out = append(out, rf)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
