package service_test

import (
	"testing"

	"github.com/nutlog/nutlog/internal/service"
)

func TestUniqueFoodsCaseInsensitiveMostRecentWins(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.CreateEntry(db, service.CreateEntryInput{Food: "Apple", Calories: 95}); err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := service.CreateEntry(db, service.CreateEntryInput{Food: "APPLE", Calories: 110}); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	ranked, err := service.UniqueFoods(db)
	if err != nil {
		t.Fatalf("unique foods: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("expected one group for Apple/APPLE, got %d", len(ranked))
	}
	if ranked[0].Frequency != 2 {
		t.Fatalf("expected frequency 2, got %d", ranked[0].Frequency)
	}
	if ranked[0].Food != "APPLE" || ranked[0].Calories != 110 {
		t.Fatalf("expected latest casing and values as representative, got %+v", ranked[0])
	}
}

func TestUniqueFoodsRanking(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	// Banana logged before Cherry; both once. Apple logged twice.
	for _, food := range []string{"Banana", "Apple", "Cherry", "Apple"} {
		if _, err := service.CreateEntry(db, service.CreateEntryInput{Food: food, Calories: 100}); err != nil {
			t.Fatalf("create entry %s: %v", food, err)
		}
	}

	ranked, err := service.UniqueFoods(db)
	if err != nil {
		t.Fatalf("unique foods: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 unique foods, got %d", len(ranked))
	}
	if ranked[0].Food != "Apple" {
		t.Fatalf("expected highest frequency first, got %+v", ranked[0])
	}
	// Equal frequencies: the more recently logged food ranks first.
	if ranked[1].Food != "Cherry" || ranked[2].Food != "Banana" {
		t.Fatalf("expected recency tie-break Cherry then Banana, got %s then %s", ranked[1].Food, ranked[2].Food)
	}
}

func TestSearchFoodsMinimumQueryLength(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.CreateEntry(db, service.CreateEntryInput{Food: "Apple", Calories: 95}); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	for _, q := range []string{"", "a", " a "} {
		matches, err := service.SearchFoods(db, q, 0)
		if err != nil {
			t.Fatalf("search %q: %v", q, err)
		}
		if len(matches) != 0 {
			t.Fatalf("expected no matches for short query %q, got %d", q, len(matches))
		}
	}
}

func TestSearchFoodsSubstringAnyPosition(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	for _, food := range []string{"Pineapple", "Apple Pie", "Banana"} {
		if _, err := service.CreateEntry(db, service.CreateEntryInput{Food: food, Calories: 100}); err != nil {
			t.Fatalf("create entry %s: %v", food, err)
		}
	}

	matches, err := service.SearchFoods(db, "APPLE", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected Pineapple and Apple Pie, got %+v", matches)
	}
	for _, m := range matches {
		if m.Food == "Banana" {
			t.Fatalf("Banana must not match 'apple'")
		}
	}
}

func TestSearchFoodsLimit(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	foods := []string{"Oat Bar", "Oatmeal", "Oat Milk", "Oat Bread", "Oat Cookie", "Oat Flour", "Oat Crackers"}
	for _, food := range foods {
		if _, err := service.CreateEntry(db, service.CreateEntryInput{Food: food, Calories: 100}); err != nil {
			t.Fatalf("create entry %s: %v", food, err)
		}
	}

	matches, err := service.SearchFoods(db, "oat", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != service.DefaultSearchLimit {
		t.Fatalf("expected default limit %d, got %d", service.DefaultSearchLimit, len(matches))
	}

	matches, err = service.SearchFoods(db, "oat", 2)
	if err != nil {
		t.Fatalf("search with limit: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
}
