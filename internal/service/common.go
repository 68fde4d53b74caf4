package service

import (
	"fmt"
	"strings"
)

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0: %w", name, ErrValidation)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0: %w", name, ErrValidation)
	}
	return nil
}

// normalizeFood is the grouping key for dedup and search: case-insensitive,
// surrounding whitespace ignored.
func normalizeFood(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
