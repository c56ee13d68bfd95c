// Package pick implements deterministic date-seeded selection from static
// catalogs. The only contract is that the same calendar date always yields
// the same choice from a given fixed-order list; the distribution is not
// uniform and no collision avoidance across days is promised.
package pick

import (
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
)

// ForDate returns the catalog item for the given day, or false when the
// list is empty. The index is the date seed modulo the list length.
func ForDate[T any](items []T, day dates.DayKey) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	seed := day.Seed()
	return items[seed%len(items)], true
}

// lcg advances the linear-congruential state used by BatchForDate.
func lcg(seed int) int {
	return (seed*9301 + 49297) % 233280
}

// BatchForDate returns up to count items in a deterministic per-day order,
// produced by a Fisher-Yates shuffle driven by an LCG seeded from the date.
// The input slice is never mutated.
func BatchForDate[T any](items []T, day dates.DayKey, count int) []T {
	if len(items) == 0 || count <= 0 {
		return nil
	}

	shuffled := make([]T, len(items))
	copy(shuffled, items)

	seed := day.Seed()
	for i := len(shuffled); i > 0; i-- {
		seed = lcg(seed)
		j := seed * i / 233280
		shuffled[i-1], shuffled[j] = shuffled[j], shuffled[i-1]
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
