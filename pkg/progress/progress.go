// Package progress derives streaks and aggregate statistics from day-keyed
// completion records. Every function here is pure: inputs are never mutated
// and results depend only on the arguments, so the reference day is always
// passed in rather than read from the clock.
package progress

import (
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
)

// History is the day-keyed ledger of fully completed days. A key is present
// with value true only for days on which every discipline was completed.
type History map[dates.DayKey]bool

// maxLookback caps the backward walk when counting a streak.
const maxLookback = 365

// Streak counts consecutive completed days ending at ref, walking backward
// one calendar day at a time and stopping at the first day that is missing
// or false. A ref day that is not itself complete yields 0.
func Streak(history History, ref dates.DayKey) int {
	if len(history) == 0 {
		return 0
	}
	streak := 0
	day := ref
	for i := 0; i < maxLookback; i++ {
		if !history[day] {
			break
		}
		streak++
		day = day.AddDays(-1)
	}
	return streak
}

// TotalCompletedDays counts ledger entries recorded as complete.
func TotalCompletedDays(history History) int {
	total := 0
	for _, done := range history {
		if done {
			total++
		}
	}
	return total
}

// WeeklyProgress reports the last 7 calendar days ending at today, oldest
// first. Each element is true when that day is recorded complete.
func WeeklyProgress(history History, today dates.DayKey) [7]bool {
	var week [7]bool
	for i := 0; i < 7; i++ {
		week[i] = history[today.AddDays(i-6)]
	}
	return week
}

// CategoryStat aggregates completion counts for one catalog category.
type CategoryStat struct {
	Category  string
	Completed int
	Total     int
}

// CategoryItem is the slice of a catalog record the aggregator needs.
type CategoryItem struct {
	ID       string
	Category string
}

// CategoryStats groups items by category and counts how many of each are
// present in completed. The count is cumulative over all time, not scoped
// to the item's own date. Categories appear in first-encounter order.
func CategoryStats(items []CategoryItem, completed map[string]bool) []CategoryStat {
	order := make([]string, 0)
	byCategory := make(map[string]*CategoryStat)

	for _, item := range items {
		stat, ok := byCategory[item.Category]
		if !ok {
			stat = &CategoryStat{Category: item.Category}
			byCategory[item.Category] = stat
			order = append(order, item.Category)
		}
		stat.Total++
		if completed[item.ID] {
			stat.Completed++
		}
	}

	stats := make([]CategoryStat, 0, len(order))
	for _, category := range order {
		stats = append(stats, *byCategory[category])
	}
	return stats
}

// ReadinessScore is the percentage of disciplines completed today, rounded
// to the nearest whole point. An empty set scores 0.
func ReadinessScore(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (completed*100 + total/2) / total
}

// Zone is the qualitative band a readiness score falls into.
type Zone struct {
	Label    string
	Feedback string
}

var (
	zoneLockedIn        = Zone{Label: "Locked In", Feedback: "You did what you said you would."}
	zoneNeedsAdjustment = Zone{Label: "Needs Adjustment", Feedback: "Tension is rising."}
	zoneOffMission      = Zone{Label: "Off Mission", Feedback: "Realign your habits."}
)

// ZoneFor maps a readiness score to its band: 80+ locked in, 50-79 needs
// adjustment, below 50 off mission.
func ZoneFor(score int) Zone {
	switch {
	case score >= 80:
		return zoneLockedIn
	case score >= 50:
		return zoneNeedsAdjustment
	default:
		return zoneOffMission
	}
}
