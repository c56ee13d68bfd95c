package progress

import (
	"reflect"
	"testing"
)

func TestStreakConsecutive(t *testing.T) {
	history := History{
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-03": true,
	}
	if got := Streak(history, "2024-01-03"); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestStreakBrokenByGap(t *testing.T) {
	history := History{
		"2024-01-01": true,
		"2024-01-03": true,
	}
	if got := Streak(history, "2024-01-03"); got != 1 {
		t.Fatalf("expected streak 1 across a gap, got %d", got)
	}
}

func TestStreakZeroWhenRefIncomplete(t *testing.T) {
	history := History{"2024-01-01": true}
	if got := Streak(history, "2024-01-03"); got != 0 {
		t.Fatalf("expected streak 0 when the reference day is incomplete, got %d", got)
	}
	if got := Streak(History{}, "2024-01-03"); got != 0 {
		t.Fatalf("expected streak 0 for empty history, got %d", got)
	}
}

func TestStreakSpansMonthBoundary(t *testing.T) {
	history := History{
		"2024-02-28": true,
		"2024-02-29": true,
		"2024-03-01": true,
	}
	if got := Streak(history, "2024-03-01"); got != 3 {
		t.Fatalf("expected streak 3 across the leap boundary, got %d", got)
	}
}

func TestTotalCompletedDays(t *testing.T) {
	history := History{
		"2024-01-01": true,
		"2024-01-02": false,
		"2024-01-05": true,
	}
	if got := TotalCompletedDays(history); got != 2 {
		t.Fatalf("expected 2 completed days, got %d", got)
	}
}

func TestWeeklyProgress(t *testing.T) {
	history := History{
		"2024-06-09": true, // 6 days before today
		"2024-06-14": true, // yesterday
		"2024-06-15": true, // today
	}
	got := WeeklyProgress(history, "2024-06-15")
	want := [7]bool{true, false, false, false, false, true, true}
	if got != want {
		t.Fatalf("weekly progress = %v, want %v", got, want)
	}
}

func TestCategoryStats(t *testing.T) {
	items := []CategoryItem{
		{ID: "a", Category: "X"},
		{ID: "b", Category: "X"},
		{ID: "c", Category: "Y"},
	}
	completed := map[string]bool{"a": true}

	got := CategoryStats(items, completed)
	want := []CategoryStat{
		{Category: "X", Completed: 1, Total: 2},
		{Category: "Y", Completed: 0, Total: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("category stats = %v, want %v", got, want)
	}
}

func TestCategoryStatsIgnoresItemDates(t *testing.T) {
	// Completion is cumulative: an id marked complete counts no matter
	// which day its catalog entry was valid for.
	items := []CategoryItem{{ID: "old", Category: "X"}}
	got := CategoryStats(items, map[string]bool{"old": true})
	if got[0].Completed != 1 {
		t.Fatalf("expected cumulative completion, got %d", got[0].Completed)
	}
}

func TestReadinessScore(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{3, 5, 60},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
	}
	for _, tc := range cases {
		if got := ReadinessScore(tc.completed, tc.total); got != tc.want {
			t.Fatalf("ReadinessScore(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
		}
	}
}

func TestZoneFor(t *testing.T) {
	if ZoneFor(100).Label != "Locked In" || ZoneFor(80).Label != "Locked In" {
		t.Fatal("expected Locked In at 80 and above")
	}
	if ZoneFor(79).Label != "Needs Adjustment" || ZoneFor(50).Label != "Needs Adjustment" {
		t.Fatal("expected Needs Adjustment between 50 and 79")
	}
	if ZoneFor(49).Label != "Off Mission" || ZoneFor(0).Label != "Off Mission" {
		t.Fatal("expected Off Mission below 50")
	}
}

func TestDeriversDoNotMutateHistory(t *testing.T) {
	history := History{"2024-01-01": true, "2024-01-02": true}
	Streak(history, "2024-01-02")
	TotalCompletedDays(history)
	WeeklyProgress(history, "2024-01-02")
	if len(history) != 2 || !history["2024-01-01"] || !history["2024-01-02"] {
		t.Fatalf("history mutated by derivers: %v", history)
	}
}
