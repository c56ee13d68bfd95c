package learn

import (
	"testing"
	"time"

	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

type testConfig struct {
	path string
}

func (c testConfig) BasePath() string {
	return c.path
}

var testItems = []Item{
	{ID: "a", Category: "X", Title: "first"},
	{ID: "b", Category: "X", Title: "second"},
	{ID: "c", Category: "Y", Title: "third"},
}

func testStore(t *testing.T) (*Store, store.Persistence) {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return NewStore(p, testItems), p
}

func onDay(s *Store, day string) {
	t, _ := dates.Parse(dates.DayKey(day))
	s.now = func() time.Time { return t.Add(9 * time.Hour) }
}

func TestSelectionIsSingleSlot(t *testing.T) {
	s, _ := testStore(t)
	onDay(s, "2024-06-15")

	s.SelectItem("a")
	s.SelectItem("c")

	selected, ok := s.SelectedItem()
	if !ok {
		t.Fatal("expected a selected item")
	}
	if selected.ID != "c" {
		t.Fatalf("expected the later selection to replace the slot, got %q", selected.ID)
	}
}

func TestNewDayResetsSelectionKeepsCompletions(t *testing.T) {
	s, _ := testStore(t)
	onDay(s, "2024-06-15")
	s.Initialize()
	s.SelectItem("a")
	s.CompleteItem("a")

	onDay(s, "2024-06-16")
	s.Initialize()

	if _, ok := s.SelectedItem(); ok {
		t.Fatal("expected selection cleared on the new day")
	}
	if !s.IsItemCompleted("a") {
		t.Fatal("completion record must survive day rollover")
	}
}

func TestSameDayInitializeKeepsSelection(t *testing.T) {
	s, _ := testStore(t)
	onDay(s, "2024-06-15")
	s.Initialize()
	s.SelectItem("b")

	s.Initialize()
	selected, ok := s.SelectedItem()
	if !ok || selected.ID != "b" {
		t.Fatal("same-day initialize must keep the selection")
	}
}

func TestStats(t *testing.T) {
	s, _ := testStore(t)
	s.CompleteItem("a")

	stats := s.Stats()
	if len(stats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(stats))
	}
	if stats[0].Category != "X" || stats[0].Completed != 1 || stats[0].Total != 2 {
		t.Fatalf("unexpected X stats: %+v", stats[0])
	}
	if stats[1].Category != "Y" || stats[1].Completed != 0 || stats[1].Total != 1 {
		t.Fatalf("unexpected Y stats: %+v", stats[1])
	}
	if s.TotalCompleted() != 1 {
		t.Fatalf("expected 1 total completed, got %d", s.TotalCompleted())
	}
}

func TestStateSurvivesReload(t *testing.T) {
	s, p := testStore(t)
	onDay(s, "2024-06-15")
	s.SelectItem("b")
	s.CompleteItem("b")

	reloaded := NewStore(p, testItems)
	onDay(reloaded, "2024-06-15")
	reloaded.Initialize()

	selected, ok := reloaded.SelectedItem()
	if !ok || selected.ID != "b" {
		t.Fatal("expected selection preserved across reload within the day")
	}
	if !reloaded.IsItemCompleted("b") {
		t.Fatal("expected completion preserved across reload")
	}
}

func TestMalformedStateFallsBack(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Write(store.LearnKey, []byte(`[1,2,3]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := NewStore(p, testItems)
	if s.TotalCompleted() != 0 {
		t.Fatal("expected empty completion record from malformed state")
	}
	s.CompleteItem("a")
	if !s.IsItemCompleted("a") {
		t.Fatal("expected store usable after recovery")
	}
}
