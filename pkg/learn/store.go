package learn

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// state is the whole persisted document for the learning store. Selection
// is a single day-scoped slot; completion is a cumulative set that is
// never cleared by day rollover.
type state struct {
	SelectedItemID   string          `json:"selectedItemId"`
	CompletedItems   map[string]bool `json:"completedItems"`
	LastSelectedDate dates.DayKey    `json:"lastSelectedDate"`
}

// Store binds the static learning catalog to the persisted selection and
// completion state.
type Store struct {
	items []Item
	state state
	p     store.Persistence
	now   func() time.Time
}

// NewStore loads persisted learning state and binds the catalog. Missing
// or malformed documents fall back to empty state.
func NewStore(p store.Persistence, items []Item) *Store {
	s := &Store{items: items, p: p, now: time.Now}
	s.load()
	return s
}

func (s *Store) load() {
	defer func() {
		if s.state.CompletedItems == nil {
			s.state.CompletedItems = make(map[string]bool)
		}
	}()
	if s.p == nil {
		return
	}
	data, err := s.p.Read(store.LearnKey)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		fmt.Fprintf(os.Stderr, "learn: malformed state, resetting: %v\n", err)
		s.state = state{}
	}
}

func (s *Store) save() {
	data, err := json.Marshal(s.state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "learn: marshal state: %v\n", err)
		return
	}
	store.BestEffortWrite(s.p, store.LearnKey, data)
}

func (s *Store) today() dates.DayKey {
	return dates.FromTime(s.now())
}

// Initialize clears yesterday's selection on the first call of a new day.
// Completed items are cumulative and never reset. Safe to call on every
// startup.
func (s *Store) Initialize() {
	if s.state.LastSelectedDate != s.today() {
		s.ResetDailySelection()
	}
}

// SelectItem fills today's single selection slot. Selecting again the same
// day replaces the slot; there is never more than one selected item.
func (s *Store) SelectItem(id string) {
	s.state.SelectedItemID = id
	s.state.LastSelectedDate = s.today()
	s.save()
}

// CompleteItem records the item as read. The record is cumulative across
// days.
func (s *Store) CompleteItem(id string) {
	s.state.CompletedItems[id] = true
	s.save()
}

// IsItemCompleted reports whether the item has ever been completed.
func (s *Store) IsItemCompleted(id string) bool {
	return s.state.CompletedItems[id]
}

// ResetDailySelection empties the selection slot and stamps today, leaving
// the completion record untouched.
func (s *Store) ResetDailySelection() {
	s.state.SelectedItemID = ""
	s.state.LastSelectedDate = s.today()
	s.save()
}

// SelectedItem resolves today's selected catalog item, if any.
func (s *Store) SelectedItem() (Item, bool) {
	if s.state.SelectedItemID == "" {
		return Item{}, false
	}
	return s.item(s.state.SelectedItemID)
}

// Items returns the static catalog.
func (s *Store) Items() []Item {
	return s.items
}

// Stats aggregates cumulative completion per category, in catalog order.
func (s *Store) Stats() []progress.CategoryStat {
	catItems := make([]progress.CategoryItem, 0, len(s.items))
	for _, item := range s.items {
		catItems = append(catItems, progress.CategoryItem{ID: item.ID, Category: item.Category})
	}
	return progress.CategoryStats(catItems, s.state.CompletedItems)
}

// TotalCompleted counts every item ever completed.
func (s *Store) TotalCompleted() int {
	total := 0
	for _, done := range s.state.CompletedItems {
		if done {
			total++
		}
	}
	return total
}

// CompletedItems returns a copy of the cumulative completion record.
func (s *Store) CompletedItems() map[string]bool {
	out := make(map[string]bool, len(s.state.CompletedItems))
	for k, v := range s.state.CompletedItems {
		out[k] = v
	}
	return out
}

func (s *Store) item(id string) (Item, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
