package discipline

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// state is the whole persisted document for the disciplines store.
type state struct {
	Disciplines       []*Discipline    `json:"disciplines"`
	Initialized       bool             `json:"isInitialized"`
	CompletionHistory progress.History `json:"completionHistory"`
}

// Store holds the discipline collection in memory and persists the full
// state after every mutation. Mutations on unknown ids are silent no-ops.
type Store struct {
	state state
	p     store.Persistence
	now   func() time.Time
}

// NewStore loads any persisted state from p. Missing or malformed documents
// fall back to an empty, uninitialized state rather than failing.
func NewStore(p store.Persistence) *Store {
	s := &Store{p: p, now: time.Now}
	s.load()
	return s
}

func (s *Store) load() {
	defer func() {
		if s.state.CompletionHistory == nil {
			s.state.CompletionHistory = make(progress.History)
		}
	}()
	if s.p == nil {
		return
	}
	data, err := s.p.Read(store.DisciplinesKey)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		fmt.Fprintf(os.Stderr, "discipline: malformed state, resetting: %v\n", err)
		s.state = state{}
	}
}

func (s *Store) save() {
	data, err := json.Marshal(s.state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "discipline: marshal state: %v\n", err)
		return
	}
	store.BestEffortWrite(s.p, store.DisciplinesKey, data)
}

func (s *Store) today() dates.DayKey {
	return dates.FromTime(s.now())
}

// Initialize seeds the collection with the default disciplines on the
// first-ever run. Subsequent calls are no-ops, so it is safe to call on
// every startup.
func (s *Store) Initialize(seed []Discipline) {
	if s.state.Initialized {
		return
	}
	s.state.Disciplines = make([]*Discipline, 0, len(seed))
	for i := range seed {
		d := seed[i]
		s.state.Disciplines = append(s.state.Disciplines, &d)
	}
	s.state.Initialized = true
	s.save()
}

// Add appends a new discipline built from form data and persists.
func (s *Store) Add(form FormData) *Discipline {
	now := dates.Timestamp{Time: s.now()}
	d := &Discipline{
		ID:           strconv.FormatInt(s.now().UnixNano(), 10),
		Title:        form.Title,
		Description:  form.Description,
		ReminderTime: form.ReminderTime,
		Completed:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.state.Disciplines = append(s.state.Disciplines, d)
	s.save()
	return d
}

// Update merges the patch into the discipline with the given id and bumps
// UpdatedAt. Unknown ids are ignored.
func (s *Store) Update(id string, patch Patch) {
	d, ok := s.find(id)
	if !ok {
		return
	}
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.ReminderTime != nil {
		d.ReminderTime = *patch.ReminderTime
	}
	d.UpdatedAt = dates.Timestamp{Time: s.now()}
	s.save()
}

// Delete removes the discipline with the given id. Unknown ids are ignored.
// The completion ledger is left as recorded.
func (s *Store) Delete(id string) {
	for i, d := range s.state.Disciplines {
		if d.ID == id {
			s.state.Disciplines = append(s.state.Disciplines[:i], s.state.Disciplines[i+1:]...)
			s.save()
			return
		}
	}
}

// ToggleComplete flips the completion flag for the given id. When the flip
// leaves every discipline complete, today is recorded in the ledger; when
// it un-completes one, today's ledger entry is removed entirely.
func (s *Store) ToggleComplete(id string) {
	d, ok := s.find(id)
	if !ok {
		return
	}
	d.Completed = !d.Completed
	d.UpdatedAt = dates.Timestamp{Time: s.now()}

	if d.Completed {
		if s.allCompleted() {
			s.state.CompletionHistory[s.today()] = true
		}
	} else {
		delete(s.state.CompletionHistory, s.today())
	}
	s.save()
}

// ResetCompletionStatus clears every completion flag for a new day. The
// ledger is untouched; the next toggle recomputes today's entry.
func (s *Store) ResetCompletionStatus() {
	now := dates.Timestamp{Time: s.now()}
	for _, d := range s.state.Disciplines {
		d.Completed = false
		d.UpdatedAt = now
	}
	s.save()
}

// Disciplines returns the collection in insertion order.
func (s *Store) Disciplines() []*Discipline {
	out := make([]*Discipline, len(s.state.Disciplines))
	copy(out, s.state.Disciplines)
	return out
}

// Get returns the discipline with the given id.
func (s *Store) Get(id string) (*Discipline, bool) {
	return s.find(id)
}

// History returns a copy of the completion ledger.
func (s *Store) History() progress.History {
	out := make(progress.History, len(s.state.CompletionHistory))
	for k, v := range s.state.CompletionHistory {
		out[k] = v
	}
	return out
}

// CompletedCount returns how many disciplines are completed right now,
// alongside the collection size.
func (s *Store) CompletedCount() (completed, total int) {
	for _, d := range s.state.Disciplines {
		if d.Completed {
			completed++
		}
	}
	return completed, len(s.state.Disciplines)
}

func (s *Store) find(id string) (*Discipline, bool) {
	for _, d := range s.state.Disciplines {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

func (s *Store) allCompleted() bool {
	if len(s.state.Disciplines) == 0 {
		return false
	}
	for _, d := range s.state.Disciplines {
		if !d.Completed {
			return false
		}
	}
	return true
}
