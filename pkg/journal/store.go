package journal

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// state is the whole persisted document for the journal store. The prompt
// catalog itself is static and not persisted; only the day's pick is.
type state struct {
	Entries        []*Entry     `json:"entries"`
	CurrentPrompt  *Prompt      `json:"currentPrompt"`
	LastPromptDate dates.DayKey `json:"lastPromptDate"`
}

// Store holds journal entries and the persisted "today's prompt" slot.
type Store struct {
	prompts []Prompt
	state   state
	p       store.Persistence
	now     func() time.Time
	intn    func(n int) int
}

// NewStore loads persisted journal state and binds the static prompt
// catalog. Missing or malformed documents fall back to empty state.
func NewStore(p store.Persistence, prompts []Prompt) *Store {
	s := &Store{
		prompts: prompts,
		p:       p,
		now:     time.Now,
		intn:    rand.Intn,
	}
	s.load()
	return s
}

func (s *Store) load() {
	if s.p == nil {
		return
	}
	data, err := s.p.Read(store.JournalKey)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		fmt.Fprintf(os.Stderr, "journal: malformed state, resetting: %v\n", err)
		s.state = state{}
	}
}

func (s *Store) save() {
	data, err := json.Marshal(s.state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "journal: marshal state: %v\n", err)
		return
	}
	store.BestEffortWrite(s.p, store.JournalKey, data)
}

func (s *Store) today() dates.DayKey {
	return dates.FromTime(s.now())
}

// Initialize picks a prompt for today when the stored pick is from another
// day. Safe to call on every startup.
func (s *Store) Initialize() {
	if s.state.LastPromptDate != s.today() {
		s.RefreshTodayPrompt()
	}
}

// RefreshTodayPrompt draws a prompt for today and persists the pick. The
// draw is an independent random pick over the catalog, so a manual refresh
// may land on a different prompt than a previous one the same day.
func (s *Store) RefreshTodayPrompt() {
	if len(s.prompts) == 0 {
		s.state.CurrentPrompt = nil
		s.state.LastPromptDate = s.today()
		s.save()
		return
	}
	prompt := s.prompts[s.intn(len(s.prompts))]
	s.state.CurrentPrompt = &prompt
	s.state.LastPromptDate = s.today()
	s.save()
}

// CurrentPrompt returns the persisted prompt for today, if one is set.
func (s *Store) CurrentPrompt() (Prompt, bool) {
	if s.state.CurrentPrompt == nil {
		return Prompt{}, false
	}
	return *s.state.CurrentPrompt, true
}

// AddEntry writes today's reflection. A second write on the same date
// replaces the existing entry's content rather than creating a duplicate.
// Without a current prompt the write is a no-op.
func (s *Store) AddEntry(content string) {
	if s.state.CurrentPrompt == nil {
		return
	}
	today := s.today()
	now := dates.Timestamp{Time: s.now()}

	for _, e := range s.state.Entries {
		if e.Date == today {
			e.Content = content
			e.UpdatedAt = now
			s.save()
			return
		}
	}

	s.state.Entries = append(s.state.Entries, &Entry{
		ID:        strconv.FormatInt(s.now().UnixNano(), 10),
		PromptID:  s.state.CurrentPrompt.ID,
		Content:   content,
		Date:      today,
		CreatedAt: now,
		UpdatedAt: now,
	})
	s.save()
}

// EntryForDate returns the entry written on the given day.
func (s *Store) EntryForDate(date dates.DayKey) (*Entry, bool) {
	for _, e := range s.state.Entries {
		if e.Date == date {
			return e, true
		}
	}
	return nil, false
}

// AllEntries returns every entry, newest first.
func (s *Store) AllEntries() []*Entry {
	out := make([]*Entry, len(s.state.Entries))
	copy(out, s.state.Entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Prompts returns the static prompt catalog.
func (s *Store) Prompts() []Prompt {
	return s.prompts
}
