// Package journal provides runners for reflection prompts and entries.
package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/catalog"
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/journal"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// Prompt shows today's reflection prompt, with any entry already written.
type Prompt struct {
	Persistence store.Persistence
}

func (n *Prompt) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show prompt, no persistence")
	}

	s := journal.NewStore(n.Persistence, catalog.JournalPrompts())
	s.Initialize()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Today's Reflection")

	prompt, ok := s.CurrentPrompt()
	if !ok {
		fmt.Println("no prompt available")
		return nil
	}
	pp.Prompt(prompt)

	if e, ok := s.EntryForDate(dates.Today()); ok {
		pp.Entries(e)
	}

	return nil
}

// Refresh redraws today's prompt. The new pick is an independent draw and
// may differ from the deterministic daily suggestion.
type Refresh struct {
	Persistence store.Persistence
}

func (n *Refresh) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not refresh, no persistence")
	}

	s := journal.NewStore(n.Persistence, catalog.JournalPrompts())
	s.RefreshTodayPrompt()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Today's Reflection")
	if prompt, ok := s.CurrentPrompt(); ok {
		pp.Prompt(prompt)
	}

	return nil
}

// Write records today's reflection, replacing any earlier write from the
// same day.
type Write struct {
	Content     string
	Persistence store.Persistence
}

func (n *Write) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not write, no persistence")
	}
	if n.Content == "" {
		return errors.New("nothing to write")
	}

	s := journal.NewStore(n.Persistence, catalog.JournalPrompts())
	s.Initialize()
	s.AddEntry(n.Content)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(dates.Today().FormatLong())
	if prompt, ok := s.CurrentPrompt(); ok {
		pp.Prompt(prompt)
	}
	if e, ok := s.EntryForDate(dates.Today()); ok {
		fmt.Printf("%s\n\n", e.Content)
	}

	return nil
}

// Read prints the entry for one day, today by default.
type Read struct {
	Date        dates.DayKey
	Persistence store.Persistence
}

func (n *Read) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not read, no persistence")
	}

	date := n.Date
	if date == "" {
		date = dates.Today()
	}
	if !date.Valid() {
		return fmt.Errorf("not a date: %s", date)
	}

	s := journal.NewStore(n.Persistence, catalog.JournalPrompts())

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(date.FormatLong())

	e, ok := s.EntryForDate(date)
	if !ok {
		fmt.Println("no entry for this day")
		return nil
	}
	pp.Entries(e)

	return nil
}

// History prints every journal entry, newest first.
type History struct {
	Persistence store.Persistence
}

func (n *History) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show history, no persistence")
	}

	s := journal.NewStore(n.Persistence, catalog.JournalPrompts())
	all := s.AllEntries()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Journal", len(all))
	pp.NewLine()
	pp.Entries(all...)

	return nil
}
