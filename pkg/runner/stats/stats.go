// Package stats provides the progress summary runner.
package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/catalog"
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/journal"
	"github.com/abritton2002/GrowthApp4Men/pkg/learn"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// Stats prints the profile summary: streak, completed days, journal count,
// learning totals, and the last week of the ledger.
type Stats struct {
	Persistence store.Persistence
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show stats, no persistence")
	}

	d := discipline.NewStore(n.Persistence)
	j := journal.NewStore(n.Persistence, catalog.JournalPrompts())
	l := learn.NewStore(n.Persistence, catalog.LearningItems())

	today := dates.Today()
	history := d.History()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Progress")
	pp.StreakSummary(progress.Streak(history, today), progress.TotalCompletedDays(history))
	pp.WeeklyDots(progress.WeeklyProgress(history, today))
	pp.NewLine()

	fmt.Printf("journal entries: %d\n", len(j.AllEntries()))
	fmt.Printf("lessons completed: %d\n\n", l.TotalCompleted())

	pp.CategoryTable(l.Stats())

	return nil
}
