// Package today provides the combined morning-view runner.
package today

import (
	"context"
	"errors"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/catalog"
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/journal"
	"github.com/abritton2002/GrowthApp4Men/pkg/pick"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// Today prints the full daily view: checklist, readiness, streak, weekly
// dots, the reflection prompt, and the quote of the day.
type Today struct {
	ShowID      bool
	Persistence store.Persistence
}

func (n *Today) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show today, no persistence")
	}

	d := discipline.NewStore(n.Persistence)
	d.Initialize(catalog.DefaultDisciplines())
	j := journal.NewStore(n.Persistence, catalog.JournalPrompts())
	j.Initialize()

	today := dates.Today()
	history := d.History()

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(today.FormatLong())
	pp.NewLine()

	pp.Disciplines(d.Disciplines()...)

	completed, total := d.CompletedCount()
	score := progress.ReadinessScore(completed, total)
	pp.Readiness(score, progress.ZoneFor(score))

	pp.StreakSummary(progress.Streak(history, today), progress.TotalCompletedDays(history))
	pp.WeeklyDots(progress.WeeklyProgress(history, today))
	pp.NewLine()

	if prompt, ok := j.CurrentPrompt(); ok {
		pp.Title("Reflection")
		pp.Prompt(prompt)
	}

	if quote, ok := pick.ForDate(catalog.Quotes(), today); ok {
		pp.Quote(quote.Text, quote.Author)
	}

	return nil
}
