package disciplines

import (
	"context"
	"errors"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/catalog"
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// Toggle flips a discipline's completion flag. Completing the last open
// discipline records today in the ledger; un-completing one removes it.
type Toggle struct {
	ID          string
	Persistence store.Persistence
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}

	s := discipline.NewStore(n.Persistence)
	s.Initialize(catalog.DefaultDisciplines())
	s.ToggleComplete(n.ID)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Disciplines")
	pp.Disciplines(s.Disciplines()...)

	completed, total := s.CompletedCount()
	score := progress.ReadinessScore(completed, total)
	pp.Readiness(score, progress.ZoneFor(score))

	if s.History()[dates.Today()] {
		pp.StreakSummary(progress.Streak(s.History(), dates.Today()),
			progress.TotalCompletedDays(s.History()))
	}

	return nil
}
