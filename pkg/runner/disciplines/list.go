// Package disciplines provides runners for the daily checklist commands.
package disciplines

import (
	"context"
	"errors"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/catalog"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// List prints the checklist with today's readiness.
type List struct {
	ShowID      bool
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	s := discipline.NewStore(n.Persistence)
	s.Initialize(catalog.DefaultDisciplines())

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	completed, total := s.CompletedCount()
	score := progress.ReadinessScore(completed, total)

	pp.Title("Disciplines")
	pp.Disciplines(s.Disciplines()...)
	pp.Readiness(score, progress.ZoneFor(score))

	return nil
}
