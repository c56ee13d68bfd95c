// Package history provides the completion-ledger calendar runner.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// History prints a month (or year) calendar with fully completed days
// highlighted.
type History struct {
	Year        bool
	Persistence store.Persistence
}

func (n *History) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show history, no persistence")
	}

	s := discipline.NewStore(n.Persistence)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Completion History")
	pp.NewLine()

	if n.Year {
		pp.HistoryYear(time.Now(), s.History())
		return nil
	}
	pp.History(time.Now(), s.History())

	return nil
}
