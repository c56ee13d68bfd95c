package disciplines

import (
	"context"
	"errors"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// Reset clears every completion flag for a fresh day. The ledger keeps
// whatever was recorded.
type Reset struct {
	Persistence store.Persistence
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not reset, no persistence")
	}

	s := discipline.NewStore(n.Persistence)
	s.ResetCompletionStatus()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Disciplines")
	pp.Disciplines(s.Disciplines()...)

	return nil
}
