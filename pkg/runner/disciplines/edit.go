package disciplines

import (
	"context"
	"errors"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// Edit applies a partial update to a discipline.
type Edit struct {
	ID          string
	Patch       discipline.Patch
	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	s := discipline.NewStore(n.Persistence)
	if _, ok := s.Get(n.ID); !ok {
		// Unknown ids are a store-level no-op; tell the user anyway.
		fmt.Printf("no discipline with id %s\n", n.ID)
		return nil
	}
	s.Update(n.ID, n.Patch)

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Disciplines")
	pp.Disciplines(s.Disciplines()...)

	return nil
}
