package disciplines

import (
	"context"
	"errors"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// Remove deletes a discipline by id.
type Remove struct {
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	s := discipline.NewStore(n.Persistence)
	s.Delete(n.ID)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Disciplines")
	pp.Disciplines(s.Disciplines()...)

	return nil
}
