package disciplines

import (
	"context"
	"errors"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/catalog"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// Add creates a new discipline and reprints the checklist.
type Add struct {
	Form        discipline.FormData
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.Form.Title == "" {
		return errors.New("a discipline needs a title")
	}

	s := discipline.NewStore(n.Persistence)
	s.Initialize(catalog.DefaultDisciplines())
	s.Add(n.Form)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Disciplines")
	pp.Disciplines(s.Disciplines()...)

	return nil
}
