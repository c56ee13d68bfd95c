// Package wisdom provides the quote-of-the-day runner.
package wisdom

import (
	"context"
	"fmt"

	"github.com/abritton2002/GrowthApp4Men/pkg/catalog"
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/pick"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
)

// Wisdom prints the date-seeded quote of the day. The pick is pure
// derivation from the calendar date; nothing is persisted.
type Wisdom struct{}

func (n *Wisdom) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Daily Wisdom")
	pp.NewLine()

	quote, ok := pick.ForDate(catalog.Quotes(), dates.Today())
	if !ok {
		fmt.Println("no quotes available")
		return nil
	}
	pp.Quote(quote.Text, quote.Author)

	return nil
}
