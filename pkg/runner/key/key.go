// Package key prints the glyph legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/abritton2002/GrowthApp4Men/pkg/glyph"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Key, g.Symbol, g.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nGlyphs")))
	_, _ = fmt.Fprintln(color.Output, tbl)

	return nil
}
