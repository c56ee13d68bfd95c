// Package glyph defines the terminal symbols used for checklist and
// progress display, plus the legend printed by the key command.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Mark identifies a checklist or progress symbol.
type Mark int

const (
	Open Mark = iota
	Done
	DayComplete
	DayMissed
	Streak
	Reminder
)

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:     "o",
		Symbol:  "●",
		Meaning: "discipline not yet done today",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "discipline completed today",
	}, Glyph{
		Key:     "#",
		Symbol:  "■",
		Meaning: "day fully complete in the ledger",
	}, Glyph{
		Key:     ".",
		Symbol:  "□",
		Meaning: "day missed or incomplete",
	}, Glyph{
		Key:     "^",
		Symbol:  "▲",
		Meaning: "current streak",
	}, Glyph{
		Key:     "@",
		Symbol:  "◷",
		Meaning: "reminder time set",
	})

	return g
}

func (m Mark) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mark) String() string {
	return m.Glyph().String()
}

func (g Glyph) String() string {
	return g.Symbol
}
