// Package printers renders store state for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/glyph"
	"github.com/abritton2002/GrowthApp4Men/pkg/journal"
	"github.com/abritton2002/GrowthApp4Men/pkg/learn"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1718455680000000000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Disciplines prints the checklist with completion glyphs and optional
// reminder times.
func (pp *PrettyPrint) Disciplines(all ...*discipline.Discipline) {
	if len(all) == 0 {
		pp.none()
		return
	}

	t := color.New()
	done := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	r := color.New(color.Faint)

	for _, d := range all {
		if pp.ShowID {
			_, _ = y.Print(d.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(d.ID)))
		}
		printer := t
		mark := glyph.Open
		title := d.Title
		if d.Completed {
			printer = done
			mark = glyph.Done
			title = glyph.Strike(title)
		}
		_, _ = printer.Printf("%s %s", mark.String(), title)
		if d.ReminderTime != "" {
			_, _ = r.Printf("  %s %s", glyph.Reminder.String(), dates.FormatReminder(d.ReminderTime))
		}
		_, _ = printer.Println("")
	}
	_, _ = t.Println("")
}

// Readiness prints the score and its zone with feedback copy.
func (pp *PrettyPrint) Readiness(score int, zone progress.Zone) {
	var c *color.Color
	switch zone.Label {
	case "Locked In":
		c = color.New(color.FgGreen, color.Bold)
	case "Needs Adjustment":
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgRed, color.Bold)
	}
	f := color.New(color.Faint, color.Italic)

	_, _ = c.Printf("%d%% %s\n", score, zone.Label)
	_, _ = f.Printf("%s\n\n", zone.Feedback)
}

// WeeklyDots prints the last seven days as filled and empty squares,
// oldest first.
func (pp *PrettyPrint) WeeklyDots(week [7]bool) {
	done := color.New(color.FgGreen)
	missed := color.New(color.Faint)

	for _, completed := range week {
		if completed {
			_, _ = done.Printf("%s ", glyph.DayComplete.String())
		} else {
			_, _ = missed.Printf("%s ", glyph.DayMissed.String())
		}
	}
	fmt.Println("")
}

// StreakSummary prints the streak count with the total completed days.
func (pp *PrettyPrint) StreakSummary(streak, totalDays int) {
	s := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = s.Printf("%s %d day streak", glyph.Streak.String(), streak)
	_, _ = f.Printf("  (%d days completed all time)\n", totalDays)
}

// Prompt prints today's reflection prompt.
func (pp *PrettyPrint) Prompt(p journal.Prompt) {
	q := color.New(color.Italic)
	_, _ = q.Printf("%s\n\n", p.Text)
}

// Entries prints journal entries, one block per day.
func (pp *PrettyPrint) Entries(all ...*journal.Entry) {
	if len(all) == 0 {
		pp.none()
		return
	}

	d := color.New(color.Bold)
	t := color.New()

	for _, e := range all {
		_, _ = d.Println(e.Date.FormatLong())
		_, _ = t.Printf("%s\n\n", e.Content)
	}
}

// Quote prints a wisdom quote with its attribution.
func (pp *PrettyPrint) Quote(text, author string) {
	q := color.New(color.Italic)
	a := color.New(color.Faint)

	_, _ = q.Printf("“%s”\n", text)
	_, _ = a.Printf("   - %s\n\n", author)
}

// LearningItem prints a learning card.
func (pp *PrettyPrint) LearningItem(item learn.Item, completed bool) {
	c := color.New(color.Faint)
	t := color.New(color.Bold)
	b := color.New()

	_, _ = c.Printf("%s\n", item.Category)
	if completed {
		_, _ = t.Printf("%s %s\n\n", glyph.Done.String(), item.Title)
	} else {
		_, _ = t.Printf("%s\n\n", item.Title)
	}
	_, _ = b.Printf("%s\n\n", item.Content)
}

// CategoryTable prints cumulative learning stats per category.
func (pp *PrettyPrint) CategoryTable(stats []progress.CategoryStat) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Category"), glyph.Bold("Completed"), glyph.Bold("Total"))
	for _, s := range stats {
		tbl.AddRow(s.Category, fmt.Sprintf("%d", s.Completed), fmt.Sprintf("%d", s.Total))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}
