package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/glyph"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	zoneGreen     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	zoneYellow    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	zoneRed       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	feedbackStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	dotDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dotMissStyle  = lipgloss.NewStyle().Faint(true)
	quoteStyle    = lipgloss.NewStyle().Italic(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	today := dates.Today()

	var b strings.Builder

	b.WriteString(titleStyle.Render(today.FormatLong()))
	b.WriteString("\n\n")

	completed := 0
	for i, d := range m.disciplines {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s %s", glyph.Open.String(), d.Title)
		if d.Completed {
			completed++
			line = doneStyle.Render(fmt.Sprintf("%s %s", glyph.Done.String(), d.Title))
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n")

	score := progress.ReadinessScore(completed, len(m.disciplines))
	zone := progress.ZoneFor(score)
	b.WriteString(zoneStyle(zone).Render(fmt.Sprintf("%d%% %s", score, zone.Label)))
	b.WriteString("\n")
	b.WriteString(feedbackStyle.Render(zone.Feedback))
	b.WriteString("\n\n")

	streak := progress.Streak(m.history, today)
	b.WriteString(fmt.Sprintf("%s %d day streak\n", glyph.Streak.String(), streak))

	for _, done := range progress.WeeklyProgress(m.history, today) {
		if done {
			b.WriteString(dotDoneStyle.Render(glyph.DayComplete.String()) + " ")
		} else {
			b.WriteString(dotMissStyle.Render(glyph.DayMissed.String()) + " ")
		}
	}
	b.WriteString("\n\n")

	if m.quote.Text != "" {
		b.WriteString(quoteStyle.Render(fmt.Sprintf("“%s” - %s", m.quote.Text, m.quote.Author)))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · space toggle · q quit"))
	b.WriteString("\n")

	return b.String()
}

func zoneStyle(zone progress.Zone) lipgloss.Style {
	switch zone.Label {
	case "Locked In":
		return zoneGreen
	case "Needs Adjustment":
		return zoneYellow
	default:
		return zoneRed
	}
}
