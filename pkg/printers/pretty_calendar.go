package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
)

const width = len("11 12 13 14 15 16 17") // an example week

// History prints the month containing on, highlighting fully completed
// days from the ledger.
func (pp *PrettyPrint) History(on time.Time, history progress.History) {
	pp.PrintMonth(on, history)
}

// HistoryYear prints every month of on's year.
func (pp *PrettyPrint) HistoryYear(on time.Time, history progress.History) {
	then := time.Date(on.Year(), 1, 1, 0, 0, 0, 0, time.Local)

	for i := 0; i < 12; i++ {
		pp.PrintMonth(then, history)
		then = NextMonth(then)
	}
}

// PrintMonth renders a compact month grid. Days recorded complete in the
// ledger print bold, the rest faint.
func (pp *PrettyPrint) PrintMonth(then time.Time, history progress.History) {
	days := DaysIn(then)

	complete := make([]bool, days)
	for i := 0; i < days; i++ {
		key := dates.FromTime(time.Date(then.Year(), then.Month(), i+1, 12, 0, 0, 0, time.Local))
		complete[i] = history[key]
	}

	pp.printMonthGrid(then, complete)
}

func (pp *PrettyPrint) printMonthGrid(then time.Time, complete []bool) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgGreen)

	for i := 0; i < days; i++ {
		if i < len(complete) && complete[i] {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
