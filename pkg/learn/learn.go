// Package learn owns daily learning selection and the cumulative record of
// completed items.
package learn

import (
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
)

// Item is a static catalog entry tagged with the calendar date it is
// presented for.
type Item struct {
	ID       string       `json:"id"`
	Category string       `json:"category"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Date     dates.DayKey `json:"date"`
}
