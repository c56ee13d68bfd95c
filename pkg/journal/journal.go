// Package journal owns reflection prompts and day-keyed journal entries.
package journal

import (
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
)

// Prompt is a static reflection question from the catalog.
type Prompt struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Entry is one day's reflection. At most one entry exists per date; writing
// again on the same day updates the existing entry in place.
type Entry struct {
	ID        string          `json:"id"`
	PromptID  string          `json:"promptId"`
	Content   string          `json:"content"`
	Date      dates.DayKey    `json:"date"`
	CreatedAt dates.Timestamp `json:"createdAt"`
	UpdatedAt dates.Timestamp `json:"updatedAt"`
}
