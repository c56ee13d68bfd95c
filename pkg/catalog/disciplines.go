// Package catalog holds the static seed content: default disciplines,
// journal prompts, learning items, and wisdom quotes. Callers receive
// fresh slices and may not rely on shared backing arrays.
package catalog

import (
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
)

// DefaultDisciplines returns the seed checklist installed on first run.
func DefaultDisciplines() []discipline.Discipline {
	now := dates.Now()
	return []discipline.Discipline{
		{
			ID:           "1",
			Title:        "Morning Prayer",
			Description:  "Spend 5 minutes in prayer to start the day",
			ReminderTime: "06:00",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "2",
			Title:        "Scripture Reading",
			Description:  "Read one chapter from the Bible",
			ReminderTime: "07:30",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "3",
			Title:        "Physical Exercise",
			Description:  "At least 30 minutes of physical activity",
			ReminderTime: "17:00",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "4",
			Title:        "Financial Review",
			Description:  "Review spending and budget for 5 minutes",
			ReminderTime: "19:30",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "5",
			Title:        "Evening Reflection",
			Description:  "Reflect on the day and plan for tomorrow",
			ReminderTime: "21:00",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}
