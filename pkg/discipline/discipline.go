// Package discipline owns the daily discipline checklist and the
// completion-history ledger derived from it.
package discipline

import (
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
)

// Discipline is a user-defined recurring daily task. Completed is the
// current-day flag; it is reset externally at day rollover while the
// completion ledger keeps the long-term record.
type Discipline struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Completed    bool            `json:"completed"`
	ReminderTime string          `json:"reminderTime,omitempty"`
	CreatedAt    dates.Timestamp `json:"createdAt"`
	UpdatedAt    dates.Timestamp `json:"updatedAt"`
}

// FormData carries the user-editable fields for creating a discipline.
type FormData struct {
	Title        string
	Description  string
	ReminderTime string
}

// Patch describes a partial update; nil fields are left untouched.
type Patch struct {
	Title        *string
	Description  *string
	ReminderTime *string
}
