package options

import (
	"github.com/spf13/cobra"
)

// FormOptions captures the user-editable discipline fields.
type FormOptions struct {
	Title        string
	Description  string
	ReminderTime string
}

// AddFormArgs wires the discipline form flags on the provided command.
func AddFormArgs(cmd *cobra.Command, o *FormOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Describe the discipline.")
	cmd.Flags().StringVarP(&o.ReminderTime, "remind", "r", "",
		"Reminder time as HH:MM (stored, not scheduled).")
}

// AddEditArgs wires the full form, title included, for edit commands.
func AddEditArgs(cmd *cobra.Command, o *FormOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Rename the discipline.")
	AddFormArgs(cmd, o)
}
