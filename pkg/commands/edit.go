package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands/options"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/runner/disciplines"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FormOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a discipline",
		Example: `
honor edit 3 --title "Morning Run"
honor edit 3 --remind 06:30
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a discipline id")
			}
			io.ID = args[0]

			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			patch := discipline.Patch{}
			if cmd.Flags().Changed("title") {
				patch.Title = &fo.Title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &fo.Description
			}
			if cmd.Flags().Changed("remind") {
				patch.ReminderTime = &fo.ReminderTime
			}

			s := disciplines.Edit{
				ID:          io.ID,
				Patch:       patch,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEditArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
