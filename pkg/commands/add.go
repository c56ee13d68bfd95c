package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands/options"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/runner/disciplines"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	fo := &options.FormOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a discipline",
		Example: `
honor add Cold Shower
honor add Evening Walk --description "30 minutes outside" --remind 19:00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			fo.Title = strings.Join(args, " ")

			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := disciplines.Add{
				Form: discipline.FormData{
					Title:        fo.Title,
					Description:  fo.Description,
					ReminderTime: fo.ReminderTime,
				},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFormArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
