package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands/options"
	"github.com/abritton2002/GrowthApp4Men/pkg/runner/disciplines"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addToggle(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"do", "check"},
		Short:   "Toggle a discipline's completion for today",
		Long: `Toggle flips a single discipline between done and open. The day is only
recorded as complete once every discipline is done; un-checking any one of
them takes the day back off the record.`,
		Example: `
honor toggle 2
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
			s := disciplines.Toggle{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
