package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands/options"
	"github.com/abritton2002/GrowthApp4Men/pkg/runner/disciplines"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a discipline",
		Example: `
honor remove 4
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
			s := disciplines.Remove{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
