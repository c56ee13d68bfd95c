package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands/options"
	"github.com/abritton2002/GrowthApp4Men/pkg/runner/disciplines"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "disciplines"},
		Short:   "List today's disciplines",
		Example: `
honor list
honor list --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := disciplines.List{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
