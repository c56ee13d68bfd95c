package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/runner/history"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	var year bool

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"cal", "calendar"},
		Short:   "Show completed days on a calendar",
		Example: `
honor history
honor history --year
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := history.History{
				Year:        year,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	cmd.Flags().BoolVarP(&year, "year", "y", false, "show the whole year")

	topLevel.AddCommand(cmd)
}
