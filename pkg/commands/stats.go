package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands/options"
	"github.com/abritton2002/GrowthApp4Men/pkg/runner/stats"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"progress"},
		Short:   "Show the full progress summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := stats.Stats{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
