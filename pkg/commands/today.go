package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands/options"
	"github.com/abritton2002/GrowthApp4Men/pkg/runner/today"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addToday(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "today",
		Aliases: []string{"now"},
		Short:   "Show the full daily view",
		Long: `Today prints the daily checklist with readiness, streak, the week's record,
the reflection prompt, and the quote of the day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := today.Today{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
