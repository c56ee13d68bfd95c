package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/runner/disciplines"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Mark every discipline open again",
		Long: `Reset clears the completed flag on all disciplines, typically at the start
of a new day. Days already recorded as complete stay on the record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := disciplines.Reset{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
