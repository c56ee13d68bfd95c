package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/runner/wisdom"
)

func addWisdom(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "wisdom",
		Aliases: []string{"quote"},
		Short:   "Show the quote of the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := wisdom.Wisdom{}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
