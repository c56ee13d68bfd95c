package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the glyph legend",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := key.Key{}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
