package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands/options"
	"github.com/abritton2002/GrowthApp4Men/pkg/runner/learn"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addLearn(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "learn",
		Aliases: []string{"l", "study"},
		Short:   "Daily learning items and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := learn.Today{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	addLearnPick(cmd)
	addLearnDone(cmd)
	addLearnReset(cmd)
	addLearnList(cmd)
	addLearnStats(cmd)

	topLevel.AddCommand(cmd)
}

func addLearnPick(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "pick <id>",
		Short: "Pick today's learning item",
		Example: `
honor learn pick m1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a learning item id")
			}
			io.ID = args[0]

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := learn.Pick{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addLearnDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a learning item completed",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a learning item id")
			}
			io.ID = args[0]

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := learn.Done{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addLearnReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear today's selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := learn.Reset{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addLearnList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the catalog by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := learn.List{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addLearnStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := learn.Stats{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
