package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/runner/journal"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"j", "reflect"},
		Short:   "Daily reflection prompts and entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := journal.Prompt{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	addJournalWrite(cmd)
	addJournalRead(cmd)
	addJournalHistory(cmd)
	addJournalRefresh(cmd)

	topLevel.AddCommand(cmd)
}

func addJournalWrite(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "write <entry>",
		Short: "Write today's reflection",
		Long: `Write records a reflection against today's prompt. Writing twice in one day
replaces the earlier entry.`,
		Example: `
honor journal write Kept every commitment, even the hard one.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := journal.Write{
				Content:     strings.Join(args, " "),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addJournalRead(topLevel *cobra.Command) {
	var date string

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read one day's entry",
		Example: `
honor journal read
honor journal read --date 2026-08-15
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := journal.Read{
				Date:        dates.DayKey(date),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to read, YYYY-MM-DD, defaults to today")

	topLevel.AddCommand(cmd)
}

func addJournalHistory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log"},
		Short:   "Show every entry, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := journal.History{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addJournalRefresh(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Draw a different prompt for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := journal.Refresh{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
