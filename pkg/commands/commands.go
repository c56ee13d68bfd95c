package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "honor",
		Short: base.Wrap80("Daily disciplines, reflection, and learning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addList(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addToggle(topLevel)
	addReset(topLevel)
	addJournal(topLevel)
	addLearn(topLevel)
	addStats(topLevel)
	addHistory(topLevel)
	addWisdom(topLevel)
	addUI(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
