package cmd

import (
	"github.com/mylxsw/redis-compat/core"
	"github.com/mylxsw/redis-compat/tui"
	"github.com/spf13/cobra"
)

func newTUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive command explorer (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a)
		},
	}
}

func runTUI(a *app) error {
	outputChan := make(chan core.OutputMessage, 10)

	client := a.newClient(a.conf, outputChan)
	defer client.Close()

	return tui.NewCompatTUI(client, a.catalog(), 100, a.version, a.gitCommit, outputChan, a.conf).Start()
}
