package cmd

import (
	"io"
	"os"

	"github.com/mylxsw/redis-compat/api"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newUsageCommand(a *app) *cobra.Command {
	var statsFile string

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Report the compatibility of the commands executed by a server",
		Long: `Report the compatibility of the commands executed by a server.

The executed commands are read from INFO commandstats, either by connecting to the
server or from a saved report (--stats-file, "-" reads stdin).`,
		Example: `  redis-compat usage -H 10.0.0.1 -p 6380
  redis-cli info commandstats | redis-compat usage --stats-file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.readStats(cmd, statsFile)
			if err != nil {
				return err
			}

			names := api.ExecutedCommands(stats)
			a.logger.Info("commandstats loaded", "commands", len(names))

			return a.renderer(cmd.OutOrStdout()).Annotations(a.catalog().AnnotateWithVersions(names))
		},
	}

	cmd.Flags().StringVarP(&statsFile, "stats-file", "f", "", "Read INFO commandstats output from a file instead of the server")

	return cmd
}

func (a *app) readStats(cmd *cobra.Command, statsFile string) (string, error) {
	switch statsFile {
	case "":
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), errors.Wrap(err, "read stats from stdin")
	default:
		data, err := os.ReadFile(statsFile)
		return string(data), errors.Wrapf(err, "read stats file %s", statsFile)
	}

	client := a.newClient(a.conf, nil)
	defer client.Close()

	if err := client.Ping().Err(); err != nil {
		a.logger.Error("server is unreachable", "addr", a.conf.Addr(), "error", err)
		return "", errors.Wrapf(err, "connect to %s", a.conf.Addr())
	}

	a.logger.Debug("connected", "addr", a.conf.Addr())

	return api.CommandStats(client)
}
