package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mylxsw/redis-compat/api"
	"github.com/mylxsw/redis-compat/catalog"
	"github.com/mylxsw/redis-compat/config"
	"github.com/mylxsw/redis-compat/core"
	"github.com/mylxsw/redis-compat/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the state shared by every subcommand
type app struct {
	v          *viper.Viper
	configFile string
	conf       config.Config
	logger     *log.Logger

	version   string
	gitCommit string

	newClient func(conf config.Config, outputChan chan core.OutputMessage) api.RedisClient
}

func (a *app) catalog() *catalog.Catalog {
	return catalog.Default().WithComparator(a.conf.VersionComparator())
}

func (a *app) renderer(w io.Writer) *report.Renderer {
	return report.New(w, a.conf.Output)
}

// NewRootCommand creates the redis-compat command tree
func NewRootCommand(version, gitCommit string) *cobra.Command {
	a := &app{
		v:         viper.New(),
		version:   version,
		gitCommit: gitCommit,
		newClient: api.NewRedisClient,
	}

	return newRootCommand(a)
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "redis-compat",
		Short: "Check which redis commands a compatible server supports",
		Long: `redis-compat ships a catalog of redis commands with the version that introduced them
and whether the compatible server implements them. It can inspect the commands executed
by a running server (INFO commandstats) and report their compatibility.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}

			a.conf = conf
			a.logger = core.NewLogger(cmd.ErrOrStderr(), conf.Debug)
			a.logger.Debug("configuration loaded", "addr", conf.Addr(), "comparator", conf.Comparator, "output", conf.Output)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Path of the configuration file in yaml, json and toml format (optional)")
	flags.StringP("host", "H", "127.0.0.1", "Server hostname")
	flags.IntP("port", "p", 6379, "Server port")
	flags.StringP("password", "a", "", "Password to use when connecting to the server")
	flags.IntP("db", "n", 0, "Database number")
	flags.BoolP("cluster", "c", false, "Enable cluster mode")
	flags.Bool("debug", false, "Enable debug mode")
	flags.String("comparator", catalog.ComparatorLexical, "Version comparison policy (lexical/semantic)")
	flags.StringP("output", "o", config.OutputTable, "Output format (table/json/yaml)")

	for _, name := range []string{"host", "port", "password", "db", "cluster", "debug", "comparator", "output"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newTUICommand(a),
		newUsageCommand(a),
		newAnnotateCommand(a),
		newSinceCommand(a),
		newVersionsCommand(a),
		newShowCommand(a),
		newSearchCommand(a),
		newVersionCommand(a),
	)

	return rootCmd
}

// Execute runs the root command and exits with a non zero status on failure
func Execute(version, gitCommit string) {
	if err := NewRootCommand(version, gitCommit).Execute(); err != nil {
		os.Exit(1)
	}
}
