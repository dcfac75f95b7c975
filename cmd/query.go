package cmd

import (
	"fmt"
	"strings"

	"github.com/mylxsw/redis-compat/catalog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAnnotateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "annotate NAME...",
		Short: "Show the introduction version and compatibility of commands",
		Example: `  redis-compat annotate get "client list" xadd
  redis-compat annotate -o json lcs`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer(cmd.OutOrStdout()).Annotations(a.catalog().AnnotateWithVersions(args))
		},
	}
}

func newSinceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "since VERSION",
		Short: "List the commands introduced at or before a version",
		Long: `List the commands introduced at or before a version.

Versions are compared as plain strings unless --comparator=semantic is given,
so with the default policy "10.0.0" is considered older than "2.0.0".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.catalog().FilterByVersion(args[0])
			a.logger.Debug("filtered catalog", "threshold", args[0], "matched", len(names))

			return a.renderer(cmd.OutOrStdout()).Names(names)
		},
	}
}

func newVersionsCommand(a *app) *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List the distinct versions that introduced commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := a.catalog()

			versions := cat.DistinctVersions()
			if sorted {
				versions = catalog.SortVersions(versions, cat.Comparator())
			}

			return a.renderer(cmd.OutOrStdout()).Names(versions)
		},
	}

	cmd.Flags().BoolVarP(&sorted, "sorted", "s", false, "Sort versions with the active comparator")

	return cmd
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show the catalog record of a command",
		Example: `  redis-compat show set
  redis-compat show "client list"
  redis-compat show client list`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := a.catalog().Help(strings.Join(args, " "))
			if !ok {
				return errors.Errorf("unknown command %q", strings.Join(args, " "))
			}

			return a.renderer(cmd.OutOrStdout()).Command(c)
		},
	}
}

func newSearchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "search PATTERN",
		Short:   "Search the catalog with a glob pattern",
		Example: `  redis-compat search "client *"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := a.catalog().Search(args[0])
			if err != nil {
				return err
			}

			return a.renderer(cmd.OutOrStdout()).Commands(cmds)
		},
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nGitCommit: %s\n", a.version, a.gitCommit)
			return err
		},
	}
}
