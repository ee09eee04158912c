// Package cli wires the commands together: flag parsing, config and
// store setup, and the solve/login/logout/stats entry points. Commands
// print their payload to stdout; logs go to stderr.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath     string
	ConfigExplicit bool
	Verbose        bool
}

// NewRootCommand creates the root command. Running it without a
// subcommand solves the whole catalog, matching `aoc solve`.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code puzzles and print your personal leaderboard statistics",
		Long: `Solve Advent of Code puzzles and print your personal leaderboard statistics.

Puzzles are selected with filters consisting of year, day, and part
number, e.g. 'y21d01p2'. Missing components are treated as wildcard:
'y21d01' selects both parts of that day, 'y21' the whole year, and '*'
every registered puzzle. A puzzle is selected if it matches at least
one filter.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.ConfigExplicit = cmd.Flags().Changed("config")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c",
		defaultConfigPath(), "path to the settings file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"enable debug logging")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

func defaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(base, "advent_of_code", "config.yaml")
}
