package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc/internal/ident"
	"aoc/internal/leaderboard"
)

const statsDelim = "\n=====================================================\n\n"

// NewStatsCommand creates the stats command.
func NewStatsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [filter...]",
		Short: "Print your personal leaderboard statistics",
		Long: `Print your personal leaderboard statistics.

To run this command, you'll have to copy and paste your personal
leaderboard from adventofcode.com manually. The files go into the
` + "`personal_leaderboard_statistics`" + ` directory under this program's data
directory and must be named ` + "`y21_personal_leaderboard_statistics.txt`" + `
for year 2021, for example.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, opts, args)
		},
	}
}

func runStats(cmd *cobra.Command, opts *RootOptions, args []string) error {
	// Stats filters are permissive: they narrow what is shown and may
	// reference days that have no registered solver.
	terms, err := ident.ParseTerms(args)
	if err != nil {
		return err
	}

	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.close()

	boards, err := leaderboard.LoadAll(a.store, terms)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	delim := ""
	for _, board := range boards {
		if _, err := fmt.Fprint(out, delim, board.String()); err != nil {
			return err
		}
		delim = statsDelim
	}
	return nil
}
