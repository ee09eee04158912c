package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aoc/internal/ident"
	"aoc/internal/input"
	"aoc/internal/report"
	"aoc/internal/runner"
	"aoc/puzzles"
)

// NewSolveCommand creates the solve command, which is also what the
// bare root invocation runs.
func NewSolveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [filter...]",
		Short: "Solve Advent of Code puzzles (default command)",
		Long: `Solve Advent of Code puzzles.

Without filters, every registered puzzle runs. Puzzle inputs come from
the local cache; missing ones are downloaded from adventofcode.com,
which requires a stored session cookie (see 'aoc login').`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}
}

func runSolve(cmd *cobra.Command, opts *RootOptions, args []string) error {
	if len(args) == 0 {
		args = []string{"*"}
	}
	terms, err := ident.ParseTerms(args)
	if err != nil {
		return err
	}

	reg, err := puzzles.Catalog()
	if err != nil {
		return err
	}

	// Resolution errors abort before anything executes.
	ids, err := ident.Resolve(terms, reg)
	if err != nil {
		return err
	}

	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.close()

	timeout, err := a.cfg.SolveTimeoutDuration()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := runner.New(reg, input.New(a.store, a.log), runner.Config{
		Workers:      a.cfg.Workers,
		SolveTimeout: timeout,
	}, a.log)

	results := r.Run(ctx, ids)

	if err := report.Write(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if failed := report.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(results))
	}
	return nil
}
