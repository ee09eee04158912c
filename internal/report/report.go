// Package report renders the scheduler's results for the terminal. It
// is independent of how the results were produced: it consumes the
// complete result set, sorted ascending by (year, day, part), and
// prints one line per puzzle plus a summary.
package report

import (
	"fmt"
	"io"
	"sort"

	"aoc/internal/runner"
)

// Write renders the full result set to w. An empty set renders an empty
// report, not an error.
func Write(w io.Writer, results []runner.Result) error {
	if len(results) == 0 {
		return nil
	}

	sorted := make([]runner.Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID.Compare(sorted[j].ID) < 0
	})

	durWidth := 0
	for _, res := range sorted {
		if n := len(res.Duration.String()); n > durWidth {
			durWidth = n
		}
	}

	for _, res := range sorted {
		status := "ok  "
		text := res.Output
		if res.Failed() {
			status = "FAIL"
			text = res.Err.Error()
		}
		_, err := fmt.Fprintf(w, "%s  %s  %*s  %s\n",
			res.ID, status, durWidth, res.Duration, text)
		if err != nil {
			return err
		}
	}

	solved := len(sorted) - Failed(sorted)
	_, err := fmt.Fprintf(w, "\n%d of %d puzzles solved, %d failed\n",
		solved, len(sorted), Failed(sorted))
	return err
}

// Failed counts failure outcomes in the result set.
func Failed(results []runner.Result) int {
	n := 0
	for _, res := range results {
		if res.Failed() {
			n++
		}
	}
	return n
}
