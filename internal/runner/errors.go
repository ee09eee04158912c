package runner

import (
	"errors"
	"fmt"

	"aoc/internal/ident"
)

// ErrSolveTimeout marks a solver body that exceeded the configured
// watchdog timeout.
var ErrSolveTimeout = errors.New("solver timed out")

// PrepError is the failure every part of a day receives when the day's
// shared stage (input fetch or prep) failed. Both parts carry the same
// value, so their reported messages are identical.
type PrepError struct {
	Day ident.YearDay
	Err error
}

func (e *PrepError) Error() string {
	return fmt.Sprintf("prep for %s failed: %v", e.Day, e.Err)
}

func (e *PrepError) Unwrap() error { return e.Err }
