// Package y21 holds the 2021 puzzle solvers.
package y21

import (
	"aoc/internal/registry"
)

// Entries lists every implemented 2021 day.
func Entries() []registry.Entry {
	return []registry.Entry{
		{Year: 2021, Day: 1, Prep: prepD01, Part1: solveD01P1, Part2: solveD01P2},
		{Year: 2021, Day: 2, Part1: solveD02P1, Part2: solveD02P2},
		{Year: 2021, Day: 3, Prep: prepD03, Part1: solveD03P1, Part2: solveD03P2},
	}
}
