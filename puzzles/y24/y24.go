// Package y24 holds the 2024 puzzle solvers.
package y24

import (
	"aoc/internal/registry"
)

// Entries lists every implemented 2024 day.
func Entries() []registry.Entry {
	return []registry.Entry{
		{Year: 2024, Day: 1, Prep: prepD01, Part1: solveD01P1, Part2: solveD01P2},
	}
}
