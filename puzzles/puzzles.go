// Package puzzles assembles the full solver catalog from the per-year
// packages.
package puzzles

import (
	"aoc/internal/registry"

	"aoc/puzzles/y21"
	"aoc/puzzles/y24"
)

// Catalog builds the registry of every implemented puzzle.
func Catalog() (*registry.Registry, error) {
	var entries []registry.Entry
	entries = append(entries, y21.Entries()...)
	entries = append(entries, y24.Entries()...)
	return registry.New(entries...)
}
