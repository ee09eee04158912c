// Package registry holds the static puzzle catalog: the mapping from
// (year, day) to the solver functions for both parts and, optionally, a
// shared prep function. The catalog is built once at startup and is
// immutable afterwards, so concurrent readers need no synchronization.
package registry

import (
	"fmt"
	"sort"

	"aoc/internal/ident"
)

// PrepFunc parses or otherwise preprocesses a day's raw input once; its
// result is shared by both parts of the day.
type PrepFunc func(input string) (any, error)

// SolveFunc computes the answer for one part. For days with a prep
// function, data holds the prep result; otherwise data is nil and the
// solver works from the raw input.
type SolveFunc func(input string, data any) (string, error)

// Entry is the catalog record for one day: both solver parts and an
// optional shared prep step.
type Entry struct {
	Year  ident.Year
	Day   ident.Day
	Prep  PrepFunc // optional
	Part1 SolveFunc
	Part2 SolveFunc
}

// Registry is the immutable puzzle catalog.
type Registry struct {
	entries map[ident.YearDay]*Entry
	ids     []ident.ID // ascending
}

// New builds a registry from day entries. Both parts must be present on
// every entry; days may not be registered twice.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{entries: make(map[ident.YearDay]*Entry, len(entries))}

	for i := range entries {
		e := entries[i]
		yd := ident.YearDay{Year: e.Year, Day: e.Day}
		if e.Part1 == nil || e.Part2 == nil {
			return nil, fmt.Errorf("registry: %s is missing a solver part", yd)
		}
		if _, dup := r.entries[yd]; dup {
			return nil, fmt.Errorf("registry: %s is registered twice", yd)
		}
		r.entries[yd] = &e
		r.ids = append(r.ids,
			ident.ID{Year: e.Year, Day: e.Day, Part: ident.Part1},
			ident.ID{Year: e.Year, Day: e.Day, Part: ident.Part2},
		)
	}

	sort.Slice(r.ids, func(i, j int) bool { return r.ids[i].Compare(r.ids[j]) < 0 })
	return r, nil
}

// Lookup returns the entry for a day, if registered.
func (r *Registry) Lookup(yd ident.YearDay) (*Entry, bool) {
	e, ok := r.entries[yd]
	return e, ok
}

// Solver returns the solve function for one puzzle part.
func (r *Registry) Solver(id ident.ID) (SolveFunc, bool) {
	e, ok := r.entries[id.YearDay()]
	if !ok {
		return nil, false
	}
	if id.Part == ident.Part1 {
		return e.Part1, true
	}
	return e.Part2, true
}

// IDs lists every registered puzzle part in ascending order.
func (r *Registry) IDs() []ident.ID {
	ids := make([]ident.ID, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Len reports the number of registered parts.
func (r *Registry) Len() int { return len(r.ids) }
