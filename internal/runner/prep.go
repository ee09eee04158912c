package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aoc/internal/ident"
	"aoc/internal/registry"
)

// dayGate is the once-per-day stage shared by both parts: it fetches the
// day's input and runs the optional prep function exactly once, no
// matter how many part tasks arrive concurrently. The first task to
// reach the gate does the work; later (or concurrent) tasks block in
// sync.Once until the result cell is populated, then read the same
// (input, data, err) triple. The cell is write-once; after resolve
// returns it is never mutated again.
type dayGate struct {
	yd   ident.YearDay
	prep registry.PrepFunc // nil when the day has no prep step

	once  sync.Once
	input string
	data  any
	err   error
	dur   time.Duration // input fetch + prep, for diagnostics only
}

type fetchFunc func(ctx context.Context, yd ident.YearDay) (string, error)

// resolve returns the day's input and prep result, computing them on
// first call. A failure is returned to every caller unchanged.
func (g *dayGate) resolve(ctx context.Context, fetch fetchFunc) (string, any, error) {
	g.once.Do(func() {
		start := time.Now()
		defer func() { g.dur = time.Since(start) }()

		input, err := fetch(ctx, g.yd)
		if err != nil {
			g.err = &PrepError{Day: g.yd, Err: err}
			return
		}
		g.input = input

		if g.prep == nil {
			return
		}

		data, err := runPrep(g.prep, input)
		if err != nil {
			g.err = &PrepError{Day: g.yd, Err: err}
			return
		}
		g.data = data
	})

	return g.input, g.data, g.err
}

// runPrep guards against prep panics: solver code is arbitrary, and one
// bad day must not take down the whole run.
func runPrep(prep registry.PrepFunc, input string) (data any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return prep(input)
}
