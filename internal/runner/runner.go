// Package runner is the execution scheduler: it turns a resolved set of
// puzzle identifiers into run results, executing solver parts in
// parallel on a bounded worker pool while running each day's shared
// prep stage at most once.
//
// Ordering guarantees: none between independent (day, part) tasks;
// strict "prep completes before its day's parts start their bodies" for
// tasks sharing a day. A failure in one task never aborts siblings, and
// the scheduler always produces exactly one result per requested
// identifier.
package runner

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"aoc/internal/ident"
	"aoc/internal/registry"
	"aoc/pkg/logx"
)

// InputProvider supplies the raw puzzle input for a day. The scheduler
// calls it at most once per distinct day, from inside the day's gate.
type InputProvider interface {
	Fetch(ctx context.Context, y ident.Year, d ident.Day) (string, error)
}

// Result is the outcome of running one puzzle part. Duration covers the
// solver body only, from its post-prep start to completion; shared prep
// time is not attributed to either part.
type Result struct {
	ID       ident.ID
	Output   string
	Err      error
	Duration time.Duration
}

// Failed reports whether the part produced a failure outcome.
func (r Result) Failed() bool { return r.Err != nil }

// Config controls the execution engine.
type Config struct {
	// Workers bounds concurrent solver executions. Zero means one
	// worker per available logical processor.
	Workers int

	// SolveTimeout converts a hung solver body into a failure after the
	// given duration. Zero disables the watchdog. Solver code is
	// arbitrary and cannot be cancelled cooperatively, so a timed-out
	// body is reported as failed and abandoned; the worker moves on.
	SolveTimeout time.Duration
}

// Runner executes resolved puzzle sets against an immutable registry.
type Runner struct {
	reg    *registry.Registry
	inputs InputProvider
	cfg    Config
	log    logx.Logger
}

func New(reg *registry.Registry, inputs InputProvider, cfg Config, log logx.Logger) *Runner {
	return &Runner{reg: reg, inputs: inputs, cfg: cfg, log: log}
}

// Run executes every identifier in ids and returns one result per
// distinct identifier, sorted ascending by (year, day, part). An empty
// set is a no-op producing an empty slice.
func (r *Runner) Run(ctx context.Context, ids []ident.ID) []Result {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}

	gates := r.buildGates(ids)

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(ids) {
		workers = len(ids)
	}

	tasks := make(chan ident.ID, len(ids))
	results := make(chan Result, len(ids))

	start := time.Now()
	r.log.Debug("run started",
		logx.Int("puzzles", len(ids)),
		logx.Int("workers", workers))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for id := range tasks {
				results <- r.execOne(ctx, id, gates[id.YearDay()])
			}
		}()
	}

	for _, id := range ids {
		tasks <- id
	}
	close(tasks)

	out := make([]Result, 0, len(ids))
	for range ids {
		out = append(out, <-results)
	}
	wg.Wait()

	sort.Slice(out, func(i, j int) bool { return out[i].ID.Compare(out[j].ID) < 0 })

	failed := 0
	for _, res := range out {
		if res.Failed() {
			failed++
		}
	}
	r.log.Info("run finished",
		logx.Int("puzzles", len(out)),
		logx.Int("failed", failed),
		logx.Duration("took", time.Since(start)))

	return out
}

func (r *Runner) buildGates(ids []ident.ID) map[ident.YearDay]*dayGate {
	gates := make(map[ident.YearDay]*dayGate)
	for _, id := range ids {
		yd := id.YearDay()
		if _, ok := gates[yd]; ok {
			continue
		}
		g := &dayGate{yd: yd}
		if e, ok := r.reg.Lookup(yd); ok {
			g.prep = e.Prep
		}
		gates[yd] = g
	}
	return gates
}

func (r *Runner) fetch(ctx context.Context, yd ident.YearDay) (string, error) {
	if r.inputs == nil {
		return "", fmt.Errorf("no input provider configured")
	}
	return r.inputs.Fetch(ctx, yd.Year, yd.Day)
}

func (r *Runner) execOne(ctx context.Context, id ident.ID, gate *dayGate) Result {
	solver, ok := r.reg.Solver(id)
	if !ok {
		// Resolution validates against the registry, so this only
		// happens when Run is called with unresolved identifiers.
		return Result{ID: id, Err: fmt.Errorf("no solver registered for %s", id)}
	}

	input, data, err := gate.resolve(ctx, r.fetch)
	if err != nil {
		r.log.Warn("puzzle.failed",
			logx.Stringer("puzzle", id),
			logx.Err(err))
		return Result{ID: id, Err: err}
	}

	r.log.Debug("puzzle.started", logx.Stringer("puzzle", id))

	start := time.Now()
	output, err := r.runSolver(solver, input, data)
	dur := time.Since(start)

	if err != nil {
		r.log.Warn("puzzle.failed",
			logx.Stringer("puzzle", id),
			logx.Err(err),
			logx.Duration("dur", dur))
		return Result{ID: id, Err: err, Duration: dur}
	}

	r.log.Debug("puzzle.completed",
		logx.Stringer("puzzle", id),
		logx.String("answer", output),
		logx.Duration("dur", dur))
	return Result{ID: id, Output: output, Duration: dur}
}

// runSolver executes one solver body, converting panics into errors and
// enforcing the watchdog timeout when one is configured.
func (r *Runner) runSolver(fn registry.SolveFunc, input string, data any) (string, error) {
	if r.cfg.SolveTimeout <= 0 {
		return callSolver(fn, input, data)
	}

	type outcome struct {
		out string
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		out, err := callSolver(fn, input, data)
		done <- outcome{out: out, err: err}
	}()

	timer := time.NewTimer(r.cfg.SolveTimeout)
	defer timer.Stop()

	select {
	case o := <-done:
		return o.out, o.err
	case <-timer.C:
		// The abandoned goroutine is left to finish on its own; the
		// process is short-lived and the buffered channel lets it exit.
		return "", fmt.Errorf("%w after %s", ErrSolveTimeout, r.cfg.SolveTimeout)
	}
}

func callSolver(fn registry.SolveFunc, input string, data any) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn(input, data)
}

func dedupe(ids []ident.ID) []ident.ID {
	seen := make(map[ident.ID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
