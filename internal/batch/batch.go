// Package batch evaluates many deals and collects their outcomes.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/adeel-ahmed99/poker-hands/internal/statistics"
	"github.com/adeel-ahmed99/poker-hands/poker"
)

// Record is the outcome of one input line. Exactly one of Showdown and Err
// is meaningful.
type Record struct {
	Line     int
	Values   []int
	Showdown poker.Showdown
	Err      error
}

// Result holds every record in input order plus the run's tally.
type Result struct {
	Records []Record
	Tally   statistics.Tally
	Started time.Time
	Elapsed time.Duration
}

// Runner evaluates deals with a bounded number of workers.
type Runner struct {
	workers int
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the number of deals evaluated in parallel.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithClock replaces the wall clock used for timing.
func WithClock(c quartz.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// NewRunner creates a runner that logs through logger.
func NewRunner(logger *log.Logger, opts ...Option) *Runner {
	r := &Runner{
		workers: 1,
		logger:  logger.WithPrefix("batch"),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every line. Invalid deals become errored records; only
// context cancellation stops the run early.
func (r *Runner) Run(ctx context.Context, lines []Line) (*Result, error) {
	res := &Result{
		Records: make([]Record, len(lines)),
		Started: r.clock.Now(),
	}

	r.logger.Debug("Starting batch", "deals", len(lines), "workers", r.workers)

	// gctx is cancelled by Wait itself, so only ctx tells whether the
	// caller gave up.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Records[i] = evaluate(line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	for _, rec := range res.Records {
		if rec.Err != nil {
			res.Tally.AddError()
			r.logger.Warn("Skipping deal", "line", rec.Line, "error", rec.Err)
			continue
		}
		res.Tally.Add(rec.Showdown)
	}

	res.Elapsed = r.clock.Since(res.Started)
	r.logger.Info("Batch complete",
		"deals", res.Tally.Deals,
		"errors", res.Tally.Errors,
		"elapsed", res.Elapsed)

	return res, nil
}

func evaluate(line Line) Record {
	rec := Record{Line: line.Number, Values: line.Values}
	if line.Err != nil {
		rec.Err = fmt.Errorf("line %d: %w", line.Number, line.Err)
		return rec
	}

	d, err := poker.NewDeal(line.Values)
	if err != nil {
		rec.Err = fmt.Errorf("line %d: %w", line.Number, err)
		return rec
	}
	rec.Showdown = poker.Play(d)
	return rec
}
