// Package partition provides tunable options and observability hooks
// for the clique partition pipeline.
package partition

import (
	"fmt"

	"go.uber.org/zap"
)

// Defaults for Options.
const (
	// DefaultMaxRepairRounds bounds the repair phase.
	DefaultMaxRepairRounds = 10

	// DefaultCoverageBonus is the score added per not-yet-covered edge a
	// candidate would create. It dominates raw weights in typical inputs.
	DefaultCoverageBonus int64 = 1000

	// DefaultParallelThreshold is the smallest candidate pool that is split
	// across workers when Workers > 1.
	DefaultParallelThreshold = 256
)

// Option configures the pipeline via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Build, Repair or Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a partition run.
type Options struct {
	// MaxRepairRounds caps the repair sweeps. 0 disables repair.
	MaxRepairRounds int

	// CoverageBonus multiplies the count of uncovered edges in the builder score.
	CoverageBonus int64

	// Workers > 1 splits the candidate scan into contiguous chunks scored
	// concurrently. Results are identical to the sequential scan.
	Workers int

	// ParallelThreshold is the minimum candidate pool size for a parallel scan.
	ParallelThreshold int

	// Logger receives Debug events per phase and a Warn on validator findings.
	Logger *zap.Logger

	// OnCliqueBuilt is called once per clique emitted by the builder with the
	// clique index and a copy of its members.
	OnCliqueBuilt func(index int, members []int)

	// OnRelocate is called for every repair move of vertex v from clique
	// index from to clique index to.
	OnRelocate func(v, from, to int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - MaxRepairRounds = 10, CoverageBonus = 1000
//   - sequential scan (Workers = 1)
//   - zap.NewNop() logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxRepairRounds:   DefaultMaxRepairRounds,
		CoverageBonus:     DefaultCoverageBonus,
		Workers:           1,
		ParallelThreshold: DefaultParallelThreshold,
		Logger:            zap.NewNop(),
		OnCliqueBuilt:     func(int, []int) {},
		OnRelocate:        func(int, int, int) {},
	}
}

// WithMaxRepairRounds sets the repair round cap.
//
//	r > 0:  at most r sweeps
//	r == 0: skip repair
//	r < 0:  invalid → ErrOptionViolation
func WithMaxRepairRounds(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: MaxRepairRounds cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.MaxRepairRounds = r
	}
}

// WithCoverageBonus sets the per-uncovered-edge score bonus (must be ≥ 0).
func WithCoverageBonus(b int64) Option {
	return func(o *Options) {
		if b < 0 {
			o.err = fmt.Errorf("%w: CoverageBonus cannot be negative (%d)", ErrOptionViolation, b)
			return
		}
		o.CoverageBonus = b
	}
}

// WithWorkers sets the number of concurrent scan workers (must be ≥ 1).
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithParallelThreshold sets the minimum pool size for a parallel scan (must be ≥ 1).
func WithParallelThreshold(t int) Option {
	return func(o *Options) {
		if t < 1 {
			o.err = fmt.Errorf("%w: ParallelThreshold must be at least 1 (%d)", ErrOptionViolation, t)
			return
		}
		o.ParallelThreshold = t
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnCliqueBuilt registers a callback for every clique the builder emits.
func WithOnCliqueBuilt(fn func(index int, members []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCliqueBuilt = fn
		}
	}
}

// WithOnRelocate registers a callback for every repair relocation.
func WithOnRelocate(fn func(v, from, to int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelocate = fn
		}
	}
}

// resolve applies opts over DefaultOptions and reports the first violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
		if o.err != nil {
			return Options{}, o.err
		}
	}

	return o, nil
}
