// Package partition - pipeline entry points.
//
// This file provides the canonical entry points:
//
//   - ComputePartition: accept a dense weight matrix plus n and k, build a
//     wgraph.Graph, delegate to Solve.
//   - Solve: Build → Repair → Validate → Evaluate on an existing graph.
//
// A validator finding is a quality warning: it is logged, stored in
// Result.Violation and the (possibly imperfect) partition is still returned.
package partition

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cliquepart/wgraph"
)

const (
	methodCompute = "ComputePartition"
	methodSolve   = "Solve"
)

// Result is the outcome of a pipeline run.
type Result struct {
	// Cliques lists the partition, each clique an ordered vertex list.
	Cliques [][]int
	// Sizes[i] == len(Cliques[i]).
	Sizes []int
	// Violation is nil for a valid partition, else the first validator finding.
	Violation error
	// Repair summarizes the repair phase.
	Repair RepairStats
	// Stats reports weight and coverage of the final partition.
	Stats Stats
	// Elapsed is the wall time of Solve.
	Elapsed time.Duration
}

// Valid reports whether the validator accepted the partition.
func (r *Result) Valid() bool { return r.Violation == nil }

// ComputePartition partitions the n vertices described by the dense symmetric
// matrix weights (wgraph.NoEdge marks a missing edge) into cliques of size ≤ k.
//
// Errors: ErrInvalidInput when weights is nil, len(weights) != n, n ≤ 0,
// k ∉ [1,n], rows are ragged or asymmetric; ErrOptionViolation for bad options.
//
// Complexity: O(n²) graph construction plus Solve.
func ComputePartition(weights [][]int, n, k int, opts ...Option) (*Result, error) {
	if weights == nil {
		return nil, fmt.Errorf("%s: nil weights: %w", methodCompute, ErrInvalidInput)
	}
	if n <= 0 || len(weights) != n {
		return nil, fmt.Errorf("%s: n=%d but weights has %d rows: %w", methodCompute, n, len(weights), ErrInvalidInput)
	}
	g, err := wgraph.New(weights, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompute, err)
	}

	return Solve(g, opts...)
}

// Solve runs the full pipeline on g.
//
// Errors: ErrInvalidInput for a nil graph, ErrOptionViolation for bad options.
// Constraint violations are reported in Result.Violation, not as an error.
func Solve(g *wgraph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodSolve, ErrInvalidInput)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log := o.Logger.With(zap.Int("n", g.N()), zap.Int("k", g.K()))

	cliques, cov, err := build(g, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	log.Debug("build finished", zap.Int("cliques", len(cliques)))

	cliques, rs := repair(g, cliques, cov, o)

	res := &Result{
		Cliques: cliques,
		Sizes:   Sizes(cliques),
		Repair:  rs,
		Stats:   Evaluate(g, cliques),
	}
	if res.Violation = Validate(g, cliques); res.Violation != nil {
		log.Warn("generated partition violates constraints", zap.Error(res.Violation))
	}
	res.Elapsed = time.Since(start)

	log.Debug("partition computed",
		zap.Int("cliques", res.Stats.Cliques),
		zap.Int64("total_weight", res.Stats.TotalWeight),
		zap.Int("uncovered_edges", res.Stats.UncoveredEdges),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}
