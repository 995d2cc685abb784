// SPDX-License-Identifier: MIT
// Package: cliquepart/partition
//
// build.go - degree-ordered, coverage-prioritized greedy clique construction.
//
// Contract:
//   • Output is always a valid partition: every vertex exactly once, every
//     clique complete, 1 ≤ size ≤ k. Membership is gated on CanJoin.
//   • Seeds are taken by descending degree, ties by ascending index.
//   • Candidates are scanned by ascending index; strict ">" keeps the first
//     candidate on equal scores.
//   • Some present edges may end up uncovered; Repair deals with them.
//
// Complexity:
//   • Time:  O(n log n) ordering + O(n · k · deg · k) growth, O(n³) worst case.
//   • Space: O(n + n²/2) for assignment flags and the coverage relation.

package partition

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/cliquepart/wgraph"
)

const methodBuild = "Build"

// Build runs the greedy construction phase on g and returns the cliques in
// creation order.
//
// Errors: ErrInvalidInput for a nil graph, ErrOptionViolation for bad options.
func Build(g *wgraph.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodBuild, ErrInvalidInput)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	cliques, _, err := build(g, o)

	return cliques, err
}

// builder carries the mutable construction state.
type builder struct {
	g        *wgraph.Graph
	o        Options
	assigned []bool
	cov      *coverage
}

// build is the shared implementation used by Build and Solve; it also hands
// the coverage relation to the repair phase so Solve need not recompute it.
func build(g *wgraph.Graph, o Options) ([][]int, *coverage, error) {
	var (
		n       = g.N()
		b       = &builder{g: g, o: o, assigned: make([]bool, n), cov: newCoverage(g)}
		cliques = make([][]int, 0, n/g.K()+1)
		seed    int
		err     error
	)

	for _, seed = range seedOrder(g) {
		if b.assigned[seed] {
			continue
		}
		var cl []int
		if cl, err = b.grow(seed); err != nil {
			return nil, nil, err
		}
		b.cov.markClique(cl)
		cliques = append(cliques, cl)

		o.Logger.Debug("clique built",
			zap.Int("index", len(cliques)-1),
			zap.Ints("members", cl),
			zap.Int64("weight", g.CliqueWeight(cl)))
		o.OnCliqueBuilt(len(cliques)-1, append([]int(nil), cl...))
	}

	return cliques, b.cov, nil
}

// seedOrder returns all vertices by descending degree, ties by ascending index.
func seedOrder(g *wgraph.Graph) []int {
	order := make([]int, g.N())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(g.Degree(b), g.Degree(a))
	})

	return order
}

// grow opens a clique at seed and extends it greedily until no unassigned
// vertex can join or the clique reaches size k.
//
// Only neighbors of seed can ever join, so the candidate pool is seed's
// ascending adjacency list; this preserves the ascending scan order.
func (b *builder) grow(seed int) ([]int, error) {
	var (
		k    = b.g.K()
		cl   = make([]int, 1, k)
		pool = b.g.Neighbors(seed)
		best int
		err  error
	)
	cl[0] = seed
	b.assigned[seed] = true

	for len(cl) < k {
		if best, _, err = b.bestCandidate(cl, pool); err != nil {
			return nil, err
		}
		if best < 0 {
			break
		}
		cl = append(cl, best)
		b.assigned[best] = true
		for _, m := range cl[:len(cl)-1] {
			b.cov.mark(m, best)
		}
	}

	return cl, nil
}

// score returns Σ w(v,m) + CoverageBonus × (#uncovered edges (v,m)) over members.
// v must be adjacent to every member.
func (b *builder) score(members []int, v int) int64 {
	var (
		sum       int64
		uncovered int64
	)
	for _, m := range members {
		sum += int64(b.g.Weight(m, v))
		if !b.cov.covered(m, v) {
			uncovered++
		}
	}

	return sum + b.o.CoverageBonus*uncovered
}

// scanRange returns the first highest-scoring eligible vertex in pool,
// or -1 when none is eligible.
func (b *builder) scanRange(members, pool []int) (int, int64) {
	var (
		best      = -1
		bestScore int64
		s         int64
	)
	for _, v := range pool {
		if b.assigned[v] || !b.g.CanJoin(members, v) {
			continue
		}
		s = b.score(members, v)
		// No score floor: any eligible vertex may join, negative scores included.
		if best < 0 || s > bestScore {
			best, bestScore = v, s
		}
	}

	return best, bestScore
}
