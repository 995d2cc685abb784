// SPDX-License-Identifier: MIT
// Package: cliquepart/partition
//
// repair.go - bounded relocation sweeps over uncovered edges.
//
// Contract:
//   • Sweep edges (i,j), i<j, ascending. For an uncovered edge whose endpoints
//     sit in different cliques, move i into j's clique iff that clique has
//     room (< k) and i is adjacent to all of its members.
//   • Moves are taken immediately, without lookahead. Removing i cannot break
//     completeness of the clique it leaves.
//   • A clique left empty by a move is dropped once the sweeps end, so every
//     remaining clique has 1 ≤ size ≤ k.
//   • An uncovered edge whose endpoints already share a clique is skipped but
//     stays uncovered, so it keeps the sweep going and is retried once a
//     later move separates its endpoints.
//   • Stops after a sweep that meets no uncovered edge, or after MaxRepairRounds.
//
// Complexity:
//   • Time:  O(rounds · (n + E · k)) with an owner index for clique lookup.
//   • Space: O(n + n²/2).

package partition

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/cliquepart/wgraph"
)

const methodRepair = "Repair"

// RepairStats summarizes one repair run.
type RepairStats struct {
	// Rounds is the number of sweeps executed.
	Rounds int
	// Relocations is the number of vertex moves.
	Relocations int
	// Dropped counts cliques removed because a move emptied them.
	Dropped int
	// Uncovered counts present edges whose endpoints end in different cliques.
	Uncovered int
}

// Repair runs the relocation phase over a copy of cliques and returns the
// repaired partition. The input is never mutated. Vertices missing from the
// input, or listed outside [0,n), are left alone.
//
// Errors: ErrInvalidInput for a nil graph, ErrOptionViolation for bad options.
func Repair(g *wgraph.Graph, cliques [][]int, opts ...Option) ([][]int, RepairStats, error) {
	if g == nil {
		return nil, RepairStats{}, fmt.Errorf("%s: nil graph: %w", methodRepair, ErrInvalidInput)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, RepairStats{}, err
	}
	work := cloneCliques(cliques)
	work, stats := repair(g, work, coverageOf(g, work), o)

	return work, stats, nil
}

// repair mutates work and cov in place and returns the compacted partition.
func repair(g *wgraph.Graph, work [][]int, cov *coverage, o Options) ([][]int, RepairStats) {
	var (
		stats RepairStats
		owner = ownerIndex(g.N(), work)
		k     = g.K()
		found bool
	)

	for stats.Rounds < o.MaxRepairRounds {
		stats.Rounds++
		found = false

		g.Edges(func(i, j, _ int) bool {
			if cov.covered(i, j) {
				return true
			}
			found = true
			ci, cj := owner[i], owner[j]
			if ci < 0 || cj < 0 || ci == cj {
				// left uncovered: a later move may split i and j again
				return true
			}
			if len(work[cj]) >= k || !g.CanJoin(work[cj], i) {
				return true
			}

			work[ci] = removeValue(work[ci], i)
			work[cj] = append(work[cj], i)
			owner[i] = cj
			cov.mark(i, j)
			stats.Relocations++

			o.Logger.Debug("vertex relocated",
				zap.Int("vertex", i), zap.Int("from", ci), zap.Int("to", cj), zap.Int("round", stats.Rounds))
			o.OnRelocate(i, ci, cj)

			return true
		})

		if !found {
			break
		}
	}

	compacted := work[:0]
	for _, cl := range work {
		if len(cl) == 0 {
			stats.Dropped++
			continue
		}
		compacted = append(compacted, cl)
	}
	stats.Uncovered = countUncovered(g, ownerIndex(g.N(), compacted))

	o.Logger.Debug("repair finished",
		zap.Int("rounds", stats.Rounds),
		zap.Int("relocations", stats.Relocations),
		zap.Int("dropped", stats.Dropped),
		zap.Int("uncovered", stats.Uncovered))

	return compacted, stats
}

// ownerIndex maps each vertex to the index of the last clique listing it,
// or -1. Out-of-range ids are skipped.
func ownerIndex(n int, cliques [][]int) []int {
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	for c, cl := range cliques {
		for _, v := range cl {
			if v >= 0 && v < n {
				owner[v] = c
			}
		}
	}

	return owner
}

// countUncovered counts present edges whose endpoints do not share a clique.
func countUncovered(g *wgraph.Graph, owner []int) int {
	uncovered := 0
	g.Edges(func(u, v, _ int) bool {
		if owner[u] < 0 || owner[u] != owner[v] {
			uncovered++
		}
		return true
	})

	return uncovered
}

// removeValue deletes the first occurrence of v, keeping member order.
func removeValue(s []int, v int) []int {
	if p := slices.Index(s, v); p >= 0 {
		return slices.Delete(s, p, p+1)
	}

	return s
}

func cloneCliques(cliques [][]int) [][]int {
	out := make([][]int, len(cliques))
	for i, cl := range cliques {
		out[i] = slices.Clone(cl)
	}

	return out
}
