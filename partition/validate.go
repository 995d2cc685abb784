// Package partition - read-only validation of the hard invariants.
//
// Checks, per clique in order:
//  1. size in [1,k];
//  2. every member in [0,n) and not already assigned by an earlier clique
//     (or earlier in the same clique);
//  3. every member pair connected.
//
// Then, once all cliques are scanned, every vertex must have been assigned.
// The first violation is returned; the partition is never modified.
package partition

import (
	"fmt"

	"github.com/katalvlaran/cliquepart/wgraph"
)

const methodValidate = "Validate"

// Validate returns nil when cliques is a valid clique partition of g, or the
// first violation found. Violations wrap ErrConstraintViolation plus one of
// ErrCliqueSize, ErrVertexOutOfRange, ErrDuplicateVertex, ErrIncompleteClique,
// ErrUnassignedVertex. A nil graph yields ErrInvalidInput.
//
// Complexity: O(n + Σ s²) time, O(n) space.
func Validate(g *wgraph.Graph, cliques [][]int) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", methodValidate, ErrInvalidInput)
	}

	var (
		n        = g.N()
		k        = g.K()
		assigned = make([]int, n)
		c, a, b  int
		u, v     int
	)
	for v = range assigned {
		assigned[v] = -1
	}

	for c = 0; c < len(cliques); c++ {
		cl := cliques[c]
		if len(cl) < 1 || len(cl) > k {
			return fmt.Errorf("clique %d has size %d (k=%d): %w", c, len(cl), k, ErrCliqueSize)
		}

		for _, v = range cl {
			if v < 0 || v >= n {
				return fmt.Errorf("clique %d holds vertex %d outside [0,%d): %w", c, v, n, ErrVertexOutOfRange)
			}
			if assigned[v] != -1 {
				return fmt.Errorf("vertex %d in clique %d already assigned to clique %d: %w",
					v, c, assigned[v], ErrDuplicateVertex)
			}
			assigned[v] = c
		}

		for a = 0; a < len(cl); a++ {
			for b = a + 1; b < len(cl); b++ {
				u, v = cl[a], cl[b]
				if !g.AreConnected(u, v) {
					return fmt.Errorf("vertices %d and %d in clique %d are not connected: %w",
						u, v, c, ErrIncompleteClique)
				}
			}
		}
	}

	for v = 0; v < n; v++ {
		if assigned[v] == -1 {
			return fmt.Errorf("vertex %d is not assigned to any clique: %w", v, ErrUnassignedVertex)
		}
	}

	return nil
}
