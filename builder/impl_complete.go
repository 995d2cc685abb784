// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// impl_complete.go - implementation of Complete(vertices...).
//
// Contract:
//   - With no arguments the clique spans all n vertices.
//   - Otherwise every listed id must lie in [0,n) and appear once.
//   - Emits pairs (vs[a], vs[b]) for a<b in list order, one weight draw each.
//
// Complexity:
//   - Time: O(s²) for s listed vertices. Space: O(s) for the duplicate check.

package builder

import "fmt"

// Complete returns a Constructor that connects every pair of the listed
// vertices (all vertices when none are listed).
func Complete(vertices ...int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		vs := vertices
		if len(vs) == 0 {
			vs = span(c.n)
		}
		if len(vs) < MinCompleteNodes {
			return fmt.Errorf("%s: %d vertices < min=%d: %w", MethodComplete, len(vs), MinCompleteNodes, ErrTooFewVertices)
		}
		if err := c.checkVertices(MethodComplete, vs); err != nil {
			return err
		}

		var a, b int
		for a = 0; a < len(vs); a++ {
			for b = a + 1; b < len(vs); b++ {
				if err := c.connect(MethodComplete, cfg, vs[a], vs[b]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// span returns [0, 1, …, n-1].
func span(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}

	return vs
}
