// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(left, right).
//
// Contract:
//   • Both sides non-empty (else ErrTooFewVertices).
//   • All ids distinct and in [0,n) (else ErrInvalidVertex).
//   • Emits every cross pair left[i]–right[j], i asc then j asc. No edge lies
//     inside a side, so cliques have at most 2 members.
//
// Complexity: O(|left|·|right|).

package builder

import "fmt"

// CompleteBipartite returns a Constructor for K_{|left|,|right|} over the
// given vertex sides.
func CompleteBipartite(left, right []int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if len(left) < 1 || len(right) < 1 {
			return fmt.Errorf("%s: sides %d and %d (each must be ≥ 1): %w",
				MethodCompleteBipartite, len(left), len(right), ErrTooFewVertices)
		}
		all := make([]int, 0, len(left)+len(right))
		all = append(append(all, left...), right...)
		if err := c.checkVertices(MethodCompleteBipartite, all); err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err := c.connect(MethodCompleteBipartite, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
