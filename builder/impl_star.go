// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// impl_star.go - implementation of Star(center, leaves...).
//
// Contract:
//   - At least one leaf (else ErrTooFewVertices).
//   - center and leaves are distinct ids in [0,n) (else ErrInvalidVertex).
//   - Emits spokes center–leaf in leaf order. Leaves stay pairwise unconnected,
//     so no clique of a star holds two leaves.
//
// Complexity: O(len(leaves)) time and space.

package builder

import "fmt"

// Star returns a Constructor that joins center to every leaf.
func Star(center int, leaves ...int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if len(leaves) < MinStarLeaves {
			return fmt.Errorf("%s: %d leaves < min=%d: %w", MethodStar, len(leaves), MinStarLeaves, ErrTooFewVertices)
		}
		if err := c.checkVertices(MethodStar, append([]int{center}, leaves...)); err != nil {
			return err
		}

		for _, leaf := range leaves {
			if err := c.connect(MethodStar, cfg, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
