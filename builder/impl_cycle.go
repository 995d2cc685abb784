// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// impl_cycle.go - implementation of Cycle(vertices...).
//
// Contract:
//   - len(vertices) ≥ 3 (else ErrTooFewVertices); distinct ids in [0,n).
//   - Emits the path edges in order, then the closing edge vs[last]–vs[0].
//
// Complexity: O(len(vertices)).

package builder

import "fmt"

// Cycle returns a Constructor that links the listed vertices into a ring.
func Cycle(vertices ...int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if len(vertices) < MinCycleNodes {
			return fmt.Errorf("%s: %d vertices < min=%d: %w", MethodCycle, len(vertices), MinCycleNodes, ErrTooFewVertices)
		}
		if err := c.checkVertices(MethodCycle, vertices); err != nil {
			return err
		}
		if err := chain(c, cfg, MethodCycle, vertices); err != nil {
			return err
		}

		return c.connect(MethodCycle, cfg, vertices[len(vertices)-1], vertices[0])
	}
}
