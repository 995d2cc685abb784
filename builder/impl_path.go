// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// impl_path.go - implementation of Path(vertices...).
//
// Contract:
//   - len(vertices) ≥ 2 (else ErrTooFewVertices); distinct ids in [0,n).
//   - Emits vs[i]–vs[i+1] for i ascending.
//
// Complexity: O(len(vertices)).

package builder

import "fmt"

// Path returns a Constructor that links the listed vertices in order.
func Path(vertices ...int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if len(vertices) < MinPathNodes {
			return fmt.Errorf("%s: %d vertices < min=%d: %w", MethodPath, len(vertices), MinPathNodes, ErrTooFewVertices)
		}
		if err := c.checkVertices(MethodPath, vertices); err != nil {
			return err
		}

		return chain(c, cfg, MethodPath, vertices)
	}
}

// chain connects consecutive entries of vs.
func chain(c *Canvas, cfg builderConfig, method string, vs []int) error {
	for i := 0; i+1 < len(vs); i++ {
		if err := c.connect(method, cfg, vs[i], vs[i+1]); err != nil {
			return err
		}
	}

	return nil
}
