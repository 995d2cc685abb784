// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood over vertices 0..rows·cols-1,
//     cell (r,c) ↦ vertex r·cols + c (row-major).
//   • Grids are triangle-free: every clique has at most 2 members.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • rows·cols ≤ n (else ErrInvalidVertex).
//   • For each cell in row-major order emit Right then Bottom neighbor.
//
// Complexity: O(rows·cols).

package builder

import "fmt"

// Grid returns a Constructor that lays a rows×cols grid over the first
// rows·cols vertices.
func Grid(rows, cols int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if rows*cols > c.n {
			return fmt.Errorf("%s: %d×%d cells exceed n=%d: %w", MethodGrid, rows, cols, c.n, ErrInvalidVertex)
		}

		var r, col, id int
		for r = 0; r < rows; r++ {
			for col = 0; col < cols; col++ {
				id = r*cols + col
				if col+1 < cols {
					if err := c.connect(MethodGrid, cfg, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := c.connect(MethodGrid, cfg, id, id+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
