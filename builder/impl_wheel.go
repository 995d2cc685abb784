// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// impl_wheel.go - implementation of Wheel(center, rim...).
//
// Canonical definition:
//   • W = Cycle(rim...) + spokes center–rim[i]. Every spoke plus a rim edge
//     forms a triangle, so the largest clique is 3 (4 for a 3-vertex rim).
//
// Contract:
//   • len(rim) ≥ 3 (else ErrTooFewVertices).
//   • center and rim are distinct ids in [0,n) (else ErrInvalidVertex).
//   • Emits the rim cycle first, then spokes in rim order.
//
// Complexity: O(len(rim)).

package builder

import "fmt"

// Wheel returns a Constructor that builds a rim cycle and joins center to it.
func Wheel(center int, rim ...int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if len(rim) < MinWheelRim {
			return fmt.Errorf("%s: rim of %d < min=%d: %w", MethodWheel, len(rim), MinWheelRim, ErrTooFewVertices)
		}
		if err := c.checkVertices(MethodWheel, append([]int{center}, rim...)); err != nil {
			return err
		}
		if err := Cycle(rim...)(c, cfg); err != nil {
			return fmt.Errorf("%s: rim: %w", MethodWheel, err)
		}
		for _, v := range rim {
			if err := c.connect(MethodWheel, cfg, center, v); err != nil {
				return err
			}
		}

		return nil
	}
}
