// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p).
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource).
//     p == 0 writes nothing; p == 1 writes every pair.
//   - Accepted pairs draw their weight from cfg.weightFn with the same RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Trials run for i asc, then j asc (j > i); one Float64 per pair, then the
//     weight draw for accepted pairs. Fixed seed ⇒ fixed matrix.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples G(n,p) over all vertices.
func RandomSparse(p float64) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if p == MinProbability {
			return nil
		}
		rng := cfg.rng
		if rng == nil && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		var i, j int
		for i = 0; i < c.n; i++ {
			for j = i + 1; j < c.n; j++ {
				if rng != nil && rng.Float64() >= p {
					continue
				}
				if err := c.connect(MethodRandomSparse, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
