// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil              (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn  (constant DefaultEdgeWeight)
//
// newBuilderConfig applies options in order (later overrides earlier).

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for every edge a topology constructor emits.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one edge weight from the configured policy.
func (c builderConfig) weight() int {
	return c.weightFn(c.rng)
}
