// Package builder provides edge-weight distributions for instance constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/cliquepart/wgraph"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state and must never return
// wgraph.NoEdge.
type WeightFn func(rng *rand.Rand) int

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value == wgraph.NoEdge.
func ConstantWeightFn(value int) WeightFn {
	if value == wgraph.NoEdge {
		panic(fmt.Sprintf("ConstantWeightFn: value %d is the NoEdge sentinel", value))
	}

	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi] inclusive.
// Panics if hi < lo or the range contains wgraph.NoEdge.
// If rng is nil, yields lo to keep a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	if lo <= wgraph.NoEdge && wgraph.NoEdge <= hi {
		panic(fmt.Sprintf("UniformWeightFn: [%d,%d] contains NoEdge", lo, hi))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || lo == hi {
			return lo
		}

		return lo + rng.Intn(hi-lo+1)
	}
}

// NormalWeightFn returns a WeightFn sampling N(mean, stddev) rounded to the
// nearest integer. Samples at or below NoEdge are clamped to NoEdge+1.
// Panics if stddev < 0. If rng is nil, yields round(mean).
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}
	floor := float64(wgraph.NoEdge + 1)

	return func(rng *rand.Rand) int {
		sample := mean
		if rng != nil {
			sample += rng.NormFloat64() * stddev
		}
		sample = math.Round(sample)
		if sample < floor {
			sample = floor
		}
		if sample > math.MaxInt32 {
			sample = math.MaxInt32
		}

		return int(sample)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U{lo..hi} via UniformWeightFn.
func WithUniformWeight(lo, hi int) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithNormalWeight sets weights ∼ round(N(mean,stddev)) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
