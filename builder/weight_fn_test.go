// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cliquepart/builder"
	"github.com/katalvlaran/cliquepart/wgraph"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_noEdge", func() builder.WeightFn { return builder.ConstantWeightFn(wgraph.NoEdge) }},
		{"UniformWeightFn_hiBelowLo", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"UniformWeightFn_spansNoEdge", func() builder.WeightFn { return builder.UniformWeightFn(-10000, 0) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	c := builder.ConstantWeightFn(-7)
	assert.Equal(t, -7, c(nil))
	assert.Equal(t, -7, c(rng))

	u := builder.UniformWeightFn(-3, 4)
	assert.Equal(t, -3, u(nil), "nil RNG falls back to lo")
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		w := u(rng)
		assert.True(t, w >= -3 && w <= 4, "sample %d out of range", w)
		seen[w] = true
	}
	assert.Len(t, seen, 8, "every value of [-3,4] is reachable")
	assert.Equal(t, 3, builder.UniformWeightFn(3, 3)(rng))

	n := builder.NormalWeightFn(10, 2)
	assert.Equal(t, 10, n(nil))
	for i := 0; i < 100; i++ {
		assert.NotEqual(t, wgraph.NoEdge, n(rng))
	}
	assert.Equal(t, wgraph.NoEdge+1, builder.NormalWeightFn(-1e9, 0)(rng), "clamped above NoEdge")
}
