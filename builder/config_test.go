// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. WithRand should set rng
	expRNG := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(expRNG)); cfg.rng != expRNG {
		t.Errorf("WithRand: expected rng %p, got %p", expRNG, cfg.rng)
	}

	// 3. WithSeed yields reproducible streams
	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("WithSeed: draw %d differs: %d vs %d", i, x, y)
		}
	}

	// 4. Later options override earlier ones
	if cfg := newBuilderConfig(WithRand(expRNG), WithSeed(1)); cfg.rng == expRNG {
		t.Errorf("WithSeed after WithRand: expected a fresh rng")
	}
}

// TestWeightOptions verifies the weight policy resolution.
func TestWeightOptions(t *testing.T) {
	t.Parallel()

	if w := newBuilderConfig().weight(); w != DefaultEdgeWeight {
		t.Errorf("default weight: expected %d, got %d", DefaultEdgeWeight, w)
	}
	if w := newBuilderConfig(WithConstantWeight(-3)).weight(); w != -3 {
		t.Errorf("WithConstantWeight(-3): got %d", w)
	}
	cfg := newBuilderConfig(WithConstantWeight(4), WithUniformWeight(8, 8))
	if w := cfg.weight(); w != 8 {
		t.Errorf("last weight option must win: got %d", w)
	}
}

// TestOptionPanics verifies fail-fast option constructors.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithWeightFn(nil)": func() { WithWeightFn(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
