// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// api.go - public entry points and the Canvas the constructors draw on.
//
// Design contract:
//   - One orchestrator: BuildMatrix(n, bopts, cons...). Allocates the canvas,
//     resolves cfg, runs cons in order. BuildGraph wraps the result.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquepart/wgraph"
)

// Constructor writes a deterministic set of edges into c using the resolved
// builderConfig. Constructors validate parameters before writing anything and
// return sentinel errors wrapped with their method name.
type Constructor func(c *Canvas, cfg builderConfig) error

// Canvas is a dense symmetric weight matrix under construction.
// Every off-diagonal entry starts as wgraph.NoEdge.
type Canvas struct {
	n int
	w [][]int
}

// newCanvas allocates an n×n canvas with a zero diagonal.
// Complexity: O(n²).
func newCanvas(n int) *Canvas {
	w := make([][]int, n)
	cells := make([]int, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		w[i] = cells[i*n : (i+1)*n : (i+1)*n]
		for j = 0; j < n; j++ {
			if i != j {
				w[i][j] = wgraph.NoEdge
			}
		}
	}

	return &Canvas{n: n, w: w}
}

// N returns the vertex count.
func (c *Canvas) N() int { return c.n }

// Weight returns the current weight of {u,v}, or wgraph.NoEdge when absent or
// out of range.
func (c *Canvas) Weight(u, v int) int {
	if u < 0 || v < 0 || u >= c.n || v >= c.n {
		return wgraph.NoEdge
	}

	return c.w[u][v]
}

// SetEdge writes weight w to {u,v} symmetrically, overwriting any previous
// value.
//
// Errors: ErrInvalidVertex for out-of-range ids or u == v;
// ErrInvalidWeight when w == wgraph.NoEdge.
func (c *Canvas) SetEdge(u, v, w int) error {
	if u < 0 || v < 0 || u >= c.n || v >= c.n || u == v {
		return fmt.Errorf("SetEdge(%d,%d): %w", u, v, ErrInvalidVertex)
	}
	if w == wgraph.NoEdge {
		return fmt.Errorf("SetEdge(%d,%d): %w", u, v, ErrInvalidWeight)
	}
	c.w[u][v] = w
	c.w[v][u] = w

	return nil
}

// RemoveEdge resets {u,v} to wgraph.NoEdge. Out-of-range ids are ignored.
func (c *Canvas) RemoveEdge(u, v int) {
	if u < 0 || v < 0 || u >= c.n || v >= c.n || u == v {
		return
	}
	c.w[u][v] = wgraph.NoEdge
	c.w[v][u] = wgraph.NoEdge
}

// checkVertices verifies that every id lies in [0,n) and appears once.
func (c *Canvas) checkVertices(method string, vs []int) error {
	seen := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		if v < 0 || v >= c.n {
			return fmt.Errorf("%s: vertex %d outside [0,%d): %w", method, v, c.n, ErrInvalidVertex)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%s: vertex %d listed twice: %w", method, v, ErrInvalidVertex)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// connect draws one weight from cfg and writes {u,v}, wrapping failures
// with method.
func (c *Canvas) connect(method string, cfg builderConfig, u, v int) error {
	w := cfg.weight()
	if err := c.SetEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// BuildMatrix allocates an n×n canvas, resolves the builder configuration
// from bopts and applies all constructors in order. The returned matrix is
// symmetric with a zero diagonal and wgraph.NoEdge for absent edges.
//
// Errors: ErrTooFewVertices for n < 1; ErrConstructFailed for a nil
// constructor; any constructor error wrapped with "BuildMatrix: %w".
//
// Complexity: O(n²) allocation plus Σ constructor cost.
func BuildMatrix(n int, bopts []BuilderOption, cons ...Constructor) ([][]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", MethodBuildMatrix, n, ErrTooFewVertices)
	}
	c := newCanvas(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMatrix, i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMatrix, err)
		}
	}

	return c.w, nil
}

// BuildGraph runs BuildMatrix and wraps the matrix in a *wgraph.Graph with
// clique bound k.
//
// Errors: as BuildMatrix, plus wgraph.ErrInvalidInput when k ∉ [1,n].
func BuildGraph(n, k int, bopts []BuilderOption, cons ...Constructor) (*wgraph.Graph, error) {
	w, err := BuildMatrix(n, bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}
	g, err := wgraph.New(w, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	return g, nil
}
