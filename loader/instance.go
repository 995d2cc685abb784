// SPDX-License-Identifier: MIT
// Package: cliquepart/loader
//
// instance.go - the in-memory instance and its shared validation.

package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cliquepart/wgraph"
)

// ErrMalformed indicates an instance file that cannot be parsed or whose
// content breaks the instance invariants.
var ErrMalformed = errors.New("loader: malformed instance")

// ErrUnknownFormat indicates a path whose extension maps to no format.
var ErrUnknownFormat = errors.New("loader: unknown format")

// MaxVertices bounds the vertex count a header may declare. Parsers
// allocate the dense n×n matrix up front, so larger headers are rejected
// before any allocation.
const MaxVertices = 8192

// Instance is a parsed problem: n vertices, clique bound k and a dense
// symmetric weight matrix (zero diagonal, wgraph.NoEdge for absent edges).
type Instance struct {
	N       int
	K       int
	Weights [][]int
}

// Graph wraps the instance in a *wgraph.Graph.
func (inst *Instance) Graph() (*wgraph.Graph, error) {
	if inst == nil {
		return nil, fmt.Errorf("Graph: nil instance: %w", wgraph.ErrInvalidInput)
	}

	return wgraph.New(inst.Weights, inst.K)
}

// Edge is one weighted pair in the sparse formats.
type Edge struct {
	U int `yaml:"u"`
	V int `yaml:"v"`
	W int `yaml:"w"`
}

// checkHeader enforces 1 ≤ n ≤ MaxVertices and 1 ≤ k ≤ n.
func checkHeader(method string, n, k int) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d < 1: %w", method, n, ErrMalformed)
	}
	if n > MaxVertices {
		return fmt.Errorf("%s: n=%d exceeds %d: %w", method, n, MaxVertices, ErrMalformed)
	}
	if k < 1 || k > n {
		return fmt.Errorf("%s: k=%d not in [1,%d]: %w", method, k, n, ErrMalformed)
	}

	return nil
}

// emptyWeights allocates an n×n matrix with a zero diagonal and NoEdge
// elsewhere.
func emptyWeights(n int) [][]int {
	w := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		w[i] = make([]int, n)
		for j = 0; j < n; j++ {
			if i != j {
				w[i][j] = wgraph.NoEdge
			}
		}
	}

	return w
}

// fromEdges builds an instance from a sparse edge list. Edges whose weight
// equals noEdge are treated as absent. Self-loops, out-of-range ids, repeated
// pairs and weights colliding with wgraph.NoEdge are rejected.
func fromEdges(method string, n, k, noEdge int, edges []Edge) (*Instance, error) {
	if err := checkHeader(method, n, k); err != nil {
		return nil, err
	}
	w := emptyWeights(n)
	seen := make(map[[2]int]struct{}, len(edges))
	for i, e := range edges {
		if e.U < 0 || e.V < 0 || e.U >= n || e.V >= n || e.U == e.V {
			return nil, fmt.Errorf("%s: edge %d (%d,%d) is not a pair of distinct vertices in [0,%d): %w",
				method, i, e.U, e.V, n, ErrMalformed)
		}
		key := [2]int{min(e.U, e.V), max(e.U, e.V)}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%s: edge %d repeats pair (%d,%d): %w", method, i, key[0], key[1], ErrMalformed)
		}
		seen[key] = struct{}{}
		if e.W == noEdge {
			continue
		}
		if e.W == wgraph.NoEdge {
			return nil, fmt.Errorf("%s: edge %d weight %d collides with the internal NoEdge: %w",
				method, i, e.W, ErrMalformed)
		}
		w[e.U][e.V] = e.W
		w[e.V][e.U] = e.W
	}

	return &Instance{N: n, K: k, Weights: w}, nil
}

// edges lists the present pairs of inst in ascending (u,v) order.
func (inst *Instance) edges() []Edge {
	var out []Edge
	for u := 0; u < inst.N; u++ {
		for v := u + 1; v < inst.N; v++ {
			if w := inst.Weights[u][v]; w != wgraph.NoEdge {
				out = append(out, Edge{U: u, V: v, W: w})
			}
		}
	}

	return out
}
