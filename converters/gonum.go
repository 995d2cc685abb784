// SPDX-License-Identifier: MIT
// Package: cliquepart/converters
//
// gonum.go - wgraph ⇄ gonum adapters and partition modularity.
//
// Contract:
//   • ToGonum maps vertex v to simple.Node(v) and every present edge to a
//     WeightedEdge with float64(weight). Absent pairs report weight 0.
//   • FromGonum requires node ids 0..n-1 and integral weights different
//     from wgraph.NoEdge.
//   • Modularity evaluates community.Q at resolution 1 with each clique as a
//     community. It is undefined (ErrUndefinedModularity) when the total edge
//     weight is not positive.

package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cliquepart/wgraph"
)

// ErrUnsupportedGraph indicates a gonum graph that cannot be expressed as a
// wgraph.Graph (sparse node ids, fractional or sentinel weights).
var ErrUnsupportedGraph = errors.New("converters: unsupported graph")

// ErrUndefinedModularity indicates a graph whose total edge weight is not
// positive, where Q has no meaning.
var ErrUndefinedModularity = errors.New("converters: modularity undefined")

const (
	methodToGonum    = "ToGonum"
	methodFromGonum  = "FromGonum"
	methodModularity = "Modularity"
)

// ToGonum copies g into a new simple.WeightedUndirectedGraph.
// Complexity: O(n + E).
func ToGonum(g *wgraph.Graph) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodToGonum, wgraph.ErrInvalidInput)
	}
	dst := simple.NewWeightedUndirectedGraph(0, 0)
	for v := 0; v < g.N(); v++ {
		dst.AddNode(simple.Node(v))
	}
	g.Edges(func(u, v, w int) bool {
		dst.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: float64(w)})
		return true
	})

	return dst, nil
}

// FromGonum builds a wgraph.Graph with clique bound k from src.
//
// Errors: ErrUnsupportedGraph for node ids outside 0..n-1, non-integral
// weights or weights equal to NoEdge; wgraph.ErrInvalidInput for bad k.
//
// Complexity: O(n + E) scan plus O(n²) matrix construction.
func FromGonum(src graph.WeightedUndirected, k int) (*wgraph.Graph, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", methodFromGonum, wgraph.ErrInvalidInput)
	}
	nodes := graph.NodesOf(src.Nodes())
	n := len(nodes)
	for _, node := range nodes {
		if id := node.ID(); id < 0 || id >= int64(n) {
			return nil, fmt.Errorf("%s: node id %d outside [0,%d): %w", methodFromGonum, id, n, ErrUnsupportedGraph)
		}
	}

	rows := make([][]int, n)
	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]int, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = wgraph.NoEdge
			}
		}
	}
	for _, node := range nodes {
		i = int(node.ID())
		for _, to := range graph.NodesOf(src.From(node.ID())) {
			j = int(to.ID())
			if i == j {
				continue
			}
			w = src.WeightedEdge(node.ID(), to.ID()).Weight()
			if math.IsNaN(w) || math.IsInf(w, 0) || w != math.Trunc(w) || int(w) == wgraph.NoEdge {
				return nil, fmt.Errorf("%s: edge (%d,%d) weight %g: %w", methodFromGonum, i, j, w, ErrUnsupportedGraph)
			}
			rows[i][j] = int(w)
		}
	}

	g, err := wgraph.New(rows, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromGonum, err)
	}

	return g, nil
}

// ToSymDense copies g into a gonum symmetric matrix; absent edges carry
// float64(wgraph.NoEdge) so that wgraph.FromSymDense round-trips.
// Complexity: O(n²).
func ToSymDense(g *wgraph.Graph) *mat.SymDense {
	if g == nil {
		return nil
	}
	n := g.N()
	m := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.SetSym(i, j, float64(g.Weight(i, j)))
		}
	}

	return m
}

// Modularity returns gonum's modularity Q of cliques over g at resolution 1.
//
// Errors: wgraph.ErrInvalidInput for a nil graph or out-of-range vertex ids;
// ErrUndefinedModularity when the total edge weight is ≤ 0.
//
// Complexity: O(n + E) conversion plus community.Q.
func Modularity(g *wgraph.Graph, cliques [][]int) (float64, error) {
	gg, err := ToGonum(g)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodModularity, err)
	}

	var total int64
	g.Edges(func(_, _, w int) bool {
		total += int64(w)
		return true
	})
	if total <= 0 {
		return 0, fmt.Errorf("%s: total edge weight %d: %w", methodModularity, total, ErrUndefinedModularity)
	}

	communities := make([][]graph.Node, len(cliques))
	for c, cl := range cliques {
		communities[c] = make([]graph.Node, len(cl))
		for i, v := range cl {
			if v < 0 || v >= g.N() {
				return 0, fmt.Errorf("%s: clique %d holds vertex %d outside [0,%d): %w",
					methodModularity, c, v, g.N(), wgraph.ErrInvalidInput)
			}
			communities[c][i] = simple.Node(v)
		}
	}

	return community.Q(gg, communities, 1), nil
}
