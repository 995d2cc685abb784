// SPDX-License-Identifier: MIT
// Package: cliquepart/wgraph
//
// graph.go - Graph type, constructors and O(1)/O(degree) queries.
//
// Contract:
//   • 1 ≤ k ≤ n; every constructor validates before allocating the buffer.
//   • Weight(u,u) == 0 and AreConnected(u,u) == true for every vertex.
//   • Weight is symmetric by construction (one stored value per unordered pair).
//   • The Graph never retains the caller's slices; later mutation of the source
//     does not affect it.

package wgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NoEdge is the reserved weight meaning "no edge between these vertices".
// The value matches the text instance format read by the loader package.
const NoEdge = -9999

// Method tags used in wrapped error messages.
const (
	methodNew          = "New"
	methodUpperTri     = "FromUpperTriangular"
	methodFromSymDense = "FromSymDense"
)

// Graph is an immutable, dense, undirected weighted graph with a clique-size bound k.
type Graph struct {
	n, k   int
	w      []int   // upper triangle, len n(n-1)/2, see PairIndex
	degree []int   // degree[v] = |neighbors(v)|
	adj    [][]int // adj[v] ascending
	edges  int
}

// New builds a Graph from a dense n×n weight matrix where n = len(weights).
// Diagonal entries are ignored; off-diagonal entries must be symmetric.
//
// Errors: ErrInvalidInput (wrapped) for n == 0, ragged rows, k out of [1,n]
// or weights[i][j] != weights[j][i].
//
// Complexity: O(n²) time, O(n²/2 + E) memory.
func New(weights [][]int, k int) (*Graph, error) {
	n := len(weights)
	if err := checkBounds(methodNew, n, k); err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(weights[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				methodNew, i, len(weights[i]), n, ErrInvalidInput)
		}
	}

	g := alloc(n, k)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if weights[i][j] != weights[j][i] {
				return nil, fmt.Errorf("%s: weight(%d,%d)=%d but weight(%d,%d)=%d: %w",
					methodNew, i, j, weights[i][j], j, i, weights[j][i], ErrInvalidInput)
			}
			g.w[g.PairIndex(i, j)] = weights[i][j]
		}
	}
	g.derive()

	return g, nil
}

// FromUpperTriangular builds a Graph from the strict upper triangle:
// rows[i][c] is the weight of edge (i, i+1+c). len(rows) must be n-1 and
// len(rows[i]) must be n-1-i. For n == 1, rows must be empty.
//
// Complexity: O(n²) time, O(n²/2 + E) memory.
func FromUpperTriangular(rows [][]int, n, k int) (*Graph, error) {
	if err := checkBounds(methodUpperTri, n, k); err != nil {
		return nil, err
	}
	if len(rows) != n-1 {
		return nil, fmt.Errorf("%s: got %d rows, want %d: %w", methodUpperTri, len(rows), n-1, ErrInvalidInput)
	}

	var i, c int
	g := alloc(n, k)
	for i = 0; i < n-1; i++ {
		if len(rows[i]) != n-1-i {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				methodUpperTri, i, len(rows[i]), n-1-i, ErrInvalidInput)
		}
		for c = 0; c < n-1-i; c++ {
			g.w[g.PairIndex(i, i+1+c)] = rows[i][c]
		}
	}
	g.derive()

	return g, nil
}

// FromSymDense builds a Graph from a gonum symmetric matrix. Every entry must
// be a finite integer; float64(NoEdge) marks a missing edge.
//
// Complexity: O(n²) time, O(n²/2 + E) memory.
func FromSymDense(m *mat.SymDense, k int) (*Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: nil matrix: %w", methodFromSymDense, ErrInvalidInput)
	}
	n, _ := m.Dims()
	if err := checkBounds(methodFromSymDense, n, k); err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	g := alloc(n, k)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
				return nil, fmt.Errorf("%s: entry (%d,%d)=%g is not an integer: %w",
					methodFromSymDense, i, j, v, ErrInvalidInput)
			}
			g.w[g.PairIndex(i, j)] = int(v)
		}
	}
	g.derive()

	return g, nil
}

// checkBounds enforces n ≥ 1 and 1 ≤ k ≤ n.
func checkBounds(method string, n, k int) error {
	if n <= 0 {
		return fmt.Errorf("%s: n=%d must be positive: %w", method, n, ErrInvalidInput)
	}
	if k <= 0 || k > n {
		return fmt.Errorf("%s: k=%d not in [1,%d]: %w", method, k, n, ErrInvalidInput)
	}

	return nil
}

func alloc(n, k int) *Graph {
	return &Graph{
		n:      n,
		k:      k,
		w:      make([]int, n*(n-1)/2),
		degree: make([]int, n),
		adj:    make([][]int, n),
	}
}

// derive computes degrees and ascending adjacency lists in two passes
// (count, then fill) so every list is allocated exactly once.
func (g *Graph) derive() {
	var u, v int
	for u = 0; u < g.n; u++ {
		for v = u + 1; v < g.n; v++ {
			if g.w[g.PairIndex(u, v)] != NoEdge {
				g.degree[u]++
				g.degree[v]++
				g.edges++
			}
		}
	}
	for u = 0; u < g.n; u++ {
		g.adj[u] = make([]int, 0, g.degree[u])
	}
	for u = 0; u < g.n; u++ {
		for v = u + 1; v < g.n; v++ {
			if g.w[g.PairIndex(u, v)] != NoEdge {
				g.adj[u] = append(g.adj[u], v)
				g.adj[v] = append(g.adj[v], u)
			}
		}
	}
}

// canonical orders a vertex pair as (min, max).
func canonical(u, v int) (int, int) {
	if u > v {
		return v, u
	}

	return u, v
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// K returns the maximum clique size.
func (g *Graph) K() int { return g.k }

// EdgeCount returns the number of present edges.
func (g *Graph) EdgeCount() int { return g.edges }

// PairCount returns the number of unordered vertex pairs, n(n-1)/2.
func (g *Graph) PairCount() int { return len(g.w) }

// PairIndex maps an unordered pair u != v to its slot in [0, PairCount()).
// Callers must pass in-range, distinct vertices.
// Complexity: O(1).
func (g *Graph) PairIndex(u, v int) int {
	u, v = canonical(u, v)

	return u*(2*g.n-u-1)/2 + (v - u - 1)
}

// inRange reports whether v is a vertex of g.
func (g *Graph) inRange(v int) bool { return v >= 0 && v < g.n }

// Weight returns the weight of edge (u,v), 0 for u == v, and NoEdge for
// absent edges or out-of-range vertices.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) int {
	if !g.inRange(u) || !g.inRange(v) {
		return NoEdge
	}
	if u == v {
		return 0
	}

	return g.w[g.PairIndex(u, v)]
}

// AreConnected reports whether u == v or an edge (u,v) is present.
// Complexity: O(1).
func (g *Graph) AreConnected(u, v int) bool {
	if u == v {
		return g.inRange(u)
	}

	return g.Weight(u, v) != NoEdge
}

// Degree returns the number of neighbors of v, or 0 when v is out of range.
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return g.degree[v]
}

// Neighbors returns a fresh ascending slice of the neighbors of v.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}

	return append([]int(nil), g.adj[v]...)
}

// Edges calls fn for every present edge (u,v) with u < v in ascending order.
// Iteration stops early when fn returns false.
// Complexity: O(n + E).
func (g *Graph) Edges(fn func(u, v, w int) bool) {
	var u int
	for u = 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if v < u {
				continue
			}
			if !fn(u, v, g.w[g.PairIndex(u, v)]) {
				return
			}
		}
	}
}

// CanJoin reports whether v may be appended to members: v is connected to
// every member and len(members) < k. v must not already be a member.
// Complexity: O(len(members)).
func (g *Graph) CanJoin(members []int, v int) bool {
	if len(members) >= g.k || !g.inRange(v) {
		return false
	}
	for _, m := range members {
		if m == v || !g.AreConnected(m, v) {
			return false
		}
	}

	return true
}

// IsClique reports whether every pair of members is connected.
// Size bounds are not checked here.
// Complexity: O(s²).
func (g *Graph) IsClique(members []int) bool {
	var a, b int
	for a = 0; a < len(members); a++ {
		for b = a + 1; b < len(members); b++ {
			if !g.AreConnected(members[a], members[b]) {
				return false
			}
		}
	}

	return true
}

// CliqueWeight returns the sum of present-edge weights among members.
// Missing edges contribute nothing.
// Complexity: O(s²).
func (g *Graph) CliqueWeight(members []int) int64 {
	var (
		a, b  int
		w     int
		total int64
	)
	for a = 0; a < len(members); a++ {
		for b = a + 1; b < len(members); b++ {
			if w = g.Weight(members[a], members[b]); w != NoEdge {
				total += int64(w)
			}
		}
	}

	return total
}
