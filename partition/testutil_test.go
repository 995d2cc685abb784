// Package partition_test provides helpers shared across *_test.go files in
// this package.
package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquepart/wgraph"
)

const X = wgraph.NoEdge

// emptyMatrix returns an n×n matrix with 0 on the diagonal and NoEdge elsewhere.
func emptyMatrix(n int) [][]int {
	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, n)
		for j := range w[i] {
			if i != j {
				w[i][j] = X
			}
		}
	}

	return w
}

// setEdge writes a symmetric weight.
func setEdge(w [][]int, u, v, weight int) {
	w[u][v] = weight
	w[v][u] = weight
}

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, w [][]int, k int) *wgraph.Graph {
	t.Helper()
	g, err := wgraph.New(w, k)
	require.NoError(t, err)

	return g
}

// hiddenClique10 is the 10-vertex stress instance: two medium triangles,
// one heavy 4-clique {6,7,8,9} and three cross edges.
func hiddenClique10() [][]int {
	w := emptyMatrix(10)
	setEdge(w, 0, 1, 8)
	setEdge(w, 0, 2, 7)
	setEdge(w, 1, 2, 9)

	setEdge(w, 3, 4, 6)
	setEdge(w, 3, 5, 7)
	setEdge(w, 4, 5, 8)

	setEdge(w, 6, 7, 20)
	setEdge(w, 6, 8, 22)
	setEdge(w, 6, 9, 21)
	setEdge(w, 7, 8, 23)
	setEdge(w, 7, 9, 24)
	setEdge(w, 8, 9, 25)

	setEdge(w, 0, 3, 5)
	setEdge(w, 1, 4, 4)
	setEdge(w, 2, 6, 3)

	return w
}

// sample5 is a five-vertex instance where vertex 4 bridges two groups.
func sample5() [][]int {
	w := emptyMatrix(5)
	setEdge(w, 0, 1, 3)
	setEdge(w, 0, 2, 5)
	setEdge(w, 0, 4, 1)
	setEdge(w, 1, 2, 4)
	setEdge(w, 1, 4, 5)
	setEdge(w, 3, 4, 7)

	return w
}

// requireValidPartition asserts the three hard invariants directly,
// independent of partition.Validate.
func requireValidPartition(t testing.TB, g *wgraph.Graph, cliques [][]int) {
	t.Helper()
	seen := make([]int, g.N())
	for ci, cl := range cliques {
		require.GreaterOrEqual(t, len(cl), 1, "clique %d empty", ci)
		require.LessOrEqual(t, len(cl), g.K(), "clique %d too large", ci)
		for a := range cl {
			require.True(t, cl[a] >= 0 && cl[a] < g.N(), "vertex %d out of range", cl[a])
			seen[cl[a]]++
			for b := a + 1; b < len(cl); b++ {
				require.True(t, g.AreConnected(cl[a], cl[b]), "clique %d: %d-%d not connected", ci, cl[a], cl[b])
			}
		}
	}
	for v, c := range seen {
		require.Equal(t, 1, c, "vertex %d appears %d times", v, c)
	}
}
