package wgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cliquepart/wgraph"
)

const X = wgraph.NoEdge

// sample5 is a five-vertex instance where vertex 4 bridges two groups.
func sample5() [][]int {
	return [][]int{
		{0, 3, 5, X, 1},
		{3, 0, 4, X, 5},
		{5, 4, 0, X, 6},
		{X, X, X, 0, 7},
		{1, 5, 6, 7, 0},
	}
}

func TestNew_InvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		weights [][]int
		k       int
	}{
		{"empty", nil, 1},
		{"k zero", [][]int{{0}}, 0},
		{"k above n", [][]int{{0, 1}, {1, 0}}, 3},
		{"ragged", [][]int{{0, 1}, {1}}, 1},
		{"asymmetric", [][]int{{0, 1}, {2, 0}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := wgraph.New(tc.weights, tc.k)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, wgraph.ErrInvalidInput)
		})
	}
}

func TestNew_Queries(t *testing.T) {
	g, err := wgraph.New(sample5(), 4)
	require.NoError(t, err)

	assert.Equal(t, 5, g.N())
	assert.Equal(t, 4, g.K())
	assert.Equal(t, 7, g.EdgeCount())
	assert.Equal(t, 10, g.PairCount())

	assert.Equal(t, 3, g.Weight(0, 1))
	assert.Equal(t, 3, g.Weight(1, 0))
	assert.Equal(t, 0, g.Weight(2, 2))
	assert.Equal(t, X, g.Weight(0, 3))
	assert.Equal(t, X, g.Weight(-1, 3))
	assert.Equal(t, X, g.Weight(0, 5))

	assert.True(t, g.AreConnected(3, 3))
	assert.True(t, g.AreConnected(3, 4))
	assert.False(t, g.AreConnected(3, 0))
	assert.False(t, g.AreConnected(7, 7))

	assert.Equal(t, []int{3, 3, 3, 1, 4}, []int{g.Degree(0), g.Degree(1), g.Degree(2), g.Degree(3), g.Degree(4)})
	assert.Equal(t, []int{0, 1, 2, 3}, g.Neighbors(4))
	assert.Equal(t, 0, g.Degree(9))
	assert.Nil(t, g.Neighbors(9))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g, err := wgraph.New(sample5(), 4)
	require.NoError(t, err)

	nb := g.Neighbors(0)
	nb[0] = 99
	assert.Equal(t, []int{1, 2, 4}, g.Neighbors(0))
}

func TestNew_DoesNotAliasSource(t *testing.T) {
	src := sample5()
	g, err := wgraph.New(src, 4)
	require.NoError(t, err)

	src[0][1], src[1][0] = 100, 100
	assert.Equal(t, 3, g.Weight(0, 1))
}

func TestPairIndex_Bijective(t *testing.T) {
	g, err := wgraph.New(make5x5(), 5)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for u := 0; u < g.N(); u++ {
		for v := u + 1; v < g.N(); v++ {
			idx := g.PairIndex(u, v)
			assert.Equal(t, idx, g.PairIndex(v, u))
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, g.PairCount())
			assert.False(t, seen[idx], "slot %d reused", idx)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, g.PairCount())
}

func make5x5() [][]int {
	w := make([][]int, 5)
	for i := range w {
		w[i] = make([]int, 5)
	}

	return w
}

func TestFromUpperTriangular(t *testing.T) {
	rows := [][]int{
		{3, 5, X, 1},
		{4, X, 5},
		{X, 6},
		{7},
	}
	tri, err := wgraph.FromUpperTriangular(rows, 5, 4)
	require.NoError(t, err)
	dense, err := wgraph.New(sample5(), 4)
	require.NoError(t, err)

	for u := 0; u < 5; u++ {
		for v := 0; v < 5; v++ {
			assert.Equal(t, dense.Weight(u, v), tri.Weight(u, v), "(%d,%d)", u, v)
		}
	}
}

func TestFromUpperTriangular_Invalid(t *testing.T) {
	_, err := wgraph.FromUpperTriangular([][]int{{1, 2}}, 3, 2)
	assert.ErrorIs(t, err, wgraph.ErrInvalidInput)

	_, err = wgraph.FromUpperTriangular([][]int{{1, 2}, {3, 4}}, 3, 2)
	assert.ErrorIs(t, err, wgraph.ErrInvalidInput)

	g, err := wgraph.FromUpperTriangular(nil, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.N())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestFromSymDense(t *testing.T) {
	m := mat.NewSymDense(3, []float64{
		0, 2, X,
		2, 0, 4,
		X, 4, 0,
	})
	g, err := wgraph.FromSymDense(m, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Weight(0, 1))
	assert.Equal(t, 4, g.Weight(2, 1))
	assert.False(t, g.AreConnected(0, 2))

	frac := mat.NewSymDense(2, []float64{0, 1.5, 1.5, 0})
	_, err = wgraph.FromSymDense(frac, 1)
	assert.ErrorIs(t, err, wgraph.ErrInvalidInput)

	_, err = wgraph.FromSymDense(nil, 1)
	assert.ErrorIs(t, err, wgraph.ErrInvalidInput)
}

func TestCliqueHelpers(t *testing.T) {
	g, err := wgraph.New(sample5(), 4)
	require.NoError(t, err)

	assert.True(t, g.IsClique([]int{0, 1, 2, 4}))
	assert.False(t, g.IsClique([]int{0, 3}))
	assert.True(t, g.IsClique(nil))
	assert.Equal(t, int64(3+5+1+4+5+6), g.CliqueWeight([]int{0, 1, 2, 4}))
	assert.Equal(t, int64(0), g.CliqueWeight([]int{3}))

	assert.True(t, g.CanJoin([]int{0, 1}, 2))
	assert.False(t, g.CanJoin([]int{0, 1}, 3))
	assert.False(t, g.CanJoin([]int{0, 1}, 1))
	assert.False(t, g.CanJoin([]int{0, 1, 2, 4}, 3))
}

func TestEdges_AscendingAndStoppable(t *testing.T) {
	g, err := wgraph.New(sample5(), 4)
	require.NoError(t, err)

	var got [][2]int
	g.Edges(func(u, v, _ int) bool {
		got = append(got, [2]int{u, v})
		return true
	})
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 4}, {1, 2}, {1, 4}, {2, 4}, {3, 4}}, got)

	count := 0
	g.Edges(func(_, _, _ int) bool {
		count++
		return count < 2
	})
	assert.Equal(t, 2, count)
}
