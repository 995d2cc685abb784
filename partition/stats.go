package partition

import "github.com/katalvlaran/cliquepart/wgraph"

// Stats reports the quality of a partition.
type Stats struct {
	// Cliques is the number of cliques.
	Cliques int
	// Largest is the size of the biggest clique.
	Largest int
	// Singletons counts cliques of size 1.
	Singletons int
	// TotalWeight is the sum of within-clique edge weights.
	TotalWeight int64
	// AverageWeight is TotalWeight divided by the vertex count.
	AverageWeight float64
	// CoveredEdges counts present edges whose endpoints share a clique.
	CoveredEdges int
	// UncoveredEdges counts the remaining present edges.
	UncoveredEdges int
}

// Evaluate computes Stats for cliques over g. It does not validate; ids outside
// [0,n) are ignored for coverage and contribute no weight.
// Complexity: O(n + E + Σ s²).
func Evaluate(g *wgraph.Graph, cliques [][]int) Stats {
	var s Stats
	if g == nil {
		return s
	}

	s.Cliques = len(cliques)
	for _, cl := range cliques {
		if len(cl) > s.Largest {
			s.Largest = len(cl)
		}
		if len(cl) == 1 {
			s.Singletons++
		}
		s.TotalWeight += g.CliqueWeight(cl)
	}
	s.AverageWeight = float64(s.TotalWeight) / float64(g.N())
	s.UncoveredEdges = countUncovered(g, ownerIndex(g.N(), cliques))
	s.CoveredEdges = g.EdgeCount() - s.UncoveredEdges

	return s
}

// Sizes returns len(cl) for every clique, in order.
func Sizes(cliques [][]int) []int {
	sizes := make([]int, len(cliques))
	for i, cl := range cliques {
		sizes[i] = len(cl)
	}

	return sizes
}
