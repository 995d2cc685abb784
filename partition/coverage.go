package partition

import "github.com/katalvlaran/cliquepart/wgraph"

// coverage is the symmetric "edge has both endpoints in one clique" relation,
// stored as one flag per unordered pair (wgraph.PairIndex).
// It lives only for the duration of a Build/Repair run.
type coverage struct {
	g    *wgraph.Graph
	bits []bool
}

func newCoverage(g *wgraph.Graph) *coverage {
	return &coverage{g: g, bits: make([]bool, g.PairCount())}
}

// coverageOf derives the relation from a partition: every present edge
// inside a clique is covered. Out-of-range ids are ignored.
func coverageOf(g *wgraph.Graph, cliques [][]int) *coverage {
	c := newCoverage(g)
	for _, cl := range cliques {
		c.markClique(cl)
	}

	return c
}

// present reports whether (u,v) is a real edge between two distinct in-range vertices.
func (c *coverage) present(u, v int) bool {
	return u != v && c.g.Weight(u, v) != wgraph.NoEdge
}

func (c *coverage) covered(u, v int) bool {
	if !c.present(u, v) {
		return false
	}

	return c.bits[c.g.PairIndex(u, v)]
}

// mark flags (u,v) as covered; non-edges are ignored.
func (c *coverage) mark(u, v int) {
	if c.present(u, v) {
		c.bits[c.g.PairIndex(u, v)] = true
	}
}

// markClique flags every present edge among members.
func (c *coverage) markClique(members []int) {
	var a, b int
	for a = 0; a < len(members); a++ {
		for b = a + 1; b < len(members); b++ {
			c.mark(members[a], members[b])
		}
	}
}
