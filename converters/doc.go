// Package converters provides two-way adapters between wgraph.Graph and
// gonum representations:
//   - gonum/graph/simple.WeightedUndirectedGraph (ToGonum / FromGonum)
//   - gonum/mat.SymDense (ToSymDense; the reverse lives in wgraph.FromSymDense)
//
// It also scores a clique partition with gonum's modularity Q
// (graph/community), which the report prints next to the total weight.
package converters
