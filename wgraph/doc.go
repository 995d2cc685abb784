// Package wgraph holds the immutable, dense, edge-weighted undirected graph
// consumed by the clique partition pipeline.
//
// What:
//
//   - Graph owns a contiguous upper-triangle buffer of n(n-1)/2 integer weights,
//     indexed by the canonical pair (min(u,v), max(u,v)).
//   - A reserved weight, NoEdge, marks "no edge between u and v".
//   - Degrees and sorted adjacency lists are derived once at construction.
//
// Constructors:
//
//   - New:                 dense n×n matrix, checked for symmetry.
//   - FromUpperTriangular: row i carries the n-1-i weights of (i, i+1..n-1).
//   - FromSymDense:        gonum *mat.SymDense with integral entries.
//
// Complexity:
//
//   - Construction: O(n²) time, O(n² / 2 + n + E) memory.
//   - Weight, AreConnected, Degree: O(1).
//   - Neighbors: O(deg(v)) (returns a copy).
//   - IsClique, CliqueWeight: O(s²) for a member list of size s.
//
// Errors:
//
//   - ErrInvalidInput: n ≤ 0, k ≤ 0, k > n, wrong dimensions, nil source or
//     asymmetric weights. Context is attached with %w; match with errors.Is.
package wgraph
