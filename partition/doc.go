// Package partition splits the vertices of a wgraph.Graph into disjoint
// cliques of size at most k, heuristically maximizing the total within-clique
// weight and the number of covered edges.
//
// What:
//
//   - Build:    degree-ordered greedy construction. Each clique is seeded by the
//     highest-degree unassigned vertex and grown one vertex at a time by the
//     candidate with the highest score
//     score(v) = Σ w(v,m) + CoverageBonus × |{m : (v,m) not yet covered}|.
//   - Repair:   bounded sweeps (MaxRepairRounds, default 10) over uncovered
//     edges (i,j) that relocate i into j's clique when it has room and i is
//     adjacent to all of its members.
//   - Validate: read-only check of the hard invariants (size in [1,k], every
//     vertex exactly once, every clique complete).
//   - Solve / ComputePartition: Build → Repair → Validate → Evaluate.
//
// Why:
//
//   - Maximum-weight clique partitioning is NP-hard. The pipeline is a
//     polynomial heuristic: it always returns a valid partition, but not
//     necessarily an optimal one.
//
// Determinism:
//
//   - Vertices are seeded by descending degree, ties by ascending index.
//   - Candidates are scanned in ascending index order; on equal scores the
//     first one scanned wins. WithWorkers keeps this rule exactly.
//
// Complexity:
//
//   - Build:  O(n³) worst case (seed loop × growth × candidate scan × k).
//   - Repair: O(rounds × (n² + E·k)).
//   - Validate, Evaluate: O(n + Σ s²) over clique sizes s.
//
// Errors:
//
//   - ErrInvalidInput:        malformed n, k or weights; returned immediately.
//   - ErrOptionViolation:     invalid functional option.
//   - ErrConstraintViolation: validator finding. Solve reports it in
//     Result.Violation and still returns the partition.
//
// Uncovered edges left after repair are a quality metric (Stats.UncoveredEdges),
// never an error.
package partition
