// Package builder generates weighted clique-partition instances.
//
// Constructors are composable closures that write edges into a dense n×n
// Canvas initialized to wgraph.NoEdge. BuildMatrix runs them in order and
// returns the symmetric matrix; BuildGraph additionally wraps it in a
// *wgraph.Graph with clique bound k.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:       mutates builderConfig before construction.
//     – WithSeed / WithRand: RNG for stochastic constructors and weights.
//     – WithWeightFn:        per-edge weight policy.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed value.
//     – UniformWeightFn:     uniform integer in [lo,hi].
//     – NormalWeightFn:      rounded Gaussian.
//   - Topologies over explicit vertex lists:
//     – Complete, Star, Path, Cycle, Wheel, CompleteBipartite, Grid, Edge.
//   - Stochastic topologies:
//     – RandomSparse:        Erdős–Rényi G(n,p) over all pairs.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order produce the
//     same matrix.
//   - Later constructors overwrite the weight of pairs written earlier.
//   - No panics at runtime; constructors return sentinel errors wrapped with
//     the constructor name. Option constructors panic on nil arguments.
//   - A generated weight never equals wgraph.NoEdge (ErrInvalidWeight).
package builder
