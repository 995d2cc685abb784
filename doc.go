// Package cliquepart partitions the vertices of an edge-weighted undirected
// graph into disjoint cliques of bounded size.
//
// What is a clique partition?
//
//	Given n vertices, symmetric integer weights (wgraph.NoEdge marks a missing
//	edge) and a bound k, every vertex is placed in exactly one group, every
//	group has at most k members, and every two members of a group are joined
//	by an edge. Among such partitions we prefer heavy groups that cover many
//	edges. Finding the best one is NP-hard; cliquepart runs a fast greedy
//	heuristic followed by a bounded local repair.
//
// Pipeline:
//
//	wgraph.New ─► partition.Build ─► partition.Repair ─► partition.Validate
//	                 (greedy seeds)     (relocations)       (diagnostics)
//
// Packages:
//
//	wgraph/     - immutable weighted graph: weights, degrees, adjacency
//	partition/  - builder, repairer, validator, statistics, ComputePartition
//	builder/    - deterministic and seeded instance generators
//	converters/ - gonum interop (graph/simple, mat.SymDense) and modularity
//	loader/     - triangular, dense, YAML and HCL instance files
//	report/     - text, JSON and YAML run reports
//	config/     - viper + validator runtime configuration
//	logging/    - zap logger construction
//	metrics/    - Prometheus collector fed by pipeline hooks
//	tracing/    - OpenTelemetry spans around run phases
//
// Quick ASCII example (k = 3):
//
//	  0───1
//	   ╲ ╱              ┌─────────┐ ┌──────┐
//	    2───3───4  ──►  │ 0  1  2 │ │ 3  4 │
//	                    └─────────┘ └──────┘
//
// The command-line tool lives in cmd/cliquepart:
//
//	go install github.com/katalvlaran/cliquepart/cmd/cliquepart@latest
package cliquepart
