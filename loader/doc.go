// Package loader reads and writes clique-partition instances.
//
// An Instance carries the vertex count n, the clique bound k and a dense
// symmetric weight matrix using wgraph.NoEdge for absent edges. Four file
// formats are understood:
//
//	triangular  .tri .txt   "n k" header, then n-1 rows; row i holds the
//	                        n-1-i weights of (i, i+1), …, (i, n-1).
//	dense       .dense .mat "n k" header, then n rows of n weights.
//	YAML        .yaml .yml  {n, k, no_edge, edges: [{u, v, w}]}
//	HCL         .hcl        n = …, k = …, edge { u = … v = … w = … } blocks;
//	                        the identifier no_edge is predefined.
//
// In the text formats '#' starts a comment and blank lines are ignored.
// Every parse error wraps ErrMalformed.
package loader
