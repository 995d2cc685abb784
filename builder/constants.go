// Package builder defines shared constants used by the instance constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildMatrix is the canonical name for BuildMatrix.
	MethodBuildMatrix = "BuildMatrix"
	// MethodBuildGraph is the canonical name for BuildGraph.
	MethodBuildGraph = "BuildGraph"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodEdge is the canonical name for the Edge constructor.
	MethodEdge = "Edge"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCompleteNodes: a single vertex is a trivial clique.
const MinCompleteNodes = 1

// MinStarLeaves: a star needs at least one leaf.
const MinStarLeaves = 1

// MinPathNodes: a path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinCycleNodes: a ring needs 3 nodes without loops or multi-edges.
const MinCycleNodes = 3

// MinWheelRim: the rim of a wheel is a cycle of at least 3 nodes.
const MinWheelRim = 3

// MinGridDim is the smallest allowed dimension (rows or cols) for Grid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse p.
const MaxProbability = 1.0
