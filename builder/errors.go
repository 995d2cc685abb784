// SPDX-License-Identifier: MIT
// Package: cliquepart/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Validation order: sizes, then vertices, then probability, then RNG.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, vertex list length,
// rows, cols) is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidVertex indicates a vertex id outside [0,n), a repeated id in a
// constructor's vertex list, or a self-loop request.
var ErrInvalidVertex = errors.New("builder: invalid vertex")

// ErrInvalidWeight indicates that a weight function or Edge call produced
// the NoEdge sentinel value.
var ErrInvalidWeight = errors.New("builder: weight collides with NoEdge")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph/BuildMatrix could not run the
// constructor chain (nil constructor) or could not wrap the result.
var ErrConstructFailed = errors.New("builder: construction failed")
