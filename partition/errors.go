// SPDX-License-Identifier: MIT
// Package: cliquepart/partition
//
// errors.go - sentinel errors for the partition package.
//
// Every validator finding wraps ErrConstraintViolation and exactly one of the
// specific kinds below, so callers may match either level with errors.Is.

package partition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cliquepart/wgraph"
)

// ErrInvalidInput is the wgraph sentinel, re-exported so callers of
// ComputePartition need not import wgraph to match it.
var ErrInvalidInput = wgraph.ErrInvalidInput

// ErrOptionViolation is returned when a functional Option is out of range.
var ErrOptionViolation = errors.New("partition: invalid option supplied")

// ErrConstraintViolation marks a partition that breaks a hard invariant.
var ErrConstraintViolation = errors.New("partition: constraint violation")

// Specific validator findings.
var (
	// ErrCliqueSize: a clique has fewer than 1 or more than k members.
	ErrCliqueSize = fmt.Errorf("%w: clique size out of range", ErrConstraintViolation)

	// ErrVertexOutOfRange: a clique holds an id outside [0,n).
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex out of range", ErrConstraintViolation)

	// ErrDuplicateVertex: a vertex appears more than once.
	ErrDuplicateVertex = fmt.Errorf("%w: vertex assigned more than once", ErrConstraintViolation)

	// ErrIncompleteClique: two members of a clique are not connected.
	ErrIncompleteClique = fmt.Errorf("%w: clique is not complete", ErrConstraintViolation)

	// ErrUnassignedVertex: a vertex belongs to no clique.
	ErrUnassignedVertex = fmt.Errorf("%w: vertex not assigned", ErrConstraintViolation)
)
