// SPDX-License-Identifier: MIT
// Package: cliquepart/wgraph
//
// errors.go - sentinel errors for the wgraph package.
//
// Error policy:
//   - Only package-level sentinels are exposed.
//   - Constructors attach context with fmt.Errorf("%s: ...: %w", method, ErrX).
//   - Callers branch with errors.Is, never on message text.

package wgraph

import "errors"

// ErrInvalidInput indicates that n, k or the weight source is malformed:
// non-positive n or k, k > n, wrong row lengths, nil source or asymmetric values.
var ErrInvalidInput = errors.New("wgraph: invalid input")
