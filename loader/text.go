// SPDX-License-Identifier: MIT
// Package: cliquepart/loader
//
// text.go - whitespace-separated integer formats (triangular and dense).
//
// Contract:
//   • The first significant line is the header "n k".
//   • Triangular: exactly n-1 further lines, line i holding n-1-i integers.
//   • Dense: exactly n further lines of n integers, symmetric off the
//     diagonal. The diagonal is normalized to 0.
//   • '#' starts a comment; blank lines are skipped; trailing content fails.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquepart/wgraph"
)

const (
	methodTriangular = "ParseTriangular"
	methodDense      = "ParseDense"
)

// lineReader yields significant lines with their 1-based line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &lineReader{sc: sc}
}

// next returns the integer fields of the next significant line, or io.EOF.
func (lr *lineReader) next() ([]int, error) {
	for lr.sc.Scan() {
		lr.line++
		text := lr.sc.Text()
		if p := strings.IndexByte(text, '#'); p >= 0 {
			text = text[:p]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		vals := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: field %d %q is not an integer: %w", lr.line, i+1, f, ErrMalformed)
			}
			vals[i] = v
		}

		return vals, nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

// header reads "n k".
func (lr *lineReader) header(method string) (int, int, error) {
	vals, err := lr.next()
	if err == io.EOF {
		return 0, 0, fmt.Errorf("%s: missing header: %w", method, ErrMalformed)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", method, err)
	}
	if len(vals) != 2 {
		return 0, 0, fmt.Errorf("%s: line %d: header needs 2 fields, got %d: %w", method, lr.line, len(vals), ErrMalformed)
	}
	if err = checkHeader(method, vals[0], vals[1]); err != nil {
		return 0, 0, err
	}

	return vals[0], vals[1], nil
}

// row reads one line and checks its width.
func (lr *lineReader) row(method string, idx, want int) ([]int, error) {
	vals, err := lr.next()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: missing row %d: %w", method, idx, ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if len(vals) != want {
		return nil, fmt.Errorf("%s: line %d: row %d has %d entries, want %d: %w",
			method, lr.line, idx, len(vals), want, ErrMalformed)
	}

	return vals, nil
}

// end fails when significant content follows the last row.
func (lr *lineReader) end(method string) error {
	_, err := lr.next()
	switch {
	case err == io.EOF:
		return nil
	case err != nil:
		return fmt.Errorf("%s: %w", method, err)
	default:
		return fmt.Errorf("%s: line %d: unexpected trailing content: %w", method, lr.line, ErrMalformed)
	}
}

// ParseTriangular reads the upper-triangular text format.
// Complexity: O(n²).
func ParseTriangular(r io.Reader) (*Instance, error) {
	lr := newLineReader(r)
	n, k, err := lr.header(methodTriangular)
	if err != nil {
		return nil, err
	}

	w := emptyWeights(n)
	var (
		i, c int
		vals []int
	)
	for i = 0; i < n-1; i++ {
		if vals, err = lr.row(methodTriangular, i, n-1-i); err != nil {
			return nil, err
		}
		for c = 0; c < n-1-i; c++ {
			w[i][i+1+c] = vals[c]
			w[i+1+c][i] = vals[c]
		}
	}
	if err = lr.end(methodTriangular); err != nil {
		return nil, err
	}

	return &Instance{N: n, K: k, Weights: w}, nil
}

// ParseDense reads the dense text format.
// Complexity: O(n²).
func ParseDense(r io.Reader) (*Instance, error) {
	lr := newLineReader(r)
	n, k, err := lr.header(methodDense)
	if err != nil {
		return nil, err
	}

	w := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		if w[i], err = lr.row(methodDense, i, n); err != nil {
			return nil, err
		}
		w[i][i] = 0
	}
	if err = lr.end(methodDense); err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w[i][j] != w[j][i] {
				return nil, fmt.Errorf("%s: weight(%d,%d)=%d but weight(%d,%d)=%d: %w",
					methodDense, i, j, w[i][j], j, i, w[j][i], ErrMalformed)
			}
		}
	}

	return &Instance{N: n, K: k, Weights: w}, nil
}

// WriteTriangular encodes inst in the triangular text format.
func WriteTriangular(out io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "# n k, then the upper triangle row by row; %d = no edge\n", wgraph.NoEdge)
	fmt.Fprintf(bw, "%d %d\n", inst.N, inst.K)
	var i, j int
	for i = 0; i < inst.N-1; i++ {
		for j = i + 1; j < inst.N; j++ {
			if j > i+1 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(inst.Weights[i][j]))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
