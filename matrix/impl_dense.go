// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make allocation atomic: one buffer per matrix, obtained from an Allocator.
//   - Make release explicit and idempotent.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxNew   = "NewDense"
	ctxFrom  = "NewDenseFrom"
	ctxClone = "Clone"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - alloc is the Allocator that produced data and receives it back on Release.
//   - overflow is the arithmetic policy inherited by results computed from it.
//
// The zero value is a valid released (0×0) matrix.
type Dense struct {
	r, c     int
	data     []int
	alloc    Allocator
	overflow OverflowPolicy
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense allocates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: compute rows*cols with overflow detection.
//   - Stage 3: obtain a single buffer from the configured Allocator.
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 are legal empty matrices.
//   - Allocation is all-or-nothing: on error no matrix is returned and no
//     buffer remains live in the allocator.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//   - ErrAllocation (size overflow, allocator limit or allocator failure).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	return newDense(gatherOptions(opts...), rows, cols)
}

// newDense is the single construction path shared by every public builder
// and every arithmetic kernel.
func newDense(o Options, rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("%d×%d: %w", rows, cols, ErrInvalidDimensions))
	}
	buf, err := allocBuffer(o.alloc, rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Dense{
		r:        rows,
		c:        cols,
		data:     buf,
		alloc:    o.alloc,
		overflow: o.overflow,
	}, nil
}

// NewDenseFrom builds a matrix from row literals, copying the values.
// All rows must have the same length; a ragged input yields ErrDimensionMismatch.
// An empty (or nil) input yields a 0×0 matrix.
// Complexity: O(r*c).
func NewDenseFrom(rows [][]int, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxFrom, fmt.Errorf("row %d has %d columns, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch))
		}
	}
	m, err := newDense(gatherOptions(opts...), r, c)
	if err != nil {
		return nil, matrixErrorf(ctxFrom, err)
	}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix holds no elements (r==0 or c==0).
func (m *Dense) IsEmpty() bool { return m == nil || m.r == 0 || m.c == 0 }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// The returned error is wrapped with the caller's method tag and coordinates.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col), or ErrOutOfRange.
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is not a valid row index.
func (m *Dense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRow returns row i of the backing buffer without copying.
// Writes through the slice mutate the matrix; it panics on an invalid index
// like any slice expression. Intended for tight loops in codecs.
func (m *Dense) RawRow(i int) []int {
	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of the Dense matrix allocated from the heap.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, alloc: defaultAllocator, overflow: m.overflow}
}

// CloneWith deep-copies m into a buffer obtained from the configured Allocator.
// Errors: ErrAllocation.
func (m *Dense) CloneWith(opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	out, err := newDense(o, m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(ctxClone, err)
	}
	copy(out.data, m.data)

	return out, nil
}

// Release hands the buffer back to its Allocator and resets m to the empty
// 0×0 state. It is idempotent, a no-op on an already empty matrix, and safe
// on a nil receiver.
// Complexity: O(1) plus whatever Allocator.Free costs.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	if m.data != nil && m.alloc != nil {
		m.alloc.Free(m.data)
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// String implements fmt.Stringer for debugging: one "[a, b, c]" line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.Itoa(m.data[base+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
