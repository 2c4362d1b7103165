// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the store, initializers and kernels.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of int values.
// *Dense is the only implementation in this module; kernels take a fast path
// on *Dense and fall back to At/Set for anything else.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v int) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix never shares storage with the original.
	Clone() Matrix
}

// OverflowPolicy selects how arithmetic kernels treat int overflow.
type OverflowPolicy uint8

const (
	// OverflowWrap uses two's-complement wrap-around (Go's defined behaviour
	// for signed integer overflow). Results are exact modulo 2^bits.
	OverflowWrap OverflowPolicy = iota

	// OverflowChecked fails the whole operation with ErrOverflow as soon as a
	// product or an accumulation leaves the int range. No result is returned.
	OverflowChecked
)

// String implements fmt.Stringer.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowWrap:
		return "wrap"
	case OverflowChecked:
		return "checked"
	default:
		return "unknown"
	}
}
