// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every fallible operation returns one of these (possibly wrapped
// with call-site context) and tests MUST check them via errors.Is.
// No operation panics on user-triggered conditions; panics are reserved for
// nonsensical option arguments (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites attach context with fmt.Errorf("Op: %w", ErrX) (see matrixErrorf);
// callers still branch with errors.Is.
//
// ERROR CLASSES:
//   allocation -> ErrAllocation
//   shape      -> ErrInvalidDimensions, ErrDimensionMismatch, ErrNonSquare
//   range      -> ErrInvalidRange
//   misuse     -> ErrNilMatrix, ErrOutOfRange
//   arithmetic -> ErrOverflow (checked overflow policy only)

var (
	// ErrAllocation is returned when backing storage for a matrix cannot be
	// obtained: rows*cols overflows int, exceeds the allocator limit, or the
	// allocator itself fails. No partially built matrix is ever returned with it.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero rows or columns are legal and produce an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidRange indicates an invalid parameter interval, e.g. min > max
	// for random initialization.
	ErrInvalidRange = errors.New("matrix: invalid value range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOverflow is reported by arithmetic kernels running under
	// OverflowChecked when an intermediate or final value does not fit in int.
	ErrOverflow = errors.New("matrix: integer overflow")
)

// ErrNonSquare signals that a square matrix was required but the input wasn't.
// It wraps ErrDimensionMismatch so both sentinels match with errors.Is.
var ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
