// SPDX-License-Identifier: MIT
// Package codec: sentinel error set.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Causes (os, bufio, compression errors) stay reachable through %w.
//   • Shape and allocation failures surface the matrix package sentinels
//     (matrix.ErrDimensionMismatch, matrix.ErrAllocation) unchanged.

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrIO indicates that the source or sink could not be opened, read,
	// written, mapped or (de)compressed.
	ErrIO = errors.New("codec: i/o failure")

	// ErrParse indicates a malformed numeric token under WithStrictNumbers.
	ErrParse = errors.New("codec: malformed integer")
)

// ioErrorf wraps cause under ErrIO with an operation tag.
func ioErrorf(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, cause)
}

// codecErrorf wraps err with an operation tag, preserving it via %w.
func codecErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
