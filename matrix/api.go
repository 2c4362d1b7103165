// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide intention-revealing entry points named after the classic
//     integer-matrix vocabulary (sum, scalar product, product, transpose).
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders, allocation or overflow policy of the kernels.

package matrix

// Allocate returns a zeroed rows×cols matrix. Alias of NewDense.
func Allocate(rows, cols int, opts ...Option) (*Dense, error) { return NewDense(rows, cols, opts...) }

// Release resets m to the empty state; see (*Dense).Release. Nil-safe.
func Release(m *Dense) { m.Release() }

// Sum returns a + b. Alias of Add.
func Sum(a, b Matrix, opts ...Option) (*Dense, error) { return Add(a, b, opts...) }

// Diff returns a - b. Alias of Sub.
func Diff(a, b Matrix, opts ...Option) (*Dense, error) { return Sub(a, b, opts...) }

// ScalarProduct returns k·m. Alias of Scale.
func ScalarProduct(m Matrix, k int, opts ...Option) (*Dense, error) { return Scale(m, k, opts...) }

// Product returns a × b. Alias of Mul.
func Product(a, b Matrix, opts ...Option) (*Dense, error) { return Mul(a, b, opts...) }

// T returns mᵀ. Alias of Transpose.
func T(m Matrix, opts ...Option) (*Dense, error) { return Transpose(m, opts...) }

// IdentityLike returns I with dimension Rows(m); m must be square.
func IdentityLike(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows(), opts...)
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols(), opts...)
}

// CloneMatrix returns a structural clone of m. Thin wrapper over Matrix.Clone.
func CloneMatrix(m Matrix) Matrix {
	if isNil(m) {
		return nil
	}

	return m.Clone()
}
