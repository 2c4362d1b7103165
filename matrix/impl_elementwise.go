// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opHadamard = "Hadamard"
	opMatVec   = "MatVec"
)

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// It is not the matrix product; use Mul for A·B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAllocation, ErrOverflow (checked).
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	o := resultOptions(a, opts)
	rows, cols := a.Rows(), a.Cols()
	res, err := newDense(o, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	checked := o.overflow == OverflowChecked

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				p, ok := mulPolicy(da.data[idx], db.data[idx], checked)
				if !ok {
					res.Release()
					return nil, overflowErrorf(opHadamard, idx/cols, idx%cols)
				}
				res.data[idx] = p
			}
			return res, nil
		}
	}

	var av, bv int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				res.Release()
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				res.Release()
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			p, ok := mulPolicy(av, bv, checked)
			if !ok {
				res.Release()
				return nil, overflowErrorf(opHadamard, i, j)
			}
			res.data[i*cols+j] = p
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x with len(x) == m.Cols().
// The overflow policy is taken from m (when *Dense) and opts; the allocator is
// not used since y is a plain slice.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOverflow (checked).
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []int, opts ...Option) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	checked := resultOptions(m, opts).overflow == OverflowChecked
	rows, cols := m.Rows(), m.Cols()
	y := make([]int, rows)
	d, isDense := m.(*Dense)
	var (
		mv  int
		err error
	)
	for i := 0; i < rows; i++ {
		acc := 0
		for j := 0; j < cols; j++ {
			if x[j] == 0 {
				continue
			}
			if isDense {
				mv = d.data[i*cols+j]
			} else if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			p, ok := mulPolicy(mv, x[j], checked)
			if ok {
				acc, ok = addPolicy(acc, p, checked)
			}
			if !ok {
				return nil, overflowErrorf(opMatVec, i, j)
			}
		}
		y[i] = acc
	}

	return y, nil
}

// mulPolicy multiplies under the wrap or checked policy.
func mulPolicy(a, b int, checked bool) (int, bool) {
	if !checked {
		return a * b, true
	}

	return checkedMul(a, b)
}

// addPolicy adds under the wrap or checked policy.
func addPolicy(a, b int, checked bool) (int, bool) {
	if !checked {
		return a + b, true
	}

	return checkedAdd(a, b)
}
