// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on any Matrix implementation: equality,
// element-wise addition and subtraction, scalar scaling, transpose and the
// standard matrix product. All functions validate fail-fast and return clear
// errors on dimension mismatches.
//
// Contract shared by every kernel in this file:
//   - Operands are never mutated.
//   - The result is a freshly allocated *Dense that shares nothing with the operands.
//   - On error the result is nil and any buffer obtained for it has been released.
//   - Results inherit allocator and overflow policy from the left operand when it
//     is a *Dense; explicit Options override the inherited values.
//
// Overflow:
//   - OverflowWrap (default): two's-complement wrap-around, exact modulo 2^bits.
//   - OverflowChecked: the first overflowing product or sum aborts with ErrOverflow.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opEqual     = "Equal"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// resultOptions resolves the options used to allocate a kernel result.
func resultOptions(lhs Matrix, opts []Option) Options {
	o := defaultOptions()
	if d, ok := lhs.(*Dense); ok && d != nil {
		if d.alloc != nil {
			o.alloc = d.alloc
		}
		o.overflow = d.overflow
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// checkedAdd returns a+b or ok=false when the sum leaves the int range.
func checkedAdd(a, b int) (int, bool) {
	s := a + b
	// Overflow iff both operands share a sign that the sum does not.
	return s, (a^s)&(b^s) >= 0
}

// checkedMul returns a*b or ok=false when the product leaves the int range.
func checkedMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	p := a * b

	return p, p/b == a
}

// overflowErrorf reports an overflow at (i,j) under op.
func overflowErrorf(op string, i, j int) error {
	return matrixErrorf(op, fmt.Errorf("element (%d,%d): %w", i, j, ErrOverflow))
}

// Equal reports whether a and b have the same shape and identical elements.
// Nil operands are never equal. No allocation.
// Complexity: O(r*c) worst case; O(1) on shape mismatch.
func Equal(a, b Matrix) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	rows, cols := a.Rows(), a.Cols()
	if rows != b.Rows() || cols != b.Cols() {
		return false
	}

	// Fast path: compare flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < rows*cols; idx++ {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}
			return true
		}
	}

	// Fallback: i→j with At; an At failure means the operands disagree.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add/Sub for validation, allocation and the fast path.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrAllocation (result allocation).
//   - ErrOverflow (checked policy only).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func addSub(a, b Matrix, sign int, opTag string, opts []Option) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	o := resultOptions(a, opts)
	rows, cols := a.Rows(), a.Cols()
	res, err := newDense(o, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	checked := o.overflow == OverflowChecked

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				if !checked {
					res.data[idx] = da.data[idx] + sign*db.data[idx]
					continue
				}
				v, ok := combineChecked(da.data[idx], db.data[idx], sign)
				if !ok {
					res.Release()
					return nil, overflowErrorf(opTag, idx/cols, idx%cols)
				}
				res.data[idx] = v
			}
			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				res.Release()
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				res.Release()
				return nil, matrixErrorf(opTag, err)
			}
			v := av + sign*bv
			if checked {
				var ok bool
				if v, ok = combineChecked(av, bv, sign); !ok {
					res.Release()
					return nil, overflowErrorf(opTag, i, j)
				}
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// combineChecked returns a + sign*b with overflow detection.
func combineChecked(a, b, sign int) (int, bool) {
	if sign > 0 {
		return checkedAdd(a, b)
	}
	// a - b: negating MinInt overflows on its own.
	if b == math.MinInt {
		if a >= 0 {
			return 0, false
		}
		return a - b, true
	}

	return checkedAdd(a, -b)
}

// Add computes the element-wise sum C = A + B into a fresh *Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAllocation, ErrOverflow (checked).
// Complexity: O(r*c).
func Add(a, b Matrix, opts ...Option) (*Dense, error) { return addSub(a, b, +1, opAdd, opts) }

// Sub computes the element-wise difference C = A - B into a fresh *Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAllocation, ErrOverflow (checked).
// Complexity: O(r*c).
func Sub(a, b Matrix, opts ...Option) (*Dense, error) { return addSub(a, b, -1, opSub, opts) }

// Scale returns a new matrix whose elements are k * m[i,j].
//
// Behavior highlights:
//   - Under OverflowWrap each product wraps modulo 2^bits.
//   - Under OverflowChecked the first overflowing product aborts with ErrOverflow.
//   - k = 0 yields an explicit zero matrix with the same shape.
//
// Errors: ErrNilMatrix, ErrAllocation, ErrOverflow (checked).
// Complexity: O(r*c).
func Scale(m Matrix, k int, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	o := resultOptions(m, opts)
	rows, cols := m.Rows(), m.Cols()
	res, err := newDense(o, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	checked := o.overflow == OverflowChecked

	// Fast path for Dense → Dense.
	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			if !checked {
				res.data[idx] = v * k
				continue
			}
			p, ok := checkedMul(v, k)
			if !ok {
				res.Release()
				return nil, overflowErrorf(opScale, idx/cols, idx%cols)
			}
			res.data[idx] = p
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				res.Release()
				return nil, matrixErrorf(opScale, err)
			}
			p := v * k
			if checked {
				var ok bool
				if p, ok = checkedMul(v, k); !ok {
					res.Release()
					return nil, overflowErrorf(opScale, i, j)
				}
			}
			res.data[i*cols+j] = p
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// result has shape (cols, rows) and result[j][i] = m[i][j].
// Errors: ErrNilMatrix, ErrAllocation.
// Complexity: O(r*c).
func Transpose(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDense(resultOptions(m, opts), cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path: data[i*cols + j] → res.data[j*rows + i].
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				res.Release()
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul performs the standard matrix product C = A × B:
// C has shape (a.Rows, b.Cols) and C[i][j] = Σ_k A[i][k]·B[k][j].
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: *Dense operands run i→k→j over row-major strides, skipping zero A[i,k];
//     anything else runs i→j→k through At.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAllocation, ErrOverflow (checked).
// Complexity: Time O(r*n*c), Space O(r*c). No blocking or Strassen-style tricks.
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	o := resultOptions(a, opts)
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDense(o, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if o.overflow == OverflowChecked {
		if err = mulChecked(a, b, res); err != nil {
			res.Release()
			return nil, err
		}
		return res, nil
	}

	// Fast path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < aRows; i++ {
				rowA := i * aCols
				rowR := i * bCols
				for k := 0; k < aCols; k++ {
					av := da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB := k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i-j-k).
	var av, bv int
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			sum := 0
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					res.Release()
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					res.Release()
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// mulChecked fills res with A×B, failing on the first overflowing product or
// partial sum. Loop order is i→j→k so every partial sum is a real prefix of
// the dot product; res is zero on entry.
func mulChecked(a, b Matrix, res *Dense) error {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	fast := okA && okB

	var (
		av, bv int
		err    error
		ok     bool
	)
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			sum := 0
			for k := 0; k < aCols; k++ {
				if fast {
					av, bv = da.data[i*aCols+k], db.data[k*bCols+j]
				} else {
					if av, err = a.At(i, k); err != nil {
						return matrixErrorf(opMul, err)
					}
					if bv, err = b.At(k, j); err != nil {
						return matrixErrorf(opMul, err)
					}
				}
				p, okMul := checkedMul(av, bv)
				if !okMul {
					return overflowErrorf(opMul, i, j)
				}
				if sum, ok = checkedAdd(sum, p); !ok {
					return overflowErrorf(opMul, i, j)
				}
			}
			res.data[i*bCols+j] = sum
		}
	}

	return nil
}
