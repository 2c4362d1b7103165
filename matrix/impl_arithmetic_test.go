// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// --- reference scenario --------------------------------------------------------

func TestArithmetic_ReferenceScenario(t *testing.T) {
	t.Parallel()

	A, B := MustFrom(t, DataA), MustFrom(t, DataB)

	sum, err := matrix.Sum(A, B)
	require.NoError(t, err)
	Compare(t, [][]int{{6, 8}, {10, 12}}, sum)

	prod, err := matrix.Product(A, B)
	require.NoError(t, err)
	Compare(t, [][]int{{19, 22}, {43, 50}}, prod)

	scaled, err := matrix.ScalarProduct(A, 2)
	require.NoError(t, err)
	Compare(t, [][]int{{2, 4}, {6, 8}}, scaled)

	tr, err := matrix.T(A)
	require.NoError(t, err)
	Compare(t, [][]int{{1, 3}, {2, 4}}, tr)

	diff, err := matrix.Diff(B, A)
	require.NoError(t, err)
	Compare(t, [][]int{{4, 4}, {4, 4}}, diff)

	// Operands are untouched.
	Compare(t, DataA, A)
	Compare(t, DataB, B)
}

// --- fast path vs fallback -----------------------------------------------------

func TestArithmetic_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	A := RandDense(t, 4, 5, -50, 50, 11)
	B := RandDense(t, 4, 5, -50, 50, 12)
	C := RandDense(t, 5, 3, -50, 50, 13)

	type kernel func(x, y matrix.Matrix) (*matrix.Dense, error)
	kernels := map[string]struct {
		fn   kernel
		x, y matrix.Matrix
	}{
		"Add": {func(x, y matrix.Matrix) (*matrix.Dense, error) { return matrix.Add(x, y) }, A, B},
		"Sub": {func(x, y matrix.Matrix) (*matrix.Dense, error) { return matrix.Sub(x, y) }, A, B},
		"Mul": {func(x, y matrix.Matrix) (*matrix.Dense, error) { return matrix.Mul(x, y) }, A, C},
		"Scale": {func(x, _ matrix.Matrix) (*matrix.Dense, error) { return matrix.Scale(x, -3) }, A, nil},
		"Transpose": {func(x, _ matrix.Matrix) (*matrix.Dense, error) { return matrix.Transpose(x) }, A, nil},
	}
	for name, k := range kernels {
		k := k
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fast, err := k.fn(k.x, k.y)
			require.NoError(t, err)

			var y matrix.Matrix
			if k.y != nil {
				y = hide{k.y}
			}
			slow, err := k.fn(hide{k.x}, y)
			require.NoError(t, err)
			require.True(t, matrix.Equal(fast, slow), "fast=%v slow=%v", fast, slow)
			require.True(t, matrix.Equal(hide{fast}, hide{slow}))
		})
	}
}

// --- validation ----------------------------------------------------------------

func TestArithmetic_ShapeErrors(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 3)
	B := MustDense(t, 3, 2)

	_, err := matrix.Add(A, B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(A, B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(A, A)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	got, err := matrix.Mul(A, B)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 2, got.Cols())
}

func TestArithmetic_NilOperands(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 2)
	var nilDense *matrix.Dense

	_, err := matrix.Add(nil, A)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(A, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.False(t, matrix.Equal(nil, A))
	require.False(t, matrix.Equal(A, nilDense))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	A := MustFrom(t, DataA)
	require.True(t, matrix.Equal(A, A.Clone()))
	require.False(t, matrix.Equal(A, MustFrom(t, DataB)))
	require.False(t, matrix.Equal(A, MustDense(t, 2, 3)))
	require.False(t, matrix.Equal(MustDense(t, 1, 4), MustDense(t, 4, 1)))
	require.True(t, matrix.Equal(MustDense(t, 0, 3), MustDense(t, 0, 3)))
	require.False(t, matrix.Equal(MustDense(t, 0, 3), MustDense(t, 3, 0)))
}

// --- allocation failure --------------------------------------------------------

func TestArithmetic_ResultAllocationFailure(t *testing.T) {
	t.Parallel()

	A, B := MustFrom(t, DataA), MustFrom(t, DataB)
	calls := []func(opt matrix.Option) (*matrix.Dense, error){
		func(opt matrix.Option) (*matrix.Dense, error) { return matrix.Add(A, B, opt) },
		func(opt matrix.Option) (*matrix.Dense, error) { return matrix.Scale(A, 3, opt) },
		func(opt matrix.Option) (*matrix.Dense, error) { return matrix.Transpose(A, opt) },
		func(opt matrix.Option) (*matrix.Dense, error) { return matrix.Mul(A, B, opt) },
	}
	for i, call := range calls {
		alloc := &countingAlloc{failOn: 1}
		got, err := call(matrix.WithAllocator(alloc))
		require.ErrorIs(t, err, matrix.ErrAllocation, "call %d", i)
		require.Nil(t, got, "call %d", i)
		require.Zero(t, alloc.live, "call %d", i)
	}
}

func TestArithmetic_InheritsAllocator(t *testing.T) {
	t.Parallel()

	alloc := &countingAlloc{}
	A, err := matrix.NewDenseFrom(DataA, matrix.WithAllocator(alloc))
	require.NoError(t, err)

	S, err := matrix.Add(A, MustFrom(t, DataB))
	require.NoError(t, err)
	require.Same(t, alloc, matrix.AllocatorOf_TestOnly(S))
	require.Equal(t, 2, alloc.live)

	S.Release()
	A.Release()
	require.Zero(t, alloc.live)
}

// --- overflow policy -----------------------------------------------------------

func TestScale_WrapsByDefault(t *testing.T) {
	t.Parallel()

	A := MustFrom(t, [][]int{{math.MaxInt, 2}})
	got, err := matrix.Scale(A, 2)
	require.NoError(t, err)
	Compare(t, [][]int{{-2, 4}}, got) // MaxInt*2 wraps to -2
}

func TestOverflowChecked(t *testing.T) {
	t.Parallel()

	big := MustFrom(t, [][]int{{math.MaxInt, 1}, {1, 1}})
	checked := matrix.WithCheckedOverflow()

	_, err := matrix.Scale(big, 2, checked)
	require.ErrorIs(t, err, matrix.ErrOverflow)
	_, err = matrix.Scale(hide{big}, 2, checked)
	require.ErrorIs(t, err, matrix.ErrOverflow)

	_, err = matrix.Add(big, big, checked)
	require.ErrorIs(t, err, matrix.ErrOverflow)
	_, err = matrix.Add(hide{big}, big, checked)
	require.ErrorIs(t, err, matrix.ErrOverflow)

	_, err = matrix.Mul(big, big, checked)
	require.ErrorIs(t, err, matrix.ErrOverflow)
	_, err = matrix.Mul(hide{big}, hide{big}, checked)
	require.ErrorIs(t, err, matrix.ErrOverflow)

	minRow := MustFrom(t, [][]int{{math.MinInt}})
	_, err = matrix.Sub(MustFrom(t, [][]int{{0}}), minRow, checked)
	require.ErrorIs(t, err, matrix.ErrOverflow)
	got, err := matrix.Sub(MustFrom(t, [][]int{{-1}}), minRow, checked)
	require.NoError(t, err)
	Compare(t, [][]int{{math.MaxInt}}, got)

	// Values that fit are computed normally.
	A, B := MustFrom(t, DataA), MustFrom(t, DataB)
	prod, err := matrix.Mul(A, B, checked)
	require.NoError(t, err)
	Compare(t, [][]int{{19, 22}, {43, 50}}, prod)
}

func TestOverflowChecked_ReleasesResult(t *testing.T) {
	t.Parallel()

	alloc := &countingAlloc{}
	big := MustFrom(t, [][]int{{math.MaxInt}})
	_, err := matrix.Scale(big, 3, matrix.WithAllocator(alloc), matrix.WithCheckedOverflow())
	require.ErrorIs(t, err, matrix.ErrOverflow)
	require.Zero(t, alloc.live)
	require.Equal(t, 1, alloc.freed)
}

func TestCheckedHelpers(t *testing.T) {
	t.Parallel()

	_, ok := matrix.CheckedAdd_TestOnly(math.MaxInt, 1)
	require.False(t, ok)
	_, ok = matrix.CheckedAdd_TestOnly(math.MinInt, -1)
	require.False(t, ok)
	v, ok := matrix.CheckedAdd_TestOnly(math.MaxInt, math.MinInt)
	require.True(t, ok)
	require.Equal(t, -1, v)

	_, ok = matrix.CheckedMul_TestOnly(math.MinInt, -1)
	require.False(t, ok)
	_, ok = matrix.CheckedMul_TestOnly(math.MaxInt/2+1, 2)
	require.False(t, ok)
	v, ok = matrix.CheckedMul_TestOnly(-math.MaxInt, -1)
	require.True(t, ok)
	require.Equal(t, math.MaxInt, v)
}

// --- algebraic laws ------------------------------------------------------------

func TestLaws_TransposeInvolution(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		m := RandDense(t, int(seed), int(seed)+2, -9, 9, seed)
		t1, err := matrix.Transpose(m)
		require.NoError(t, err)
		t2, err := matrix.Transpose(t1)
		require.NoError(t, err)
		require.True(t, matrix.Equal(m, t2))
	}
}

func TestLaws_SumCommutes(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 6, 4, -1000, 1000, 21)
	b := RandDense(t, 6, 4, -1000, 1000, 22)
	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(ab, ba))
}

func TestLaws_ProductAssociates(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 3, 4, -20, 20, 31)
	b := RandDense(t, 4, 5, -20, 20, 32)
	c := RandDense(t, 5, 2, -20, 20, 33)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	abc1, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	abc2, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	require.True(t, matrix.Equal(abc1, abc2))
}

func TestLaws_ProductAssociatesUnderWrap(t *testing.T) {
	t.Parallel()

	// Wrapping arithmetic is a ring modulo 2^bits, so associativity survives overflow.
	a := RandDense(t, 3, 3, math.MinInt/4, math.MaxInt/4, 41)
	b := RandDense(t, 3, 3, math.MinInt/4, math.MaxInt/4, 42)
	c := RandDense(t, 3, 3, math.MinInt/4, math.MaxInt/4, 43)

	ab, _ := matrix.Mul(a, b)
	abc1, _ := matrix.Mul(ab, c)
	bc, _ := matrix.Mul(b, c)
	abc2, _ := matrix.Mul(a, bc)
	require.True(t, matrix.Equal(abc1, abc2))
}

func TestLaws_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 5; n++ {
		m := RandDense(t, n, n, -99, 99, int64(n)+50)
		id, err := matrix.IdentityLike(m)
		require.NoError(t, err)

		right, err := matrix.Mul(m, id)
		require.NoError(t, err)
		require.True(t, matrix.Equal(m, right))

		left, err := matrix.Mul(id, m)
		require.NoError(t, err)
		require.True(t, matrix.Equal(m, left))
	}
}

// --- gonum oracle --------------------------------------------------------------

// toGonum converts an int matrix into a gonum float64 Dense (exact for small values).
func toGonum(t *testing.T, m *matrix.Dense) *mat.Dense {
	t.Helper()
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, float64(MustAt(t, m, i, j)))
		}
	}

	return mat.NewDense(r, c, data)
}

// requireMatchesGonum asserts element-wise equality with a gonum matrix.
func requireMatchesGonum(t *testing.T, want mat.Matrix, got *matrix.Dense) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.Rows())
	require.Equal(t, c, got.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Equal(t, int(want.At(i, j)), MustAt(t, got, i, j), "(%d,%d)", i, j)
		}
	}
}

func TestMul_MatchesGonum(t *testing.T) {
	t.Parallel()

	shapes := [][3]int{{1, 1, 1}, {2, 3, 4}, {5, 1, 5}, {7, 6, 3}}
	for idx, s := range shapes {
		a := RandDense(t, s[0], s[1], -1000, 1000, int64(idx)*2+1)
		b := RandDense(t, s[1], s[2], -1000, 1000, int64(idx)*2+2)

		var want mat.Dense
		want.Mul(toGonum(t, a), toGonum(t, b))

		got, err := matrix.Mul(a, b)
		require.NoError(t, err)
		requireMatchesGonum(t, &want, got)
	}
}

func TestTransposeAndAdd_MatchGonum(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 4, 6, -500, 500, 61)
	b := RandDense(t, 4, 6, -500, 500, 62)

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireMatchesGonum(t, toGonum(t, a).T(), tr)

	var sum mat.Dense
	sum.Add(toGonum(t, a), toGonum(t, b))
	got, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireMatchesGonum(t, &sum, got)
}
