// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for store/kernel tests.
//   • Provide an allocation-counting Allocator double for failure injection.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/intmat/matrix"
)

// Fixtures shared by arithmetic tests (A and B from the reference scenario).
var (
	DataA = [][]int{{1, 2}, {3, 4}}
	DataB = [][]int{{5, 6}, {7, 8}}
)

// errInjected is what countingAlloc returns on an injected failure.
var errInjected = errors.New("injected allocation failure")

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths of kernels.
type hide struct{ matrix.Matrix }

// countingAlloc is an Allocator double that tracks live buffers and can fail
// the N-th Alloc call (1-based; 0 disables injection).
type countingAlloc struct {
	failOn int // Alloc call number that fails
	calls  int // Alloc calls so far
	live   int // buffers handed out and not yet freed
	freed  int // Free calls
}

func (a *countingAlloc) Alloc(n int) ([]int, error) {
	a.calls++
	if a.failOn > 0 && a.calls == a.failOn {
		return nil, errInjected
	}
	a.live++

	return make([]int, n), nil
}

func (a *countingAlloc) Free([]int) {
	a.freed++
	a.live--
}

// shortAlloc violates the Allocator contract by returning one element less.
type shortAlloc struct{ countingAlloc }

func (a *shortAlloc) Alloc(n int) ([]int, error) {
	buf, err := a.countingAlloc.Alloc(n)
	if err != nil || n == 0 {
		return buf, err
	}

	return buf[:n-1], nil
}

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom builds a *Dense from row literals or fails the test.
func MustFrom(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandDense returns an r×c matrix with reproducible values in [lo, hi].
func RandDense(t testing.TB, r, c, lo, hi int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandom(r, c, lo, hi, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewRandom(%d,%d): %v", r, c, err)
	}

	return m
}

// Compare asserts that m matches the 2-D slice want exactly.
func Compare(t testing.TB, want [][]int, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("Rows = %d; want %d", r, len(want))
	}
	for i := 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j := 0; j < c; j++ {
			if v := MustAt(t, m, i, j); v != want[i][j] {
				t.Errorf("At(%d,%d) = %v; want %v", i, j, v, want[i][j])
			}
		}
	}
}
