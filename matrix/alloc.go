// SPDX-License-Identifier: MIT

// Package matrix - backing storage allocation.
//
// Purpose:
//   - Own the single place where a matrix buffer is obtained and handed back.
//   - Turn every way an allocation can go wrong (negative/overflowing size,
//     configured limit, runtime makeslice panic) into ErrAllocation.
//   - Allow injection of a custom Allocator for failure injection and
//     allocation accounting in tests.
//
// A Dense holds exactly one contiguous buffer, so allocation is atomic: it
// either yields the whole r*c buffer or nothing. There is no per-row rollback.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxElements bounds r*c for HeapAllocator. It keeps absurd shapes
// (for example dimensions inferred from a corrupted file) from reaching the
// runtime, where an out-of-memory condition is fatal rather than an error.
const DefaultMaxElements = 1 << 28

// Allocator obtains and releases matrix buffers.
// Alloc must return either a zeroed buffer of exactly n elements or a non-nil
// error; it must never return a short buffer. Free receives every buffer that
// Alloc produced once the owning matrix is released.
type Allocator interface {
	Alloc(n int) ([]int, error)
	Free(buf []int)
}

// HeapAllocator allocates from the Go heap. Free is a no-op; the garbage
// collector reclaims released buffers.
type HeapAllocator struct {
	// MaxElements caps a single allocation; zero means DefaultMaxElements.
	MaxElements int
}

// defaultAllocator is shared by every Dense built without WithAllocator.
var defaultAllocator Allocator = HeapAllocator{}

// Alloc returns a zeroed []int of length n.
// Errors: ErrAllocation when n < 0, n > MaxElements, or the runtime refuses
// the request (makeslice: len out of range).
func (h HeapAllocator) Alloc(n int) (buf []int, err error) {
	limit := h.MaxElements
	if limit <= 0 {
		limit = DefaultMaxElements
	}
	if n < 0 || n > limit {
		return nil, fmt.Errorf("HeapAllocator.Alloc(%d): limit %d: %w", n, limit, ErrAllocation)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("HeapAllocator.Alloc(%d): %v: %w", n, r, ErrAllocation)
		}
	}()

	return make([]int, n), nil
}

// Free is a no-op for heap buffers.
func (HeapAllocator) Free([]int) {}

// elementCount returns rows*cols or ErrAllocation when the product overflows int.
// Negative inputs are rejected earlier with ErrInvalidDimensions.
func elementCount(rows, cols int) (int, error) {
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%d×%d elements: %w", rows, cols, ErrAllocation)
	}

	return rows * cols, nil
}

// allocBuffer asks alloc for rows*cols elements and verifies the contract.
// A short buffer is returned to the allocator and reported as ErrAllocation.
func allocBuffer(alloc Allocator, rows, cols int) ([]int, error) {
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, err
	}
	buf, err := alloc.Alloc(n)
	if err != nil {
		// Normalize foreign allocator errors into the allocation class.
		if !errors.Is(err, ErrAllocation) {
			err = fmt.Errorf("%w: %w", err, ErrAllocation)
		}
		return nil, err
	}
	if len(buf) != n {
		alloc.Free(buf)
		return nil, fmt.Errorf("allocator returned %d of %d elements: %w", len(buf), n, ErrAllocation)
	}

	return buf, nil
}
