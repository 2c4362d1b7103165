// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED overflow helpers, the uniform sampler and the resolved
//     Options to matrix_test ONLY (this file is compiled with tests only).
//   - Keep all test-only bridges co-located here.

var (
	CheckedAdd_TestOnly   = checkedAdd
	CheckedMul_TestOnly   = checkedMul
	ElementCount_TestOnly = elementCount
	UniformInt_TestOnly   = uniformInt
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicNilAllocator_TestOnly    = panicNilAllocator
	PanicUnknownOverflow_TestOnly = panicUnknownOverflow
)

// OptionsSnapshot is a read-only view of the resolved internal Options.
type OptionsSnapshot struct {
	Alloc    Allocator
	Overflow OverflowPolicy
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns the snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Alloc: o.alloc, Overflow: o.overflow}
}

// AllocatorOf_TestOnly reports the Allocator a Dense will release into.
func AllocatorOf_TestOnly(m *Dense) Allocator { return m.alloc }

// DataIsNil_TestOnly reports whether the backing buffer has been dropped.
func DataIsNil_TestOnly(m *Dense) bool { return m.data == nil }
