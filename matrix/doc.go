// Package matrix offers a dense, row-major integer matrix with explicit
// ownership and allocation-failure reporting.
//
// The matrix package provides:
//
//   - Dense: a contiguous rows×cols []int buffer (offset i*cols+j) obtained in a
//     single all-or-nothing allocation from a pluggable Allocator, released with
//     an idempotent Release.
//   - Initializers: Fill/Zero, InitIdentity, InitRandom with an injected *rand.Rand.
//   - Arithmetic: Equal, Add/Sub, Scale, Transpose, Mul, Hadamard, MatVec. Every
//     kernel allocates a fresh result and never mutates its operands.
//   - Sentinel errors (ErrAllocation, ErrDimensionMismatch, ErrNonSquare,
//     ErrInvalidRange, ...) matched with errors.Is.
//
// Integer overflow wraps by default; WithCheckedOverflow turns it into ErrOverflow.
//
// Text serialization lives in the sibling codec package.
package matrix
