// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for allocation and arithmetic policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultOverflowPolicy is the arithmetic overflow policy when none is given.
// Wrapping keeps every kernel total (it never fails on values).
const DefaultOverflowPolicy = OverflowWrap

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilAllocator    = "matrix: WithAllocator: allocator must be non-nil"
	panicUnknownOverflow = "matrix: WithOverflowPolicy: unknown policy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Its fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	alloc    Allocator      // defaultAllocator
	overflow OverflowPolicy // DefaultOverflowPolicy
}

// WithAllocator routes buffer allocation (and release) of the matrices built
// by the call through a. Panics on nil.
// Complexity: O(1).
func WithAllocator(a Allocator) Option {
	if a == nil {
		panic(panicNilAllocator)
	}
	return func(o *Options) {
		o.alloc = a
	}
}

// WithMaxElements is shorthand for WithAllocator(HeapAllocator{MaxElements: n}).
// A non-positive n selects DefaultMaxElements.
func WithMaxElements(n int) Option {
	return WithAllocator(HeapAllocator{MaxElements: n})
}

// WithOverflowPolicy selects wrap-around or checked arithmetic for Scale and Mul
// (and Add/Sub). Panics on values outside the declared OverflowPolicy set.
func WithOverflowPolicy(p OverflowPolicy) Option {
	if p != OverflowWrap && p != OverflowChecked {
		panic(panicUnknownOverflow)
	}
	return func(o *Options) {
		o.overflow = p
	}
}

// WithCheckedOverflow is shorthand for WithOverflowPolicy(OverflowChecked).
func WithCheckedOverflow() Option { return WithOverflowPolicy(OverflowChecked) }

// NewMatrixOptions resolves opts on top of the documented defaults.
// Intended for callers that want to inspect or reuse a resolved configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Allocator reports the resolved allocator.
func (o Options) Allocator() Allocator { return o.alloc }

// OverflowPolicy reports the resolved overflow policy.
func (o Options) OverflowPolicy() OverflowPolicy { return o.overflow }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		alloc:    defaultAllocator,
		overflow: DefaultOverflowPolicy,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
