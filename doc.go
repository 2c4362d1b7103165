// Package intmat is a small dense integer matrix toolkit.
//
// 🚀 What is intmat?
//
//	A library plus a command-line tool that brings together:
//		• Storage: row-major *Dense int matrices behind a pluggable Allocator
//		• Construction: zeros, filled, identity, uniform random (injected *rand.Rand)
//		• Arithmetic: Add, Sub, Scale, Transpose, Mul, Equal
//		• Overflow policy: Go wrap-around by default, or checked with ErrOverflow
//		• Text codec: whitespace-separated rows, shape inferred on load
//		• Files: mmap-backed reads, transparent gzip / zstd by extension
//
// ✨ Guarantees
//
//   - Every failure is an error value matched with errors.Is, never a crash
//   - Allocation is all-or-nothing; a failed operation leaks no buffer
//   - Generic kernels accept any matrix.Matrix and take a flat fast path on *Dense
//
// Layout:
//
//	matrix/      - Dense storage, constructors, validators, arithmetic kernels
//	codec/       - text Parse/Dump, LoadFile/DumpFile
//	cmd/intmat/  - CLI: sum, sub, product, scale, transpose, identity, random, equal, show
//
// Quick start:
//
//	a, _ := codec.ParseString("1 2\n3 4\n")
//	b, _ := matrix.NewIdentity(2)
//	p, _ := matrix.Mul(a, b)
//	_ = codec.Dump(os.Stdout, p) // "1 2 \n3 4 \n"
package intmat
