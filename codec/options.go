// SPDX-License-Identifier: MIT

// Package codec: functional configuration for parsing and file handling.
//
// Defaults (single source of truth):
//   • numbers     = NumbersPermissive (atoi-like; garbage → 0)
//   • shape       = ShapeLenient      (ragged rows truncated / zero-filled)
//   • maxLine     = DefaultMaxLineBytes
//   • compression = CompressionAuto   (by file extension)
//   • matrix opts = none              (heap allocator, wrapping overflow)
package codec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/intmat/matrix"
)

// DefaultMaxLineBytes bounds a single input line (one matrix row).
const DefaultMaxLineBytes = 1 << 20

// MinLineBytes is the smallest accepted WithMaxLineBytes value.
const MinLineBytes = 16

// NumberPolicy selects how tokens that are not valid base-10 ints are read.
type NumberPolicy uint8

const (
	// NumbersPermissive reads the longest leading [+-]digits prefix of a token,
	// saturating at the int bounds; a token without digits reads as 0.
	NumbersPermissive NumberPolicy = iota

	// NumbersStrict rejects any token that is not exactly a base-10 int with ErrParse.
	NumbersStrict
)

// ShapePolicy selects how rows whose token count differs from the first row are handled.
type ShapePolicy uint8

const (
	// ShapeLenient drops tokens beyond the inferred column count and leaves
	// missing trailing cells at 0.
	ShapeLenient ShapePolicy = iota

	// ShapeStrict fails with matrix.ErrDimensionMismatch on the first ragged row.
	ShapeStrict
)

// Compression selects the transparent (de)compression used by file helpers.
type Compression uint8

const (
	// CompressionAuto picks by extension: ".zst" → zstd, ".gz" → gzip, else none.
	CompressionAuto Compression = iota
	// CompressionNone reads and writes plain text.
	CompressionNone
	// CompressionGzip uses gzip framing.
	CompressionGzip
	// CompressionZstd uses zstd framing.
	CompressionZstd
)

var compressionNames = [...]string{
	CompressionAuto: "auto",
	CompressionNone: "none",
	CompressionGzip: "gzip",
	CompressionZstd: "zstd",
}

// String returns the lower-case name used by ParseCompression.
func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}

	return "unknown"
}

// ParseCompression maps "auto", "none", "gzip" or "zstd" (case-insensitive,
// empty means auto) to a Compression.
func ParseCompression(s string) (Compression, error) {
	if s == "" {
		return CompressionAuto, nil
	}
	for c, name := range compressionNames {
		if strings.EqualFold(s, name) {
			return Compression(c), nil
		}
	}

	return CompressionAuto, fmt.Errorf("codec: unknown compression %q", s)
}

const (
	panicMaxLineBytes = "codec: WithMaxLineBytes: limit below minimum"
	panicCompression  = "codec: WithCompression: unknown compression"
)

// Option mutates internal options; later options override earlier ones.
type Option func(*options)

type options struct {
	numbers     NumberPolicy
	shape       ShapePolicy
	maxLine     int
	compression Compression
	matrixOpts  []matrix.Option
}

// WithStrictNumbers makes Parse fail with ErrParse on tokens that are not base-10 ints.
func WithStrictNumbers() Option {
	return func(o *options) { o.numbers = NumbersStrict }
}

// WithStrictShape makes Parse fail with matrix.ErrDimensionMismatch on ragged rows.
func WithStrictShape() Option {
	return func(o *options) { o.shape = ShapeStrict }
}

// WithMaxLineBytes bounds the length of a single input line. Panics below 16 bytes.
func WithMaxLineBytes(n int) Option {
	if n < MinLineBytes {
		panic(panicMaxLineBytes)
	}
	return func(o *options) { o.maxLine = n }
}

// WithCompression overrides extension-based compression detection in LoadFile/DumpFile.
func WithCompression(c Compression) Option {
	if c > CompressionZstd {
		panic(panicCompression)
	}
	return func(o *options) { o.compression = c }
}

// WithMatrixOptions forwards allocation/overflow options to the decoded matrix.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(user ...Option) options {
	o := options{
		numbers:     NumbersPermissive,
		shape:       ShapeLenient,
		maxLine:     DefaultMaxLineBytes,
		compression: CompressionAuto,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
