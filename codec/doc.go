// Package codec serializes matrix.Dense values to and from plain text.
//
// Format: one matrix row per line, each element in base 10 followed by a
// single space, rows terminated by '\n'. There is no header; the shape is
// recovered on load from the layout:
//
//	1 2 3
//	4 5 6
//
// Parse infers the shape in a first pass (rows = non-blank lines, columns =
// tokens on the first non-blank line) and fills the matrix in a second one.
// By default malformed numbers read as 0 and ragged rows are truncated or
// zero-filled; WithStrictNumbers and WithStrictShape turn both into errors.
//
// LoadFile and DumpFile add memory-mapped reads and transparent zstd/gzip
// (de)compression selected by file extension.
package codec
