// SPDX-License-Identifier: MIT

// Package codec - text decoding.
//
// Algorithm (two passes over line-delimited input):
//   1. Dimension inference: count non-blank lines (rows); the column count is
//      the whitespace token count of the first non-blank line. Later lines are
//      not checked here.
//   2. Fill: rewind, allocate rows×cols, then assign each non-blank line's
//      tokens to its row in order. Extra tokens are ignored and missing ones
//      stay 0 (ShapeLenient), or the row is rejected (ShapeStrict).
//
// A line is blank when it holds no token: empty, "\n", "\r\n" or only
// spaces/tabs. Tokens are separated by any run of ASCII whitespace, so the
// trailing space written by Dump never yields a phantom column.
//
// Complexity: Time O(input bytes + r*c), Space O(r*c + maxLine).

package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/intmat/matrix"
)

const (
	opParse  = "Parse"
	opDecode = "Decode"
)

// Parse reads a matrix from r.
//
// If r implements io.ReadSeeker and reports its current offset, both passes
// stream from it with a seek back to that offset in between; text before the
// offset is never read. Any other reader, or a seeker that cannot seek (a
// pipe or terminal behind *os.File), is read fully into memory once and
// decoded with Decode.
//
// Errors:
//   - ErrIO: read or seek failure, line longer than the configured limit, or
//     input that changed between passes.
//   - ErrParse: malformed token (WithStrictNumbers only).
//   - matrix.ErrDimensionMismatch: ragged row (WithStrictShape only).
//   - matrix.ErrAllocation: the inferred shape cannot be allocated.
//
// Empty input (no non-blank line) yields a 0×0 matrix.
func Parse(r io.Reader, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if rs, ok := r.(io.ReadSeeker); ok {
		if start, serr := rs.Seek(0, io.SeekCurrent); serr == nil {
			m, err := decodeSeeker(rs, start, o)
			if err != nil {
				return nil, codecErrorf(opParse, err)
			}
			return m, nil
		}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, codecErrorf(opParse, ioErrorf("read", err))
	}
	m, err := decodeSeeker(bytes.NewReader(data), 0, o)
	if err != nil {
		return nil, codecErrorf(opParse, err)
	}

	return m, nil
}

// Decode parses a matrix from an in-memory buffer (for example a memory
// mapping). data is only read; the result does not reference it.
func Decode(data []byte, opts ...Option) (*matrix.Dense, error) {
	m, err := decodeSeeker(bytes.NewReader(data), 0, gatherOptions(opts...))
	if err != nil {
		return nil, codecErrorf(opDecode, err)
	}

	return m, nil
}

// ParseString is Decode over a string.
func ParseString(s string, opts ...Option) (*matrix.Dense, error) {
	return Decode([]byte(s), opts...)
}

// decodeSeeker runs both passes over rs, starting each at offset start.
func decodeSeeker(rs io.ReadSeeker, start int64, o options) (*matrix.Dense, error) {
	rows, cols, err := inferShape(rs, o)
	if err != nil {
		return nil, err
	}
	if _, err = rs.Seek(start, io.SeekStart); err != nil {
		return nil, ioErrorf("rewind", err)
	}

	m, err := matrix.NewDense(rows, cols, o.matrixOpts...)
	if err != nil {
		return nil, err
	}
	if err = fill(rs, m, o); err != nil {
		m.Release()
		return nil, err
	}

	return m, nil
}

// newScanner returns a line scanner bounded by o.maxLine.
func newScanner(r io.Reader, o options) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	initial := 64 * 1024
	if o.maxLine < initial {
		initial = o.maxLine
	}
	sc.Buffer(make([]byte, 0, initial), o.maxLine)

	return sc
}

// inferShape is pass 1: row count and first-row column count.
func inferShape(r io.Reader, o options) (rows, cols int, err error) {
	sc := newScanner(r, o)
	for sc.Scan() {
		n := countFields(sc.Bytes())
		if n == 0 {
			continue
		}
		if rows == 0 {
			cols = n
		}
		rows++
	}
	if err = sc.Err(); err != nil {
		return 0, 0, ioErrorf("scan", err)
	}

	return rows, cols, nil
}

// fill is pass 2: assigns tokens into m row by row.
func fill(r io.Reader, m *matrix.Dense, o options) error {
	rows, cols := m.Shape()
	sc := newScanner(r, o)
	row, line := 0, 0
	for sc.Scan() {
		line++
		fields := bytes.Fields(sc.Bytes())
		if len(fields) == 0 {
			continue
		}
		if row >= rows {
			return ioErrorf("fill", fmt.Errorf("line %d: input grew between passes", line))
		}
		if o.shape == ShapeStrict && len(fields) != cols {
			return fmt.Errorf("line %d: %d values, want %d: %w", line, len(fields), cols, matrix.ErrDimensionMismatch)
		}
		dst := m.RawRow(row)
		for j, tok := range fields {
			if j >= cols {
				break
			}
			v, err := parseToken(tok, o.numbers)
			if err != nil {
				return fmt.Errorf("line %d, value %d: %w", line, j+1, err)
			}
			dst[j] = v
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return ioErrorf("scan", err)
	}
	if row != rows {
		return ioErrorf("fill", fmt.Errorf("read %d rows, want %d: input shrank between passes", row, rows))
	}

	return nil
}

// countFields counts whitespace-separated tokens without allocating.
func countFields(line []byte) int {
	n := 0
	inField := false
	for _, b := range line {
		if isSpace(b) {
			inField = false
			continue
		}
		if !inField {
			n++
			inField = true
		}
	}

	return n
}

// isSpace mirrors the ASCII subset of unicode.IsSpace used by bytes.Fields.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// parseToken converts one token under policy.
func parseToken(tok []byte, policy NumberPolicy) (int, error) {
	if policy == NumbersStrict {
		v, err := strconv.Atoi(string(tok))
		if err != nil {
			return 0, fmt.Errorf("%q: %w", tok, ErrParse)
		}
		return v, nil
	}

	return atoiPrefix(tok), nil
}

// atoiPrefix reads an optional sign followed by decimal digits from the start
// of tok and stops at the first other byte. No digits → 0. Values beyond the
// int range saturate to math.MaxInt / math.MinInt.
func atoiPrefix(tok []byte) int {
	i, neg := 0, false
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		neg = tok[i] == '-'
		i++
	}
	// Accumulate as a negative number so MinInt is representable.
	acc := 0
	for ; i < len(tok) && tok[i] >= '0' && tok[i] <= '9'; i++ {
		d := int(tok[i] - '0')
		if acc < (math.MinInt+d)/10 {
			if neg {
				return math.MinInt
			}
			return math.MaxInt
		}
		acc = acc*10 - d
	}
	if neg {
		return acc
	}
	if acc == math.MinInt {
		return math.MaxInt
	}

	return -acc
}
