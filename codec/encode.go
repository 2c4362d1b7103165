// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/intmat/matrix"
)

const opDump = "Dump"

// Dump writes m to w as text: one line per row, every element in base 10
// followed by a single space, each row terminated by '\n'. No header is
// written; the shape is implied by the layout. A matrix with zero rows writes
// nothing; a matrix with zero columns writes one empty line per row, which
// Parse reads back as 0×0.
//
// Errors: matrix.ErrNilMatrix, ErrIO on write failure.
// Complexity: O(r*c).
func Dump(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return codecErrorf(opDump, err)
	}
	bw := bufio.NewWriter(w)
	if err := writeRows(bw, m); err != nil {
		return codecErrorf(opDump, err)
	}
	if err := bw.Flush(); err != nil {
		return codecErrorf(opDump, ioErrorf("flush", err))
	}

	return nil
}

// DumpString returns the text form of m.
func DumpString(m matrix.Matrix) (string, error) {
	var sb strings.Builder
	if err := Dump(&sb, m); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// writeRows formats each row into a reused scratch buffer and writes it.
func writeRows(w io.Writer, m matrix.Matrix) error {
	rows, cols := m.Rows(), m.Cols()
	d, isDense := m.(*matrix.Dense)
	scratch := make([]byte, 0, 64)
	for i := 0; i < rows; i++ {
		scratch = scratch[:0]
		if isDense {
			for _, v := range d.RawRow(i) {
				scratch = strconv.AppendInt(scratch, int64(v), 10)
				scratch = append(scratch, ' ')
			}
		} else {
			for j := 0; j < cols; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return err
				}
				scratch = strconv.AppendInt(scratch, int64(v), 10)
				scratch = append(scratch, ' ')
			}
		}
		scratch = append(scratch, '\n')
		if _, err := w.Write(scratch); err != nil {
			return ioErrorf("write", err)
		}
	}

	return nil
}
