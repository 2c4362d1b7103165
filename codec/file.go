// SPDX-License-Identifier: MIT

// Package codec - file helpers.
//
// LoadFile:
//   • plain files are memory-mapped read-only and decoded in place; both
//     decoding passes re-scan the mapping instead of re-reading the file.
//   • zero-length files short-circuit to a 0×0 matrix (an empty file cannot be mapped).
//   • ".zst" / ".gz" files (or an explicit WithCompression) are streamed
//     through the decompressor and buffered once.
//
// DumpFile:
//   • creates/truncates the file and writes through the matching compressor.

package codec

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/intmat/matrix"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	opLoadFile = "LoadFile"
	opDumpFile = "DumpFile"

	extZstd = ".zst"
	extGzip = ".gz"
)

// resolveCompression maps CompressionAuto to a concrete choice by extension.
func resolveCompression(path string, c Compression) Compression {
	if c != CompressionAuto {
		return c
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case extZstd:
		return CompressionZstd
	case extGzip:
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// LoadFile reads the matrix stored at path.
// Errors: ErrIO (open/stat/map/decompress), plus everything Parse reports.
func LoadFile(path string, opts ...Option) (m *matrix.Dense, err error) {
	o := gatherOptions(opts...)
	f, err := os.Open(path)
	if err != nil {
		return nil, codecErrorf(opLoadFile, ioErrorf("open", err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			m, err = nil, codecErrorf(opLoadFile, ioErrorf("close", cerr))
		}
	}()

	switch resolveCompression(path, o.compression) {
	case CompressionZstd:
		dec, derr := zstd.NewReader(f)
		if derr != nil {
			return nil, codecErrorf(opLoadFile, ioErrorf("zstd", derr))
		}
		defer dec.Close()
		return loadStream(dec, o)
	case CompressionGzip:
		zr, zerr := gzip.NewReader(f)
		if zerr != nil {
			return nil, codecErrorf(opLoadFile, ioErrorf("gzip", zerr))
		}
		defer zr.Close()
		return loadStream(zr, o)
	default:
		return loadMapped(f, o)
	}
}

// loadStream buffers a decompressed stream and decodes it.
func loadStream(r io.Reader, o options) (*matrix.Dense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, codecErrorf(opLoadFile, ioErrorf("decompress", err))
	}
	m, err := decodeSeeker(bytes.NewReader(data), 0, o)
	if err != nil {
		return nil, codecErrorf(opLoadFile, err)
	}

	return m, nil
}

// loadMapped decodes a plain file through a read-only memory mapping.
func loadMapped(f *os.File, o options) (m *matrix.Dense, err error) {
	info, err := f.Stat()
	if err != nil {
		return nil, codecErrorf(opLoadFile, ioErrorf("stat", err))
	}
	if info.Size() == 0 {
		m, err = matrix.NewDense(0, 0, o.matrixOpts...)
		if err != nil {
			return nil, codecErrorf(opLoadFile, err)
		}
		return m, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, codecErrorf(opLoadFile, ioErrorf("mmap", err))
	}
	defer func() {
		if uerr := data.Unmap(); uerr != nil && err == nil {
			m.Release()
			m, err = nil, codecErrorf(opLoadFile, ioErrorf("munmap", uerr))
		}
	}()

	m, err = decodeSeeker(bytes.NewReader(data), 0, o)
	if err != nil {
		return nil, codecErrorf(opLoadFile, err)
	}

	return m, nil
}

// DumpFile writes m to path (created or truncated, mode 0644).
// Errors: matrix.ErrNilMatrix, ErrIO.
func DumpFile(path string, m matrix.Matrix, opts ...Option) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return codecErrorf(opDumpFile, err)
	}
	o := gatherOptions(opts...)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return codecErrorf(opDumpFile, ioErrorf("create", err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = codecErrorf(opDumpFile, ioErrorf("close", cerr))
		}
	}()

	var sink io.WriteCloser
	switch resolveCompression(path, o.compression) {
	case CompressionZstd:
		enc, zerr := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zerr != nil {
			return codecErrorf(opDumpFile, ioErrorf("zstd", zerr))
		}
		sink = enc
	case CompressionGzip:
		sink = gzip.NewWriter(f)
	default:
		sink = nopWriteCloser{f}
	}

	if err = Dump(sink, m); err != nil {
		_ = sink.Close()
		return codecErrorf(opDumpFile, err)
	}
	if err = sink.Close(); err != nil {
		return codecErrorf(opDumpFile, ioErrorf("finish", err))
	}

	return nil
}

// nopWriteCloser leaves closing the file to DumpFile's deferred Close.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
