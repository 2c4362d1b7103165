// SPDX-License-Identifier: MIT

package codec_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/intmat/codec"
	"github.com/katalvlaran/intmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestFile_RoundTrip(t *testing.T) {
	t.Parallel()

	m := mustFrom(t, [][]int{{1, 2, 3}, {-4, 5, -6}, {7, 8, 9}})
	dir := t.TempDir()
	for _, name := range []string{"plain.txt", "packed.gz", "packed.zst", "UPPER.ZST"} {
		name := name
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, codec.DumpFile(path, m))

			got, err := codec.LoadFile(path)
			require.NoError(t, err)
			require.True(t, matrix.Equal(m, got), "got %v", got)
		})
	}
}

func TestFile_CompressionOnDisk(t *testing.T) {
	t.Parallel()

	m := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	dir := t.TempDir()

	plain := filepath.Join(dir, "m.txt")
	require.NoError(t, codec.DumpFile(plain, m))
	raw, err := os.ReadFile(plain)
	require.NoError(t, err)
	require.Equal(t, "1 2 \n3 4 \n", string(raw))

	// The standard gzip reader accepts what DumpFile writes.
	packed := filepath.Join(dir, "m.gz")
	require.NoError(t, codec.DumpFile(packed, m))
	f, err := os.Open(packed)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	text, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.Equal(t, "1 2 \n3 4 \n", string(text))

	// Explicit compression overrides the extension in both directions.
	forced := filepath.Join(dir, "m.bin")
	require.NoError(t, codec.DumpFile(forced, m, codec.WithCompression(codec.CompressionZstd)))
	raw, err = os.ReadFile(forced)
	require.NoError(t, err)
	require.False(t, bytes.HasPrefix(raw, []byte("1 2")))
	got, err := codec.LoadFile(forced, codec.WithCompression(codec.CompressionZstd))
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, got))

	_, err = codec.LoadFile(plain, codec.WithCompression(codec.CompressionGzip))
	require.ErrorIs(t, err, codec.ErrIO)
}

func TestLoadFile_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := codec.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 0, got.Rows())
	require.Equal(t, 0, got.Cols())
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := codec.LoadFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, codec.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2\n3 z\n"), 0o644))
	_, err = codec.LoadFile(bad, codec.WithStrictNumbers())
	require.ErrorIs(t, err, codec.ErrParse)

	_, err = codec.LoadFile(bad, codec.WithMatrixOptions(matrix.WithMaxElements(2)))
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

func TestDumpFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.ErrorIs(t, codec.DumpFile(filepath.Join(dir, "nil.txt"), nil), matrix.ErrNilMatrix)

	err := codec.DumpFile(filepath.Join(dir, "no", "such", "dir.txt"), mustFrom(t, [][]int{{1}}))
	require.ErrorIs(t, err, codec.ErrIO)
}
