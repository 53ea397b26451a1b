package archive_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kairoterm/kairo/internal/archive"
	"github.com/kairoterm/kairo/internal/testing/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []testhelpers.Item {
	return []testhelpers.Item{
		testhelpers.Dir("dir1"),
		testhelpers.File("dir1/inner.txt", "inner"),
		testhelpers.File("file1.txt", "This is file1."),
		testhelpers.File("empty.txt", ""),
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected archive.Format
	}{
		{name: "plain tar", data: testhelpers.Tar(t, sampleItems()...), expected: archive.FormatTar},
		{name: "gzip tar", data: testhelpers.TarGzip(t, sampleItems()...), expected: archive.FormatTarGzip},
		{name: "zstd tar", data: testhelpers.TarZstd(t, sampleItems()...), expected: archive.FormatTarZstd},
		{name: "zip", data: testhelpers.Zip(t, sampleItems()...), expected: archive.FormatZip},
		{name: "empty zip", data: testhelpers.Zip(t), expected: archive.FormatZip},
		{name: "no data", data: nil, expected: archive.FormatTar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, archive.Detect(tt.data))
		})
	}
}

func TestDecode_PreservesOrderAndKinds(t *testing.T) {
	encoders := map[string]func(testing.TB, ...testhelpers.Item) []byte{
		"tar":     testhelpers.Tar,
		"tar.gz":  testhelpers.TarGzip,
		"tar.zst": testhelpers.TarZstd,
		"zip":     testhelpers.Zip,
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			entries, err := archive.Decode(encode(t, sampleItems()...))
			require.NoError(t, err)
			require.Len(t, entries, 4)

			assert.Equal(t, "dir1/", entries[0].Path)
			assert.Equal(t, archive.KindDirectory, entries[0].Kind)
			assert.Nil(t, entries[0].Content)

			assert.Equal(t, "dir1/inner.txt", entries[1].Path)
			assert.Equal(t, archive.KindFile, entries[1].Kind)
			assert.Equal(t, []byte("inner"), entries[1].Content)

			assert.Equal(t, "file1.txt", entries[2].Path)
			assert.Equal(t, []byte("This is file1."), entries[2].Content)

			// Empty files still carry a (zero length) payload.
			assert.Equal(t, "empty.txt", entries[3].Path)
			assert.NotNil(t, entries[3].Content)
			assert.Empty(t, entries[3].Content)
		})
	}
}

func TestDecode_SymlinkHasNoContent(t *testing.T) {
	data := testhelpers.Tar(t,
		testhelpers.File("target.txt", "x"),
		testhelpers.Item{Name: "link.txt", Data: "target.txt", Symlink: true},
	)

	entries, err := archive.Decode(data)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, archive.KindFile, entries[1].Kind)
	assert.Nil(t, entries[1].Content)
}

func TestDecode_EmptyTar(t *testing.T) {
	entries, err := archive.Decode(testhelpers.Tar(t))

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecode_CorruptContainer(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		format archive.Format
	}{
		{name: "truncated tar", data: []byte("definitely not a tar archive"), format: archive.FormatTar},
		{name: "broken gzip", data: []byte{0x1f, 0x8b, 0x00, 0x01}, format: archive.FormatTarGzip},
		{name: "broken zip", data: []byte("PK\x03\x04garbage"), format: archive.FormatZip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := archive.Decode(tt.data)

			assert.Nil(t, entries)
			var decodeErr *archive.DecodeError
			require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
			assert.Equal(t, tt.format, decodeErr.Format)
		})
	}
}

func TestDecodeFormat_Unknown(t *testing.T) {
	_, err := archive.DecodeFormat(nil, archive.Format(42))
	assert.ErrorIs(t, err, archive.ErrUnsupportedFormat)
}

func TestFileReader_Entries(t *testing.T) {
	path := testhelpers.WriteTemp(t, "fs.tar.gz", testhelpers.TarGzip(t, sampleItems()...))

	entries, err := archive.NewFileReader(path, nil).Entries()

	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestFileReader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.tar")

	_, err := archive.NewFileReader(path, nil).Entries()

	var openErr *archive.OpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, path, openErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEntries_ImplementsReader(t *testing.T) {
	var r archive.Reader = archive.Entries{{Path: "a", Kind: archive.KindFile, Content: []byte("a")}}

	entries, err := r.Entries()

	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "file", archive.KindFile.String())
	assert.Equal(t, "directory", archive.KindDirectory.String())
	assert.Equal(t, "unknown", archive.Kind(9).String())
}
