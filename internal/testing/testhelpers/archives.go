// Package testhelpers builds archive fixtures for tests.
package testhelpers

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Item describes one archive member. Names ending in "/" are directories.
type Item struct {
	Name string
	Data string
	// Symlink makes the member a symbolic link to Data instead of a file.
	Symlink bool
}

// Dir returns a directory item.
func Dir(name string) Item {
	if !strings.HasSuffix(name, "/") {
		name += "/"
	}
	return Item{Name: name}
}

// File returns a regular file item.
func File(name, data string) Item {
	return Item{Name: name, Data: data}
}

// Tar encodes items as an uncompressed tar stream.
func Tar(t testing.TB, items ...Item) []byte {
	t.Helper()
	var buf bytes.Buffer
	writeTar(t, &buf, items)
	return buf.Bytes()
}

// TarGzip encodes items as a gzip compressed tar stream.
func TarGzip(t testing.TB, items ...Item) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	writeTar(t, gz, items)
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

// TarZstd encodes items as a zstd compressed tar stream.
func TarZstd(t testing.TB, items ...Item) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	writeTar(t, enc, items)
	if err := enc.Close(); err != nil {
		t.Fatalf("zstd close: %v", err)
	}
	return buf.Bytes()
}

// Zip encodes items as a zip archive.
func Zip(t testing.TB, items ...Item) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, item := range items {
		w, err := zw.Create(item.Name)
		if err != nil {
			t.Fatalf("zip create %s: %v", item.Name, err)
		}
		if strings.HasSuffix(item.Name, "/") {
			continue
		}
		if _, err := w.Write([]byte(item.Data)); err != nil {
			t.Fatalf("zip write %s: %v", item.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

// WriteTemp writes data to name inside a fresh temp dir and returns the path.
func WriteTemp(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func writeTar(t testing.TB, w io.Writer, items []Item) {
	t.Helper()
	tw := tar.NewWriter(w)
	for _, item := range items {
		hdr := &tar.Header{Name: item.Name, Mode: 0o644}
		switch {
		case strings.HasSuffix(item.Name, "/"):
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0o755
		case item.Symlink:
			hdr.Typeflag = tar.TypeSymlink
			hdr.Linkname = item.Data
		default:
			hdr.Typeflag = tar.TypeReg
			hdr.Size = int64(len(item.Data))
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("tar header %s: %v", item.Name, err)
		}
		if hdr.Typeflag == tar.TypeReg {
			if _, err := tw.Write([]byte(item.Data)); err != nil {
				t.Fatalf("tar write %s: %v", item.Name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("tar close: %v", err)
	}
}
