package archive

import (
	"archive/tar"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// Format identifies the container encoding of an archive.
type Format int

const (
	FormatTar Format = iota
	FormatTarGzip
	FormatTarZstd
	FormatZip
)

func (f Format) String() string {
	switch f {
	case FormatTar:
		return "tar"
	case FormatTarGzip:
		return "tar.gz"
	case FormatTarZstd:
		return "tar.zst"
	case FormatZip:
		return "zip"
	default:
		return "unknown"
	}
}

var (
	gzipMagic     = []byte{0x1f, 0x8b}
	zstdMagic     = []byte{0x28, 0xb5, 0x2f, 0xfd}
	zipMagic      = []byte("PK\x03\x04")
	zipEmptyMagic = []byte("PK\x05\x06")
)

// Detect sniffs the container format from the leading bytes.
// Anything that is not compressed or zipped is treated as a plain tar stream.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return FormatTarGzip
	case bytes.HasPrefix(data, zstdMagic):
		return FormatTarZstd
	case bytes.HasPrefix(data, zipMagic), bytes.HasPrefix(data, zipEmptyMagic):
		return FormatZip
	default:
		return FormatTar
	}
}

// FileReader reads an archive file from disk.
type FileReader struct {
	path     string
	log      *zap.Logger
	readFile func(name string) ([]byte, error)
}

// NewFileReader creates a FileReader for the archive at path.
func NewFileReader(path string, log *zap.Logger) *FileReader {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileReader{
		path:     path,
		log:      log,
		readFile: os.ReadFile,
	}
}

// Entries reads and decodes the whole archive. Nothing is returned unless the
// container decodes completely.
func (r *FileReader) Entries() ([]Entry, error) {
	data, err := r.readFile(r.path)
	if err != nil {
		return nil, &OpenError{Path: r.path, Cause: err}
	}

	format := Detect(data)
	r.log.Debug("decoding archive",
		zap.String("path", r.path),
		zap.Stringer("format", format),
		zap.Int("bytes", len(data)),
	)

	return DecodeFormat(data, format)
}

// Decode detects the format of data and decodes it.
func Decode(data []byte) ([]Entry, error) {
	return DecodeFormat(data, Detect(data))
}

// DecodeFormat decodes data as the given container format.
func DecodeFormat(data []byte, format Format) ([]Entry, error) {
	switch format {
	case FormatTar:
		return decodeTar(bytes.NewReader(data), format)
	case FormatTarGzip:
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &DecodeError{Format: format, Cause: err}
		}
		defer gz.Close()
		return decodeTar(gz, format)
	case FormatTarZstd:
		dec, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &DecodeError{Format: format, Cause: err}
		}
		defer dec.Close()
		return decodeTar(dec, format)
	case FormatZip:
		return decodeZip(data)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func decodeTar(r io.Reader, format Format) ([]Entry, error) {
	tr := tar.NewReader(r)
	var entries []Entry

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DecodeError{Format: format, Cause: err}
		}

		switch header.Typeflag {
		case tar.TypeXGlobalHeader:
			continue
		case tar.TypeDir:
			entries = append(entries, Entry{Path: header.Name, Kind: KindDirectory})
		case tar.TypeReg:
			data, err := io.ReadAll(tr)
			if err != nil {
				return nil, &DecodeError{Format: format, Cause: err}
			}
			entries = append(entries, Entry{Path: header.Name, Kind: KindFile, Content: data})
		default:
			// Links, devices and fifos have no payload of their own.
			entries = append(entries, Entry{Path: header.Name, Kind: KindFile})
		}
	}

	return entries, nil
}

func decodeZip(data []byte) ([]Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Format: FormatZip, Cause: err}
	}

	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			entries = append(entries, Entry{Path: f.Name, Kind: KindDirectory})
			continue
		}
		if !f.Mode().IsRegular() {
			entries = append(entries, Entry{Path: f.Name, Kind: KindFile})
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, &DecodeError{Format: FormatZip, Cause: err}
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &DecodeError{Format: FormatZip, Cause: err}
		}
		entries = append(entries, Entry{Path: f.Name, Kind: KindFile, Content: content})
	}

	return entries, nil
}
