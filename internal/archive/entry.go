// Package archive decodes packaged archives into the flat, ordered entry list
// the virtual filesystem is built from.
package archive

// Kind tags an entry as a regular file or a directory.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Entry is one record of an archive in container order.
type Entry struct {
	Path string
	Kind Kind
	// Content is nil when the container carries no payload for the entry.
	// Directories never carry content.
	Content []byte
}

// Reader produces the ordered entry list of an archive.
type Reader interface {
	Entries() ([]Entry, error)
}

// Entries is an in-memory Reader.
type Entries []Entry

// Entries implements Reader.
func (e Entries) Entries() ([]Entry, error) {
	return e, nil
}
