package vfs

import (
	"fmt"
	"strings"

	"github.com/kairoterm/kairo/internal/archive"
	"go.uber.org/zap"
)

// RootName is the name carried by the root directory.
const RootName = "/"

// Tree owns the root directory of a materialised archive.
type Tree struct {
	root *Directory
}

// NewTree returns a tree holding only an empty root.
func NewTree() *Tree {
	return &Tree{root: newDirectory(RootName, nil)}
}

func (t *Tree) Root() *Directory { return t.root }

// Build reads every entry from r and materialises the tree. If the reader
// fails no tree is returned.
func Build(r archive.Reader, log *zap.Logger) (*Tree, error) {
	entries, err := r.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to read archive entries: %w", err)
	}
	return BuildFromEntries(entries, log), nil
}

// BuildFromEntries materialises entries in order. Intermediate directories
// are created on demand and reused when declared again; file entries without
// content are skipped with a warning.
func BuildFromEntries(entries []archive.Entry, log *zap.Logger) *Tree {
	if log == nil {
		log = zap.NewNop()
	}

	t := NewTree()
	for _, entry := range entries {
		components := splitPath(entry.Path)

		if entry.Kind == archive.KindDirectory {
			t.ensurePath(components)
			continue
		}

		if entry.Content == nil {
			log.Warn("no data for file, skipping", zap.String("path", entry.Path))
			continue
		}
		if len(components) == 0 {
			log.Warn("file entry has an empty name, skipping", zap.String("path", entry.Path))
			continue
		}

		last := len(components) - 1
		parent := t.ensurePath(components[:last])
		parent.AppendFile(NewFile(components[last], entry.Content))
	}

	return t
}

// ensurePath walks components from the root, creating missing directories,
// and returns the terminal directory.
func (t *Tree) ensurePath(components []string) *Directory {
	dir := t.root
	for _, name := range components {
		dir = dir.child(name)
	}
	return dir
}

// splitPath splits a slash-delimited archive path, dropping empty components.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	components := parts[:0]
	for _, p := range parts {
		if p != "" {
			components = append(components, p)
		}
	}
	return components
}
