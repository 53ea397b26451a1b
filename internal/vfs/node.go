// Package vfs holds the in-memory directory tree materialised from an archive.
package vfs

import "sync"

// File is an immutable named byte payload.
type File struct {
	name    string
	content []byte
}

// NewFile creates a file node holding content.
func NewFile(name string, content []byte) *File {
	return &File{name: name, content: content}
}

func (f *File) Name() string { return f.name }

// Content returns the raw bytes. Callers must not modify them.
func (f *File) Content() []byte { return f.content }

// Size returns the content length in bytes.
func (f *File) Size() int64 { return int64(len(f.content)) }

// Directory is a node of the tree. Children keep insertion order and are
// never removed, so references handed out stay valid for the tree's lifetime.
type Directory struct {
	name   string
	parent *Directory

	mu    sync.RWMutex
	dirs  []*Directory
	files []*File
}

func newDirectory(name string, parent *Directory) *Directory {
	return &Directory{name: name, parent: parent}
}

func (d *Directory) Name() string { return d.name }

// Parent returns the enclosing directory, or nil for the root.
func (d *Directory) Parent() *Directory { return d.parent }

// IsRoot reports whether d has no parent.
func (d *Directory) IsRoot() bool { return d.parent == nil }

// Subdirectories returns a snapshot of the child directories in insertion order.
func (d *Directory) Subdirectories() []*Directory {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]*Directory, len(d.dirs))
	copy(result, d.dirs)
	return result
}

// Files returns a snapshot of the files in insertion order.
func (d *Directory) Files() []*File {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]*File, len(d.files))
	copy(result, d.files)
	return result
}

// Subdirectory returns the first child directory called name, or nil.
func (d *Directory) Subdirectory(name string) *Directory {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, child := range d.dirs {
		if child.name == name {
			return child
		}
	}
	return nil
}

// File returns the first file called name, or nil.
func (d *Directory) File(name string) *File {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, f := range d.files {
		if f.name == name {
			return f
		}
	}
	return nil
}

// AppendFile adds f after the existing files. Earlier files with the same
// name are kept and still win lookups.
func (d *Directory) AppendFile(f *File) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.files = append(d.files, f)
}

// child returns the first subdirectory called name, creating it if missing.
func (d *Directory) child(name string) *Directory {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.dirs {
		if existing.name == name {
			return existing
		}
	}
	created := newDirectory(name, d)
	d.dirs = append(d.dirs, created)
	return created
}
