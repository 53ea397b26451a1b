package vfs

import (
	"errors"
	"fmt"
)

const (
	// ParentToken navigates to the enclosing directory.
	ParentToken = ".."
	// RootToken navigates to the root from anywhere.
	RootToken = "/"
)

// -- Error Types --

// NotFoundError is returned when a name matches no entry of the directory.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such file or directory: %s", e.Name)
}
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// -- Sentinels --

var (
	ErrAlreadyAtRoot = errors.New("already at root directory")
	ErrNotFound      = errors.New("no such file or directory")
)

// Resolve resolves a single path segment against current. Only "..", "/" and
// the exact name of a direct subdirectory are understood.
func (t *Tree) Resolve(current *Directory, token string) (*Directory, error) {
	switch token {
	case ParentToken:
		if current.IsRoot() {
			return nil, ErrAlreadyAtRoot
		}
		return current.Parent(), nil
	case RootToken:
		return t.root, nil
	}

	if dir := current.Subdirectory(token); dir != nil {
		return dir, nil
	}
	return nil, &NotFoundError{Name: token}
}
