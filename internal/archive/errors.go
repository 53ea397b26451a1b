package archive

import (
	"errors"
	"fmt"
)

// -- Error Types --

// OpenError is returned when the archive file cannot be read from disk.
type OpenError struct {
	Path  string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open archive %s: %v", e.Path, e.Cause)
}
func (e *OpenError) Unwrap() error { return e.Cause }

// DecodeError is returned when the container itself is malformed.
type DecodeError struct {
	Format Format
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s archive: %v", e.Format, e.Cause)
}
func (e *DecodeError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrUnsupportedFormat = errors.New("unsupported archive format")
)
