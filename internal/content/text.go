// Package content provides pure helpers for treating file bytes as text.
package content

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultHeadLines is the number of lines head shows.
const DefaultHeadLines = 10

var ErrNotText = errors.New("content is not valid UTF-8 text")

// Decode returns data as a string if it is valid UTF-8.
func Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

// Head returns the first n lines of text joined by "\n".
// Lines are split on "\n" only; text holding fewer than n newlines comes back
// unchanged.
func Head(text string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.SplitN(text, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
