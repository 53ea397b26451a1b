package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kairoterm/kairo/internal/archive"
	"github.com/kairoterm/kairo/internal/shell"
	"github.com/kairoterm/kairo/internal/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlainSession(exiter *Exiter) *shell.Session {
	tree := vfs.BuildFromEntries([]archive.Entry{
		{Path: "dir1/", Kind: archive.KindDirectory},
		{Path: "file1.txt", Kind: archive.KindFile, Content: []byte("This is file1.")},
		{Path: "file2.txt", Kind: archive.KindFile, Content: []byte("This is file2.")},
	}, nil)
	return shell.NewSession(tree, nil, shell.WithExit(exiter.Exit))
}

func TestRunPlain_StopsOnExit(t *testing.T) {
	exiter := &Exiter{}
	session := newPlainSession(exiter)
	in := strings.NewReader("ls\ndu\nexit\nls\n")
	var out bytes.Buffer

	err := RunPlain(in, &out, session, exiter, "alice")

	require.NoError(t, err)
	assert.Equal(t,
		"alice$ dir1\nfile1.txt\nfile2.txt\n"+
			"alice$ Total size: 28 bytes\n"+
			"alice$ ",
		out.String())
	assert.True(t, exiter.Requested())
}

func TestRunPlain_EOFEndsSession(t *testing.T) {
	exiter := &Exiter{}
	session := newPlainSession(exiter)
	var out bytes.Buffer

	err := RunPlain(strings.NewReader("cd dir1\ncd ..\ncd ..\n"), &out, session, exiter, "")

	require.NoError(t, err)
	assert.Equal(t, "user$ user$ user$ Already at root directory.\nuser$ \n", out.String())
	assert.False(t, exiter.Requested())
}

func TestRunPlain_NilExiter(t *testing.T) {
	executor := &MockExecutor{Outputs: map[string]string{"ls": "a\n"}}
	var out bytes.Buffer

	err := RunPlain(strings.NewReader("ls"), &out, executor, nil, "bob")

	require.NoError(t, err)
	assert.Equal(t, "bob$ a\nbob$ \n", out.String())
}
