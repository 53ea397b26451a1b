package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockMarkdownRenderer struct {
	RenderFunc func(string, int) (string, error)
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func TestCommandReference_ListsEveryCommand(t *testing.T) {
	ref := CommandReference()

	for _, usage := range []string{"`ls`", "`cd <dir|..|/>`", "`exit`", "`head <file>`", "`cp <source> <destination>`", "`du`"} {
		assert.Contains(t, ref, usage)
	}
}

func TestRenderMarkdown_UsesRenderer(t *testing.T) {
	renderer := &MockMarkdownRenderer{RenderFunc: func(s string, w int) (string, error) {
		return "rendered\n\n", nil
	}}

	assert.Equal(t, "rendered", RenderMarkdown("# hi", 40, renderer))
}

func TestRenderMarkdown_FallsBackOnError(t *testing.T) {
	renderer := &MockMarkdownRenderer{RenderFunc: func(string, int) (string, error) {
		return "", errors.New("boom")
	}}

	assert.Equal(t, "# hi", RenderMarkdown("# hi", 40, renderer))
	assert.Equal(t, "# hi", RenderMarkdown("# hi", 40, nil))
	assert.Equal(t, "# hi", RenderMarkdown("# hi", 0, &MockMarkdownRenderer{}))
}

func TestGlamourRenderer_Render(t *testing.T) {
	out, err := NewGlamourRenderer().Render(CommandReference(), 60)

	require.NoError(t, err)
	assert.Contains(t, out, "Commands")
	assert.Contains(t, out, "head")
}
