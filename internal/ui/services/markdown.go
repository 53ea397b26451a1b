package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/kairoterm/kairo/internal/shell"
)

// MarkdownRenderer renders markdown for a terminal of the given width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour's dark style.
type GlamourRenderer struct{}

func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

func (GlamourRenderer) Render(content string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// RenderMarkdown renders content, falling back to the raw text when renderer
// is nil or fails.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) string {
	if renderer == nil || width <= 0 {
		return content
	}
	rendered, err := renderer.Render(content, width)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// CommandReference describes the supported commands as markdown.
func CommandReference() string {
	var sb strings.Builder
	sb.WriteString("# Commands\n\n")
	for _, info := range shell.Reference() {
		sb.WriteString(fmt.Sprintf("- `%s`: %s\n", info.Usage, info.Description))
	}
	return sb.String()
}
