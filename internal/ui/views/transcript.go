package views

import (
	"strings"

	"github.com/kairoterm/kairo/internal/config"
	"github.com/kairoterm/kairo/internal/ui/models"
)

// Prompt returns "USER$ " for username, or the fallback user when blank.
func Prompt(username string) string {
	if strings.TrimSpace(username) == "" {
		username = config.FallbackUsername
	}
	return username + "$ "
}

// FormatTranscript lays out every entry as a prompt line followed by its output.
func FormatTranscript(entries []models.Entry, username string) string {
	var sb strings.Builder
	prompt := PromptStyle.Render(Prompt(username))
	for _, e := range entries {
		sb.WriteString("\n")
		sb.WriteString(prompt)
		sb.WriteString(e.Command)
		sb.WriteString("\n")
		sb.WriteString(OutputStyle.Render(e.Output))
	}
	return sb.String()
}

// RenderTranscript renders the scrolling transcript area.
func RenderTranscript(s models.State) string {
	if len(s.Entries) == 0 {
		return EmptyStyle.Render("Type a command. Try ls.")
	}
	return s.Viewport.View()
}
