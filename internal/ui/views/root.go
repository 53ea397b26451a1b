package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kairoterm/kairo/internal/ui/models"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State) string {
	terminal := lipgloss.JoinVertical(lipgloss.Left,
		RenderTranscript(s),
		RenderInput(s),
	)
	if s.Sidebar == "" {
		return terminal
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, RenderSidebar(s), terminal)
}
