package views

import "github.com/kairoterm/kairo/internal/ui/models"

// RenderSidebar renders the commands reference panel.
func RenderSidebar(s models.State) string {
	style := SidebarStyle
	if s.SidebarWidth > 0 {
		style = style.Width(s.SidebarWidth)
	}
	return style.Render(s.Sidebar)
}
