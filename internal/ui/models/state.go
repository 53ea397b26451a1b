package models

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Entry is one executed command and its output.
type Entry struct {
	Command string
	Output  string
}

// State holds everything the views need to render a frame.
type State struct {
	Width  int
	Height int

	Username string
	Input    textinput.Model
	Viewport viewport.Model
	Entries  []Entry

	// Sidebar is the pre-rendered commands reference.
	Sidebar      string
	SidebarWidth int
}
