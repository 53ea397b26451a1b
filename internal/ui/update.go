package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kairoterm/kairo/internal/ui/models"
	"github.com/kairoterm/kairo/internal/ui/services"
	"github.com/kairoterm/kairo/internal/ui/views"
)

const (
	maxSidebarWidth = 40
	// Rows taken by the input bar and its border.
	inputHeight = 2
)

// Model implements tea.Model
type Model struct {
	state models.State

	executor Executor
	exiter   *Exiter
	renderer services.MarkdownRenderer
}

func newModel(executor Executor, exiter *Exiter, username string, renderer services.MarkdownRenderer) Model {
	ti := textinput.New()
	ti.Prompt = views.PromptStyle.Render(views.Prompt(username))
	ti.Placeholder = "ls"
	ti.Focus()

	if exiter == nil {
		exiter = &Exiter{}
	}

	return Model{
		state: models.State{
			Username: username,
			Input:    ti,
			Viewport: viewport.New(80, 20),
		},
		executor: executor,
		exiter:   exiter,
		renderer: renderer,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	return views.RenderRoot(m.state)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		line := m.state.Input.Value()
		output := m.executor.Execute(line)
		m.state.Entries = append(m.state.Entries, models.Entry{Command: line, Output: output})
		m.state.Input.SetValue("")
		m.updateViewport()

		if m.exiter.Requested() {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.state.Width = width
	m.state.Height = height

	sidebarWidth := width / 3
	if sidebarWidth > maxSidebarWidth {
		sidebarWidth = maxSidebarWidth
	}
	m.state.SidebarWidth = sidebarWidth
	m.state.Sidebar = services.RenderMarkdown(services.CommandReference(), sidebarWidth, m.renderer)

	// Sidebar border and padding take two columns.
	m.state.Viewport.Width = max(width-sidebarWidth-2, 1)
	m.state.Viewport.Height = max(height-inputHeight, 1)
	m.state.Input.Width = max(m.state.Viewport.Width-len(views.Prompt(m.state.Username))-1, 1)
	m.updateViewport()
}

// updateViewport updates the viewport content
func (m *Model) updateViewport() {
	m.state.Viewport.SetContent(views.FormatTranscript(m.state.Entries, m.state.Username))
	m.state.Viewport.GotoBottom()
}
