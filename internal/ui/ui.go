// Package ui hosts the interactive console around a shell session.
package ui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kairoterm/kairo/internal/ui/services"
)

// Executor runs one command line and returns its output.
type Executor interface {
	Execute(line string) string
}

// Exiter records an exit request raised by a command. The console stops once
// the current command has been rendered.
type Exiter struct {
	requested atomic.Bool
	code      atomic.Int32
}

// Exit marks the session as finished with code.
func (e *Exiter) Exit(code int) {
	e.code.Store(int32(code))
	e.requested.Store(true)
}

func (e *Exiter) Requested() bool { return e.requested.Load() }

func (e *Exiter) Code() int { return int(e.code.Load()) }

// UI runs the console using Bubble Tea
type UI struct {
	program *tea.Program
}

// NewUI creates a new Bubble Tea UI
func NewUI(executor Executor, exiter *Exiter, username string, renderer services.MarkdownRenderer) *UI {
	model := newModel(executor, exiter, username, renderer)
	return &UI{program: tea.NewProgram(model, tea.WithAltScreen())}
}

// Start runs the program until the user exits or presses ctrl+c.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}
