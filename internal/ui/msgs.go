package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiru-app/chiru/internal/core"
)

// ApplyMsg asks the root model to run a command through the reducer and
// persist the result. Every document change in the UI flows through this
// message.
type ApplyMsg struct {
	Cmd core.Command
}

// Dispatch wraps a command in a tea.Cmd for subviews to return.
func Dispatch(cmd core.Command) tea.Cmd {
	return func() tea.Msg { return ApplyMsg{Cmd: cmd} }
}
