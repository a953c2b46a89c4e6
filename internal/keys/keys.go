package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Mode switching
	NextMode key.Binding
	PrevMode key.Binding

	// Help toggle
	Help key.Binding

	// Item actions
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding

	// Tracker actions
	LogSession key.Binding
	AddWatch   key.Binding
	Attach     key.Binding

	// Todo actions
	Move      key.Binding
	CycleView key.Binding
	Pomodoro  key.Binding

	// Panels
	Assistant key.Binding
	Settings  key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x", "toggle done"),
		),
		LogSession: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "log session"),
		),
		AddWatch: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "add watch time"),
		),
		Attach: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "add attachment"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move task"),
		),
		CycleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "cycle task view"),
		),
		Pomodoro: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pomodoro"),
		),
		Assistant: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "assistant"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back,
		k.Quit, k.Help, k.NextMode,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
		{k.NextMode, k.PrevMode, k.Help},
		{k.New, k.Edit, k.Delete, k.Toggle},
		{k.LogSession, k.AddWatch, k.Attach, k.Move, k.CycleView, k.Pomodoro},
		{k.Assistant, k.Settings},
	}
}
