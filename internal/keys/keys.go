package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Slot cursor
	Left  key.Binding
	Right key.Binding

	// Painting
	Paint key.Binding

	// Selection
	Select key.Binding

	// Submission
	Submit key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Views
	Quizzes key.Binding
	Files   key.Binding

	// Help toggle
	Help key.Binding

	// Archive actions
	Share  key.Binding
	Delete key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next task"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous task"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "slot left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "slot right"),
		),
		Paint: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "paint slot"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit day"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Quizzes: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pending days"),
		),
		Files: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "timesheet files"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Share: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export file"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete file"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right, k.Paint,
		k.Submit, k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Paint, k.Submit},
		{k.Select, k.Back, k.Quit, k.Help},
		{k.Quizzes, k.Files, k.Share, k.Delete},
	}
}
