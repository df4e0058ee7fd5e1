package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings. Printable keys are left to
// the expression input.
type KeyMap struct {
	Submit     key.Binding
	Cancel     key.Binding
	Quit       key.Binding
	Prev       key.Binding
	Next       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	ClearInput key.Binding
	Clear      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "evaluate"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "recall"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		ClearInput: key.NewBinding(
			key.WithKeys("ctrl+u"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Prev, k.PageUp, k.Cancel, k.Clear, k.Quit}
}
