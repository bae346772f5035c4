package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the page's key bindings. Scrolling keys are the viewport's own.
type KeyMap struct {
	Theme      key.Binding
	About      key.Binding
	Projects   key.Binding
	Experience key.Binding
	Contact    key.Binding
	Top        key.Binding
	CopyEmail  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		About: key.NewBinding(
			key.WithKeys("1", "a"),
			key.WithHelp("1/a", "about"),
		),
		Projects: key.NewBinding(
			key.WithKeys("2", "p"),
			key.WithHelp("2/p", "projects"),
		),
		Experience: key.NewBinding(
			key.WithKeys("3", "e"),
			key.WithHelp("3/e", "experience"),
		),
		Contact: key.NewBinding(
			key.WithKeys("4", "c"),
			key.WithHelp("4/c", "contact"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "top"),
		),
		CopyEmail: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy e-mail"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.CopyEmail, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.About, k.Projects, k.Experience, k.Contact},
		{k.Top, k.Theme, k.CopyEmail},
		{k.Help, k.Quit},
	}
}
