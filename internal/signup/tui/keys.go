package tui

import "github.com/charmbracelet/bubbles/key"

// formKeyMap defines key bindings for the signup form
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Toggle, k.Submit, k.Quit},
	}
}

// alertKeyMap defines key bindings while the success alert is open
type alertKeyMap struct {
	Dismiss key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k alertKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

// FullHelp returns keybindings for the expanded help view
func (k alertKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss}}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "show/hide password"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "create account"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func newAlertKeyMap() alertKeyMap {
	return alertKeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
	}
}
