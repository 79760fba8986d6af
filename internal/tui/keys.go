package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Up       key.Binding
	Down     key.Binding
	Back     key.Binding
	Skip     key.Binding
	Home     key.Binding
	Location key.Binding
	Retry    key.Binding
	Mute     key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
	Next: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "next"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "previous option"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "next option"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "backspace"),
		key.WithHelp("←", "back"),
	),
	Skip: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "skip intro"),
	),
	Home: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "home"),
	),
	Location: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "location"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
	Mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mute"),
	),
}
