package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next  key.Binding
	Back  key.Binding
	Reset key.Binding
	Line  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", " "),
			key.WithHelp("→/n", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h", "b", "backspace"),
			key.WithHelp("←/b", "back"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "home"),
			key.WithHelp("r", "reset"),
		),
		Line: key.NewBinding(
			key.WithKeys("enter", "down", "j"),
			key.WithHelp("↵", "to next line"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Line, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
