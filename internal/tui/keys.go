package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Search    key.Binding
	Submit    key.Binding
	Author    key.Binding
	Genre     key.Binding
	Reset     key.Binding
	More      key.Binding
	Open      key.Binding
	Back      key.Binding
	Theme     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "title")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Author:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "author")),
		Genre:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "genre")),
		Reset:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		More:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "show more")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// help renders the bindings of a mode as "key action" pairs.
func help(bindings ...key.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, h.Key+" "+h.Desc)
	}
	return out
}
