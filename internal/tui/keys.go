package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	quit     key.Binding
	logout   key.Binding
	theme    key.Binding
	analyze  key.Binding
	registry key.Binding
	history  key.Binding
	settings key.Binding
	password key.Binding
	clear    key.Binding
	copy     key.Binding
	refresh  key.Binding
	wipe     key.Binding
	yes      key.Binding
	no       key.Binding
	about    key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	theme:    key.NewBinding(key.WithKeys("ctrl+t")),
	analyze:  key.NewBinding(key.WithKeys("ctrl+s")),
	registry: key.NewBinding(key.WithKeys("ctrl+g")),
	history:  key.NewBinding(key.WithKeys("ctrl+o")),
	settings: key.NewBinding(key.WithKeys("ctrl+k")),
	password: key.NewBinding(key.WithKeys("ctrl+p")),
	clear:    key.NewBinding(key.WithKeys("ctrl+x")),
	copy:     key.NewBinding(key.WithKeys("c")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	wipe:     key.NewBinding(key.WithKeys("x")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
	about:    key.NewBinding(key.WithKeys("v")),
}
