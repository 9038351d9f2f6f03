package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left      key.Binding
	right     key.Binding
	tab       key.Binding
	backtab   key.Binding
	submit    key.Binding
	enter     key.Binding
	esc       key.Binding
	copy      key.Binding
	buildInfo key.Binding
	quit      key.Binding
}

var keys = keyMap{
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("i")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}
