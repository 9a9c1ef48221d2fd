package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Apply    key.Binding
	Preview  key.Binding
	Language key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up")),
	Down:     key.NewBinding(key.WithKeys("down")),
	Apply:    key.NewBinding(key.WithKeys("enter")),
	Preview:  key.NewBinding(key.WithKeys("v", "V")),
	Language: key.NewBinding(key.WithKeys("l", "L")),
	Help:     key.NewBinding(key.WithKeys("?")),
	Quit:     key.NewBinding(key.WithKeys("q", "Q", "ctrl+c")),
}
