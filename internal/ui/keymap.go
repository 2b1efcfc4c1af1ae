package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines every key binding the game reacts to.
type keyMap struct {
	Quit       key.Binding
	Toggle     key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	AspectUp   key.Binding
	AspectDown key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "stop/start"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "slower"),
		),
		AspectUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wider"),
		),
		AspectDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "narrower"),
		),
	}
}
