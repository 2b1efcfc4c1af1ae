package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"heartbox/internal/game"
)

// statusReservedRows is the number of rows under the arena kept for the
// status and help lines.
const statusReservedRows = 3

// GameModel is the root Bubble Tea model. It routes key presses and frame
// ticks into the game manager and renders its canvas plus the status lines.
type GameModel struct {
	gameManager *game.GameManager
	keys        keyMap
	width       int
	height      int
	quitting    bool
}

func NewGameModel(gameManager *game.GameManager) GameModel {
	return GameModel{
		gameManager: gameManager,
		keys:        newKeyMap(),
	}
}

func (m GameModel) Init() tea.Cmd {
	return tickCmd()
}
