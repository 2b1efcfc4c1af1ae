package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"heartbox/internal/game"
)

// Update implements tea.Model. Pending key messages are always delivered
// before the next TickMsg, so input is fully drained ahead of each
// simulation frame.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.gameManager.Resize(msg.Width, msg.Height-statusReservedRows)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.gameManager.Tick()
		return m, tickCmd()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.gameManager.ToggleMotion()
	case key.Matches(msg, m.keys.Up):
		m.gameManager.SetDirection(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.gameManager.SetDirection(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.gameManager.SetDirection(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.gameManager.SetDirection(1, 0)
	case key.Matches(msg, m.keys.SpeedUp):
		m.gameManager.AdjustSpeed(game.SpeedStep)
	case key.Matches(msg, m.keys.SpeedDown):
		m.gameManager.AdjustSpeed(-game.SpeedStep)
	case key.Matches(msg, m.keys.AspectUp):
		m.gameManager.AdjustAspectRatio(game.AspectStep)
	case key.Matches(msg, m.keys.AspectDown):
		m.gameManager.AdjustAspectRatio(-game.AspectStep)
	}
	return m, nil
}
