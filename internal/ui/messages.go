package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"heartbox/internal/game"
)

// TickMsg triggers one simulation frame.
type TickMsg time.Time

// tickCmd re-arms the frame ticker. Fixed cadence, no drift correction:
// a slow frame simply delays the next one.
func tickCmd() tea.Cmd {
	return tea.Tick(game.TickDuration, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
