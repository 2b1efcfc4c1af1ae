package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model: the arena frame with one status line and two
// instruction lines underneath.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.gameManager.Sized() {
		return "Loading..."
	}

	var view strings.Builder
	view.WriteString(m.gameManager.Frame())
	view.WriteString("\n")
	view.WriteString(statusStyle.Render(m.statusLine()))
	view.WriteString("\n")
	view.WriteString(helpStyle.Render("Arrow keys to set direction, Space to stop/start, [ ] speed, + - aspect"))
	view.WriteString("\n")
	view.WriteString(helpStyle.Render("Q to quit"))
	return view.String()
}

func (m GameModel) statusLine() string {
	heart := m.gameManager.Heart
	state := "paused"
	if heart.Moving() {
		state = "moving"
	}
	x, y := heart.Position()
	return fmt.Sprintf(" pos (%.1f, %.1f)  speed %.2f  aspect %.1f  %s",
		x, y, heart.Speed(), heart.AspectRatio(), state)
}
