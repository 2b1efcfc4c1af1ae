package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"heartbox/internal/game"
)

func newSizedModel(t *testing.T) GameModel {
	t.Helper()
	m := NewGameModel(game.NewGameManager())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, ok := updated.(GameModel)
	require.True(t, ok)
	return model
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_WindowSizeReservesStatusRows(t *testing.T) {
	m := newSizedModel(t)
	require.True(t, m.gameManager.Sized())
	// Three rows under the arena belong to the status and help lines.
	rows := strings.Split(m.gameManager.Frame(), "\n")
	require.Len(t, rows, 24-statusReservedRows)
}

func TestUpdate_QuitKeyStopsProgram(t *testing.T) {
	m := newSizedModel(t)
	updated, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.True(t, updated.(GameModel).quitting)
}

func TestUpdate_SpaceTogglesMotion(t *testing.T) {
	m := newSizedModel(t)
	require.False(t, m.gameManager.Heart.Moving())

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.gameManager.Heart.Moving())

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.False(t, m.gameManager.Heart.Moving())
}

func TestUpdate_ArrowKeysSetUnitDirection(t *testing.T) {
	cases := []struct {
		key        tea.KeyType
		dirX, dirY float64
	}{
		{tea.KeyUp, 0, -1},
		{tea.KeyDown, 0, 1},
		{tea.KeyLeft, -1, 0},
		{tea.KeyRight, 1, 0},
	}
	for _, tc := range cases {
		m := newSizedModel(t)
		m.Update(tea.KeyMsg{Type: tc.key})
		dirX, dirY := m.gameManager.Heart.Direction()
		require.Equal(t, tc.dirX, dirX)
		require.Equal(t, tc.dirY, dirY)
		require.True(t, m.gameManager.Heart.Moving())
	}
}

func TestUpdate_SpeedAndAspectKeysClamp(t *testing.T) {
	m := newSizedModel(t)

	for i := 0; i < 30; i++ {
		m.Update(keyRune(']'))
	}
	require.Equal(t, game.MaxSpeed, m.gameManager.Heart.Speed())

	for i := 0; i < 30; i++ {
		m.Update(keyRune('['))
	}
	require.Equal(t, game.MinSpeed, m.gameManager.Heart.Speed())

	for i := 0; i < 30; i++ {
		m.Update(keyRune('+'))
	}
	require.Equal(t, game.MaxAspectRatio, m.gameManager.Heart.AspectRatio())

	for i := 0; i < 30; i++ {
		m.Update(keyRune('_'))
	}
	require.Equal(t, game.MinAspectRatio, m.gameManager.Heart.AspectRatio())
}

func TestUpdate_TickAdvancesSimulation(t *testing.T) {
	m := newSizedModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	x0, y0 := m.gameManager.Heart.Position()

	_, cmd := m.Update(TickMsg(time.Now()))
	require.NotNil(t, cmd)

	x, y := m.gameManager.Heart.Position()
	require.InDelta(t, x0+game.DefaultSpeed*game.DefaultAspectRatio, x, 1e-9)
	require.Equal(t, y0, y)
}

func TestView_BeforeAndAfterSizing(t *testing.T) {
	m := NewGameModel(game.NewGameManager())
	require.Equal(t, "Loading...", m.View())

	sized := newSizedModel(t)
	updated, _ := sized.Update(TickMsg(time.Now()))
	view := updated.(GameModel).View()
	require.Contains(t, view, "Q to quit")
	require.Contains(t, view, "speed")
	require.Contains(t, view, "paused")
}
