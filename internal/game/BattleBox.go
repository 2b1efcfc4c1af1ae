package game

import "github.com/charmbracelet/lipgloss"

var borderStyle = lipgloss.NewStyle().Reverse(true)

// BattleBox is the fixed rectangular arena. The frame is drawn from
// reverse-video blanks: the top and bottom rows extend one cell beyond each
// side and the vertical edges are two cells wide, so the border reads
// equally thick on both axes. It is drawn once and skipped until
// invalidated.
type BattleBox struct {
	X, Y          int
	Width, Height int
	needsRedraw   bool
}

func NewBattleBox(x, y, width, height int) *BattleBox {
	return &BattleBox{X: x, Y: y, Width: width, Height: height, needsRedraw: true}
}

func (b *BattleBox) Draw(c *Canvas) {
	if !b.needsRedraw {
		return
	}
	border := borderStyle.Render(blankCell)

	for i := -1; i <= b.Width+1; i++ {
		c.Set(b.X+i, b.Y, border)
		c.Set(b.X+i, b.Y+b.Height, border)
	}
	for i := 0; i <= b.Height; i++ {
		c.Set(b.X-1, b.Y+i, border)
		c.Set(b.X, b.Y+i, border)
		c.Set(b.X+b.Width, b.Y+i, border)
		c.Set(b.X+b.Width+1, b.Y+i, border)
	}

	b.needsRedraw = false
}

// Invalidate forces one redraw on the next Draw call. The arena is static
// during play; this fires when the terminal is resized and the box moves.
func (b *BattleBox) Invalidate() {
	b.needsRedraw = true
}

func (b *BattleBox) NeedsRedraw() bool { return b.needsRedraw }

// Interior returns the inclusive cell bounds the heart may occupy.
func (b *BattleBox) Interior() (minX, minY, maxX, maxY int) {
	return b.X + 1, b.Y + 1, b.X + b.Width - 1, b.Y + b.Height - 1
}

// Center returns the middle cell of the box.
func (b *BattleBox) Center() (int, int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}
