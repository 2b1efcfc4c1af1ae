package game

import (
	"github.com/charmbracelet/log"
)

// GameManager owns the heart, the battle box and the canvas, and advances
// the simulation one frame per Tick. It stays unsized until the terminal
// reports its dimensions through Resize; ticks before that are no-ops.
type GameManager struct {
	Heart  *Heart
	Box    *BattleBox
	canvas *Canvas
}

func NewGameManager() *GameManager {
	return &GameManager{
		Heart: NewHeart(0, 0),
		Box:   NewBattleBox(0, 0, ArenaWidth, ArenaHeight),
	}
}

// Resize rebuilds the canvas for the new window, re-centers the box in it
// and marks the border for repaint. On the first call the heart is placed
// at the center of the box; afterwards it is clamped into the new interior.
func (gm *GameManager) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	first := gm.canvas == nil
	gm.canvas = NewCanvas(width, height)

	gm.Box.Width = min(ArenaWidth, width-4)
	gm.Box.Height = min(ArenaHeight, height-2)
	gm.Box.X = (width - gm.Box.Width) / 2
	gm.Box.Y = (height - gm.Box.Height) / 2
	gm.Box.Invalidate()

	if first {
		centerX, centerY := gm.Box.Center()
		gm.Heart.SetPosition(float64(centerX), float64(centerY))
	} else {
		gm.constrainHeart()
	}
	log.Debug("arena resized",
		"width", width, "height", height,
		"box_x", gm.Box.X, "box_y", gm.Box.Y,
		"box_w", gm.Box.Width, "box_h", gm.Box.Height)
}

// Sized reports whether Resize has run at least once.
func (gm *GameManager) Sized() bool { return gm.canvas != nil }

// Tick runs one frame in fixed order: advance the heart, clamp it into the
// box interior, repaint the border if invalidated, draw the heart.
func (gm *GameManager) Tick() {
	if gm.canvas == nil {
		return
	}
	gm.Heart.Update()
	gm.constrainHeart()
	gm.Box.Draw(gm.canvas)
	gm.Heart.Draw(gm.canvas)
}

// constrainHeart clamps the heart's continuous position component-wise into
// the box interior, so the glyph can never land on or outside the border.
func (gm *GameManager) constrainHeart() {
	minX, minY, maxX, maxY := gm.Box.Interior()
	x, y := gm.Heart.Position()
	clampedX := ClampFloat(x, float64(minX), float64(maxX))
	clampedY := ClampFloat(y, float64(minY), float64(maxY))
	if clampedX != x || clampedY != y {
		gm.Heart.SetPosition(clampedX, clampedY)
	}
}

func (gm *GameManager) SetDirection(dx, dy float64) {
	gm.Heart.SetDirection(dx, dy)
}

func (gm *GameManager) ToggleMotion() {
	if gm.Heart.Moving() {
		gm.Heart.Stop()
	} else {
		gm.Heart.Start()
	}
}

// AdjustSpeed offsets the speed by delta; the heart's setter clamps the
// result into its valid range.
func (gm *GameManager) AdjustSpeed(delta float64) {
	gm.Heart.SetSpeed(gm.Heart.Speed() + delta)
}

// AdjustAspectRatio offsets the horizontal correction factor by delta,
// clamped the same way.
func (gm *GameManager) AdjustAspectRatio(delta float64) {
	gm.Heart.SetAspectRatio(gm.Heart.AspectRatio() + delta)
}

// Frame returns the rendered canvas for the view, or an empty string before
// the first Resize.
func (gm *GameManager) Frame() string {
	if gm.canvas == nil {
		return ""
	}
	return gm.canvas.Render()
}
