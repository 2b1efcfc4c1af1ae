package game

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

var heartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(HeartColor))

// Heart is the single movable entity: a continuous position steered by a
// unit direction vector and rendered as one glyph. Position is kept in
// float64 so sub-cell displacement accumulates between frames; the terminal
// only sees the rounded cell.
type Heart struct {
	x, y                   float64
	lastDrawnX, lastDrawnY int
	directionX, directionY float64
	speed                  float64
	aspectRatio            float64
	moving                 bool
	glyph                  string
}

func NewHeart(startX, startY int) *Heart {
	return &Heart{
		x:           float64(startX),
		y:           float64(startY),
		lastDrawnX:  startX,
		lastDrawnY:  startY,
		speed:       DefaultSpeed,
		aspectRatio: DefaultAspectRatio,
		glyph:       heartStyle.Render(HeartGlyph),
	}
}

// Update advances the position by one frame. Horizontal displacement is
// multiplied by the aspect ratio; vertical displacement is not.
func (h *Heart) Update() {
	if !h.moving {
		return
	}
	h.x += h.directionX * h.speed * h.aspectRatio
	h.y += h.directionY * h.speed
}

// SetDirection normalizes (dx, dy) to unit length and starts motion.
// A zero vector is ignored: direction and the motion flag keep their
// previous values.
func (h *Heart) SetDirection(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	length := math.Sqrt(dx*dx + dy*dy)
	h.directionX = dx / length
	h.directionY = dy / length
	h.moving = true
}

// SetPosition overrides the continuous position directly. Direction and the
// motion flag are untouched; the boundary clamp relies on that.
func (h *Heart) SetPosition(x, y float64) {
	h.x = x
	h.y = y
}

// SetSpeed stores the speed clamped into [MinSpeed, MaxSpeed]. The range is
// enforced here so no caller can bypass it.
func (h *Heart) SetSpeed(speed float64) {
	h.speed = ClampFloat(speed, MinSpeed, MaxSpeed)
}

// SetAspectRatio stores the horizontal correction factor clamped into
// [MinAspectRatio, MaxAspectRatio].
func (h *Heart) SetAspectRatio(ratio float64) {
	h.aspectRatio = ClampFloat(ratio, MinAspectRatio, MaxAspectRatio)
}

func (h *Heart) Start() { h.moving = true }
func (h *Heart) Stop()  { h.moving = false }

func (h *Heart) Moving() bool { return h.moving }

func (h *Heart) Position() (float64, float64)  { return h.x, h.y }
func (h *Heart) Direction() (float64, float64) { return h.directionX, h.directionY }
func (h *Heart) Speed() float64                { return h.speed }
func (h *Heart) AspectRatio() float64          { return h.aspectRatio }

// Cell returns the rounded cell the continuous position maps to.
func (h *Heart) Cell() (int, int) {
	return int(math.Round(h.x)), int(math.Round(h.y))
}

// Draw paints the heart into the canvas. When the rounded cell changed since
// the last draw the old cell is blanked first and the cache updated; when it
// did not, the same cell is repainted in case other output overwrote it.
// Either way this touches at most two cells.
func (h *Heart) Draw(c *Canvas) {
	currentX, currentY := h.Cell()
	if currentX != h.lastDrawnX || currentY != h.lastDrawnY {
		c.Blank(h.lastDrawnX, h.lastDrawnY)
		h.lastDrawnX = currentX
		h.lastDrawnY = currentY
	}
	c.Set(currentX, currentY, h.glyph)
}
