package game

import "time"

const (
	// ~60 FPS frame cadence. No drift correction; the tick command simply
	// re-arms itself after each frame.
	TickDuration = time.Second / 60

	DefaultSpeed = 0.3
	MinSpeed     = 0.05
	MaxSpeed     = 1.0
	SpeedStep    = 0.05

	// Terminal cells are roughly twice as tall as they are wide, so
	// horizontal displacement gets a multiplier to keep perceived motion
	// isotropic.
	DefaultAspectRatio = 2.0
	MinAspectRatio     = 1.0
	MaxAspectRatio     = 5.0
	AspectStep         = 0.2

	ArenaWidth  = 40
	ArenaHeight = 16

	HeartGlyph = "♥"
	HeartColor = "9" // red
)
