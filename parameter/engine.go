package parameter

import "time"

// Tick Timing
const (
	// TickInterval is the host frame period (~60 FPS)
	TickInterval = 16 * time.Millisecond

	// FramesPerSecond is the delta baseline: timers decrement by delta/FramesPerSecond
	FramesPerSecond = 60.0
)

// Camera
const (
	// ViewScale is world units per terminal column in the terminal host
	ViewScale = 8.0
)
