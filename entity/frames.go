package entity

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/parameter"
)

// ErrInvalidFrameCount is returned when a character sheet does not provide every frame
var ErrInvalidFrameCount = errors.New("invalid frame count")

// AnimationSet selects the human, zombie or dead frames
type AnimationSet uint8

const (
	AnimDead AnimationSet = iota
	AnimHuman
	AnimZombie
)

// Frame layout: 2 dead, then 4 facings x 3 steps for human, then the same for zombie
const (
	deadFrames = 2
	stepFrames = 3
	setFrames  = 4 * stepFrames
)

// FrameSet lists sprite frame names in sheet order, supplied by the asset loader
type FrameSet []string

// Validate checks the sheet once at load time
func (f FrameSet) Validate() error {
	if len(f) != parameter.FrameCount {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidFrameCount, len(f), parameter.FrameCount)
	}
	for i, name := range f {
		if name == "" {
			return fmt.Errorf("%w: frame %d empty", ErrInvalidFrameCount, i)
		}
	}
	return nil
}

// Name returns the frame name at idx, empty if out of range
func (f FrameSet) Name(idx int) string {
	if idx < 0 || idx >= len(f) {
		return ""
	}
	return f[idx]
}

// FrameIndex maps an animation set, facing and step to a sheet index
func FrameIndex(set AnimationSet, facing core.Facing, step int) int {
	step = max(0, min(step, stepFrames-1))
	switch set {
	case AnimDead:
		return min(step, deadFrames-1)
	case AnimZombie:
		return deadFrames + setFrames + int(facing)*stepFrames + step
	}
	return deadFrames + int(facing)*stepFrames + step
}

// Animation returns the animation set for the current state
func (c *Character) Animation() AnimationSet {
	switch {
	case c.IsDead():
		return AnimDead
	case c.IsZombie():
		return AnimZombie
	}
	return AnimHuman
}

// FrameIndex returns the sheet index of the frame to draw
func (c *Character) FrameIndex() int {
	facing := c.Facing
	if facing == core.FacingDead {
		facing = core.FacingBackward
	}
	return FrameIndex(c.Animation(), facing, int(c.Frame))
}
