package core

// Facing selects one of the directional animation sets
type Facing uint8

const (
	FacingForward  Facing = iota // Up the screen
	FacingLeft
	FacingRight
	FacingBackward // Down the screen
	FacingDead
)

func (f Facing) String() string {
	switch f {
	case FacingForward:
		return "forward"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	case FacingBackward:
		return "backward"
	case FacingDead:
		return "dead"
	}
	return "unknown"
}
