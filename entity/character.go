// Package entity models the player, NPCs and zombies as one tagged character type
package entity

import (
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/deadtown/config"
	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/parameter"
	"github.com/lixenwraith/deadtown/vmath"
)

// Role tags what controls a character
type Role uint8

const (
	RolePlayer Role = iota
	RoleNPC
	RoleZombie
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleNPC:
		return "npc"
	case RoleZombie:
		return "zombie"
	}
	return "unknown"
}

// Health is terminal once Dead unless explicitly revived
type Health uint8

const (
	Alive Health = iota
	Dead
)

// Intent is the per-axis movement request for the current tick
type Intent struct {
	Forward, Backward, Left, Right bool
}

// Any reports whether any direction is requested
func (i Intent) Any() bool {
	return i.Forward || i.Backward || i.Left || i.Right
}

// Axes returns x (right-left) and y (forward-backward) in {-1,0,1}
func (i Intent) Axes() (x, y int) {
	if i.Right {
		x++
	}
	if i.Left {
		x--
	}
	if i.Forward {
		y++
	}
	if i.Backward {
		y--
	}
	return x, y
}

// Speeds holds movement tuning shared by all characters
type Speeds struct {
	Base, Zombie, Boost float64
	Animation           float64
}

// SpeedsFrom reads movement tuning from config
func SpeedsFrom(m config.MovementConfig) Speeds {
	return Speeds{Base: m.BaseSpeed, Zombie: m.ZombieSpeed, Boost: m.BoostSpeed, Animation: m.AnimationSpeed}
}

// Character is the single entity type for player, NPCs and zombies
type Character struct {
	ID     string
	Role   Role
	Health Health

	Pos           core.Vec
	Width, Height float64
	Intent        Intent
	Speeds        Speeds

	Boosted     bool
	BoostTimer  float64
	Infected    bool // Player only: zombie until InfectTimer runs out
	InfectTimer float64
	HitTimer    float64 // >0: invulnerable and blinking

	FindingPath   bool // Request in flight
	CurrentPath   []core.Vec
	CurrentTarget *core.Vec

	Facing core.Facing
	Moving bool
	Alpha  float64
	Frame  float64 // Animation step in [0,3)

	// Drawable is the handle issued by the drawable sink, 0 = none
	Drawable int

	turned  bool // Player toggled into zombie state
	elapsed float64
}

// New creates a live character at pos with a random ID
func New(role Role, pos core.Vec, speeds Speeds, width, height float64) *Character {
	return &Character{
		ID:     idPrefix(role) + uuid.NewString()[:8],
		Role:   role,
		Pos:    pos,
		Width:  width,
		Height: height,
		Speeds: speeds,
		Facing: core.FacingBackward,
		Alpha:  1,
	}
}

func idPrefix(r Role) string {
	switch r {
	case RolePlayer:
		return "p_"
	case RoleNPC:
		return "n_"
	}
	return "z_"
}

// IsZombie reports zombie behaviour: the zombie role, or a turned or infected player
func (c *Character) IsZombie() bool {
	return c.Role == RoleZombie || c.turned || c.Infected
}

// IsDead reports the terminal health state
func (c *Character) IsDead() bool {
	return c.Health == Dead
}

// Speed returns the current movement speed
func (c *Character) Speed() float64 {
	switch {
	case c.Boosted:
		return c.Speeds.Boost
	case c.IsZombie():
		return c.Speeds.Zombie
	}
	return c.Speeds.Base
}

// Bounds returns the AABB centred on the position
func (c *Character) Bounds() core.Rect {
	return core.RectAround(c.Pos, c.Width, c.Height)
}

// Update integrates movement and advances timers by one frame-delta
func (c *Character) Update(delta float64) {
	dt := delta / parameter.FramesPerSecond

	if c.IsDead() {
		c.Moving = false
		c.Facing = core.FacingDead
		c.Frame = 0
	} else {
		x, y := c.Intent.Axes()
		c.Moving = x != 0 || y != 0

		if c.Moving {
			step := c.Speed() * delta
			dx := step * float64(x)
			dy := -step * float64(y) // Forward is up the screen
			if c.CurrentTarget != nil {
				// Path steering stops on the waypoint instead of oscillating around it
				dx = clampToward(dx, c.CurrentTarget.X-c.Pos.X)
				dy = clampToward(dy, c.CurrentTarget.Y-c.Pos.Y)
			}
			c.Pos.X += dx
			c.Pos.Y += dy

			// Vertical first, horizontal overrides
			switch {
			case y > 0:
				c.Facing = core.FacingForward
			case y < 0:
				c.Facing = core.FacingBackward
			}
			switch {
			case x > 0:
				c.Facing = core.FacingRight
			case x < 0:
				c.Facing = core.FacingLeft
			}

			c.Frame = math.Mod(c.Frame+c.Speeds.Animation*delta, 3)
		} else {
			c.Frame = 0
			if c.Facing == core.FacingDead {
				c.Facing = core.FacingBackward
			}
		}
	}

	if c.HitTimer > 0 {
		c.HitTimer = math.Max(c.HitTimer-dt, 0)
	}
	if c.Boosted {
		c.BoostTimer -= dt
		if c.BoostTimer <= 0 {
			c.Boosted = false
			c.BoostTimer = 0
		}
	}
	if c.Infected {
		c.InfectTimer -= dt
		if c.InfectTimer <= 0 {
			c.Infected = false
			c.InfectTimer = 0
		}
	}

	c.elapsed += dt
	if c.HitTimer > 0 {
		c.Alpha = vmath.Pulse(c.elapsed, parameter.BlinkFrequency, parameter.BlinkMinAlpha)
	} else {
		c.Alpha = 1
	}
}

// clampToward limits a step so it does not pass remaining
func clampToward(step, remaining float64) float64 {
	if step > 0 && remaining >= 0 && step > remaining {
		return remaining
	}
	if step < 0 && remaining <= 0 && step < remaining {
		return remaining
	}
	return step
}

// arriveBand is the per-axis offset under which a waypoint counts as reached
const arriveBand = 0.5

// FollowPosition sets intents toward a world point, each axis independently
// Offsets under arriveBand count as arrived on that axis
func (c *Character) FollowPosition(tx, ty float64) {
	dx := tx - c.Pos.X
	dy := ty - c.Pos.Y
	c.Intent = Intent{
		Right:    dx >= arriveBand,
		Left:     dx <= -arriveBand,
		Backward: dy >= arriveBand,
		Forward:  dy <= -arriveBand,
	}
}

// Arrived reports whether p is inside the steering dead-band of FollowPosition
// Matches the FollowPosition dead-band, so a waypoint with no steering left is reached
func (c *Character) Arrived(p core.Vec) bool {
	return math.Abs(p.X-c.Pos.X) < arriveBand && math.Abs(p.Y-c.Pos.Y) < arriveBand
}

// NeedsPath reports eligibility for a new path request
func (c *Character) NeedsPath() bool {
	return !c.IsDead() && !c.FindingPath && c.CurrentPath == nil && c.CurrentTarget == nil
}

// SetPath stores a resolved path; an empty path clears it
func (c *Character) SetPath(path []core.Vec) {
	c.FindingPath = false
	if len(path) == 0 {
		c.CurrentPath = nil
		return
	}
	c.CurrentPath = path
	c.CurrentTarget = nil
}

// OnPathTick advances along the current path and steers toward the active waypoint
func (c *Character) OnPathTick() {
	if c.IsDead() {
		return
	}
	if c.CurrentTarget == nil {
		if len(c.CurrentPath) == 0 {
			c.CurrentPath = nil
			return
		}
		next := c.CurrentPath[0]
		c.CurrentPath = c.CurrentPath[1:]
		c.CurrentTarget = &next
	}

	if c.Arrived(*c.CurrentTarget) {
		c.CurrentTarget = nil
		if len(c.CurrentPath) == 0 {
			c.CurrentPath = nil
			c.Intent = Intent{}
		}
		return
	}
	c.FollowPosition(c.CurrentTarget.X, c.CurrentTarget.Y)
}

// ClearPath drops the current path and target, keeping any in-flight request guard
func (c *Character) ClearPath() {
	c.CurrentPath = nil
	c.CurrentTarget = nil
	c.Intent = Intent{}
}

// Hit starts the invulnerability window; returns false while already invulnerable or dead
func (c *Character) Hit(duration float64) bool {
	if c.IsDead() || c.HitTimer > 0 {
		return false
	}
	c.HitTimer = duration
	return true
}

// Boost starts or extends the speed boost
func (c *Character) Boost(duration float64) {
	if duration <= 0 {
		return
	}
	c.Boosted = true
	c.BoostTimer = math.Max(c.BoostTimer, duration)
}

// Infect turns the player into a zombie for duration; other roles are unaffected
func (c *Character) Infect(duration float64) {
	if c.Role != RolePlayer || duration <= 0 || c.IsDead() {
		return
	}
	c.Infected = true
	c.InfectTimer = math.Max(c.InfectTimer, duration)
}

// SetZombie switches the player's zombie state; NPCs are promoted, zombies never revert
func (c *Character) SetZombie(on bool) {
	switch c.Role {
	case RolePlayer:
		c.turned = on
		if !on {
			c.Infected = false
			c.InfectTimer = 0
		}
	case RoleNPC:
		if on {
			c.Promote()
		}
	}
}

// Promote converts an NPC into a zombie in place; returns false if not an NPC
func (c *Character) Promote() bool {
	if c.Role != RoleNPC {
		return false
	}
	c.Role = RoleZombie
	return true
}

// SetDead stops the character for good
func (c *Character) SetDead() {
	c.Health = Dead
	c.Intent = Intent{}
	c.Moving = false
	c.Facing = core.FacingDead
	c.ClearPath()
}

// Revive returns a dead character to life as a human
func (c *Character) Revive() {
	c.Health = Alive
	c.Facing = core.FacingBackward
	c.SetZombie(false)
}

// ToggleState cycles the player Human -> Zombie -> Dead -> Human
func (c *Character) ToggleState() {
	switch {
	case c.IsDead():
		c.Revive()
	case c.IsZombie():
		c.SetDead()
	default:
		c.SetZombie(true)
	}
}

// Reset restores a character to a fresh live human at pos
func (c *Character) Reset(pos core.Vec) {
	c.Health = Alive
	c.Pos = pos
	c.Intent = Intent{}
	c.Boosted, c.BoostTimer = false, 0
	c.Infected, c.InfectTimer = false, 0
	c.HitTimer = 0
	c.FindingPath = false
	c.CurrentPath, c.CurrentTarget = nil, nil
	c.Facing = core.FacingBackward
	c.Moving = false
	c.Alpha = 1
	c.Frame = 0
	c.turned = false
	c.elapsed = 0
}
