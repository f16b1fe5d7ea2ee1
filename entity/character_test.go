package entity

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/deadtown/core"
)

var testSpeeds = Speeds{Base: 1, Zombie: 0.5, Boost: 2, Animation: 0.1}

func newPlayer() *Character {
	return New(RolePlayer, core.Vec{X: 100, Y: 100}, testSpeeds, 16, 16)
}

const eps = 1e-9

// TestForwardMovesBySpeedTimesDelta verifies vertical displacement per tick for each speed state
func TestForwardMovesBySpeedTimesDelta(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Character)
		speed float64
	}{
		{"human", func(c *Character) {}, 1},
		{"zombie", func(c *Character) { c.SetZombie(true) }, 0.5},
		{"boosted", func(c *Character) { c.Boost(10) }, 2},
		{"boosted zombie", func(c *Character) { c.SetZombie(true); c.Boost(10) }, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newPlayer()
			tt.setup(c)
			c.Intent = Intent{Forward: true}

			for _, delta := range []float64{1, 0.5, 1.7} {
				before := c.Pos
				c.Update(delta)
				if math.Abs((before.Y-c.Pos.Y)-tt.speed*delta) > eps {
					t.Errorf("delta %v: moved %v, want %v", delta, before.Y-c.Pos.Y, tt.speed*delta)
				}
				if c.Pos.X != before.X {
					t.Errorf("x changed: %v -> %v", before.X, c.Pos.X)
				}
			}
			if !c.Moving || c.Facing != core.FacingForward {
				t.Errorf("moving=%v facing=%v", c.Moving, c.Facing)
			}
		})
	}
}

// TestFacingTieBreak verifies horizontal intent overrides vertical
func TestFacingTieBreak(t *testing.T) {
	c := newPlayer()
	c.Intent = Intent{Backward: true, Left: true}
	c.Update(1)
	if c.Facing != core.FacingLeft {
		t.Errorf("facing = %v, want left", c.Facing)
	}
	c.Intent = Intent{Backward: true}
	c.Update(1)
	if c.Facing != core.FacingBackward {
		t.Errorf("facing = %v, want backward", c.Facing)
	}
	c.Intent = Intent{}
	c.Update(1)
	if c.Moving || c.Facing != core.FacingBackward {
		t.Errorf("idle: moving=%v facing=%v", c.Moving, c.Facing)
	}
	c.Intent = Intent{Left: true, Right: true}
	c.Update(1)
	if c.Moving {
		t.Error("opposing intents should cancel")
	}
}

// TestHitWindow verifies the invulnerability window lasts 60 ticks at delta 1
func TestHitWindow(t *testing.T) {
	c := newPlayer()
	if !c.Hit(1) {
		t.Fatal("first hit should land")
	}
	for tick := 1; tick <= 30; tick++ {
		c.Update(1)
	}
	if c.Hit(1) {
		t.Error("hit at tick 30 should be ignored")
	}
	if c.Alpha < 0.4 || c.Alpha > 1 {
		t.Errorf("blink alpha = %v outside [0.4,1]", c.Alpha)
	}
	for tick := 31; tick <= 60; tick++ {
		c.Update(1)
	}
	if c.HitTimer > eps {
		t.Errorf("hit timer = %v after 60 ticks", c.HitTimer)
	}
	c.Update(1)
	if c.Alpha != 1 {
		t.Errorf("alpha = %v after window, want 1", c.Alpha)
	}
	if !c.Hit(1) {
		t.Error("hit after window should land")
	}
}

// TestBoostAndInfectionExpire verifies timed states end on their own
func TestBoostAndInfectionExpire(t *testing.T) {
	c := newPlayer()
	c.Boost(0.5)
	c.Infect(1)
	if !c.Boosted || !c.IsZombie() {
		t.Fatal("boost and infection should be active")
	}
	for i := 0; i < 31; i++ {
		c.Update(1)
	}
	if c.Boosted {
		t.Error("boost should have expired")
	}
	if !c.IsZombie() {
		t.Error("infection should still be active")
	}
	for i := 0; i < 30; i++ {
		c.Update(1)
	}
	if c.IsZombie() {
		t.Error("infection should have expired")
	}
}

// TestInfectOnlyPlayer verifies NPCs are not turned by infection items
func TestInfectOnlyPlayer(t *testing.T) {
	n := New(RoleNPC, core.Vec{}, testSpeeds, 16, 16)
	n.Infect(10)
	if n.IsZombie() {
		t.Error("npc infected by item")
	}
}

// TestToggleCycle verifies Human -> Zombie -> Dead -> Human
func TestToggleCycle(t *testing.T) {
	c := newPlayer()
	c.ToggleState()
	if !c.IsZombie() || c.IsDead() {
		t.Fatalf("after 1st toggle: zombie=%v dead=%v", c.IsZombie(), c.IsDead())
	}
	c.ToggleState()
	if !c.IsDead() || c.Facing != core.FacingDead {
		t.Fatalf("after 2nd toggle: dead=%v facing=%v", c.IsDead(), c.Facing)
	}
	c.ToggleState()
	if c.IsDead() || c.IsZombie() {
		t.Fatalf("after 3rd toggle: zombie=%v dead=%v", c.IsZombie(), c.IsDead())
	}
}

// TestPromoteOneWay verifies NPC promotion and that zombies never revert
func TestPromoteOneWay(t *testing.T) {
	n := New(RoleNPC, core.Vec{}, testSpeeds, 16, 16)
	if !n.Promote() || n.Role != RoleZombie {
		t.Fatal("npc should promote")
	}
	if n.Promote() {
		t.Error("second promotion should report false")
	}
	n.SetZombie(false)
	if !n.IsZombie() {
		t.Error("zombie reverted")
	}
}

// TestDeadDoesNotMove verifies dead characters ignore intents
func TestDeadDoesNotMove(t *testing.T) {
	c := newPlayer()
	c.SetDead()
	c.Intent = Intent{Forward: true}
	before := c.Pos
	c.Update(1)
	if c.Pos != before || c.Moving {
		t.Errorf("dead moved: %v -> %v", before, c.Pos)
	}
	if c.Hit(1) {
		t.Error("dead character took a hit")
	}
}

// TestPathFollowing verifies waypoints are consumed in order and the path clears at the end
func TestPathFollowing(t *testing.T) {
	c := New(RoleZombie, core.Vec{X: 0, Y: 0}, testSpeeds, 16, 16)
	c.FindingPath = true
	c.SetPath([]core.Vec{{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 16, Y: 16}})
	if c.FindingPath {
		t.Fatal("SetPath should clear FindingPath")
	}

	for i := 0; i < 500 && (c.CurrentPath != nil || c.CurrentTarget != nil); i++ {
		c.OnPathTick()
		c.Update(1)
	}
	if c.CurrentPath != nil || c.CurrentTarget != nil {
		t.Fatal("path not consumed")
	}
	if math.Round(c.Pos.X) != 16 || math.Round(c.Pos.Y) != 16 {
		t.Errorf("ended at %v, want (16,16)", c.Pos)
	}
	if !c.NeedsPath() {
		t.Error("character should be eligible for a new path")
	}
}

// TestBoostedPathDoesNotOvershoot verifies fast characters still land on waypoints
func TestBoostedPathDoesNotOvershoot(t *testing.T) {
	c := New(RoleNPC, core.Vec{X: 0.3, Y: 0}, testSpeeds, 16, 16)
	c.Boost(100)
	c.SetPath([]core.Vec{{X: 15, Y: 0}})
	for i := 0; i < 50 && (c.CurrentPath != nil || c.CurrentTarget != nil); i++ {
		c.OnPathTick()
		c.Update(1.3)
	}
	if c.CurrentTarget != nil {
		t.Fatalf("never arrived, at %v", c.Pos)
	}
}

// TestFractionalWaypointReached verifies a waypoint off the integer lattice is consumed once steering stops
func TestFractionalWaypointReached(t *testing.T) {
	c := New(RoleZombie, core.Vec{X: -7.5, Y: 0}, testSpeeds, 16, 16)
	c.SetZombie(true)
	c.SetPath([]core.Vec{{X: 8.5, Y: 0}})

	for i := 0; i < 1000 && !c.NeedsPath(); i++ {
		c.OnPathTick()
		c.Update(1.2)
	}
	if c.CurrentTarget != nil || !c.NeedsPath() {
		t.Fatalf("stuck at %v target=%v intent=%+v", c.Pos, c.CurrentTarget, c.Intent)
	}
	if math.Abs(c.Pos.X-8.5) >= 0.5 {
		t.Errorf("x = %v, want within 0.5 of 8.5", c.Pos.X)
	}
}

// TestEmptyPathClears verifies a nil result leaves the character eligible to retry
func TestEmptyPathClears(t *testing.T) {
	c := New(RoleZombie, core.Vec{}, testSpeeds, 16, 16)
	c.FindingPath = true
	c.SetPath(nil)
	if c.FindingPath || c.CurrentPath != nil || !c.NeedsPath() {
		t.Error("nil path should clear the request guard")
	}
}

// TestIDPrefix verifies IDs are tagged by role
func TestIDPrefix(t *testing.T) {
	if id := New(RoleZombie, core.Vec{}, testSpeeds, 1, 1).ID; !strings.HasPrefix(id, "z_") || len(id) != 10 {
		t.Errorf("zombie id = %q", id)
	}
	a := newPlayer()
	b := newPlayer()
	if a.ID == b.ID {
		t.Error("ids collide")
	}
}

// TestFrameSetValidate verifies sheet size checks
func TestFrameSetValidate(t *testing.T) {
	frames := make(FrameSet, 26)
	for i := range frames {
		frames[i] = "f"
	}
	if err := frames.Validate(); err != nil {
		t.Errorf("valid sheet: %v", err)
	}
	if err := frames[:25].Validate(); !errors.Is(err, ErrInvalidFrameCount) {
		t.Errorf("short sheet err = %v", err)
	}
	if err := (FrameSet{}).Validate(); !errors.Is(err, ErrInvalidFrameCount) {
		t.Errorf("empty sheet err = %v", err)
	}
}

// TestFrameIndexLayout verifies sheet indices stay in range and do not collide
func TestFrameIndexLayout(t *testing.T) {
	seen := map[int]bool{}
	for _, set := range []AnimationSet{AnimHuman, AnimZombie} {
		for f := core.FacingForward; f <= core.FacingBackward; f++ {
			for step := 0; step < 3; step++ {
				idx := FrameIndex(set, f, step)
				if idx < 2 || idx >= 26 || seen[idx] {
					t.Errorf("set %d facing %v step %d -> %d", set, f, step, idx)
				}
				seen[idx] = true
			}
		}
	}
	if FrameIndex(AnimDead, core.FacingLeft, 5) != 1 {
		t.Error("dead frame index out of range")
	}
}
