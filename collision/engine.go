// Package collision resolves per-tick overlaps between characters, items and the map
package collision

import (
	"github.com/lixenwraith/deadtown/config"
	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/entity"
	"github.com/lixenwraith/deadtown/item"
	"github.com/lixenwraith/deadtown/tilemap"
	"github.com/lixenwraith/deadtown/vmath"
)

// maxPushPasses bounds map correction when the player touches several blocked cells
const maxPushPasses = 4

// Toggles enables each check independently
type Toggles struct {
	PlayerZombies bool
	PlayerMap     bool
	PlayerItems   bool
	NPCZombies    bool
}

// Report is the outcome of one Resolve pass; indices refer to the slices passed in
type Report struct {
	ZombieHit  bool
	HitBy      int // Index of the zombie that landed the hit, -1 if none
	Corrected  bool
	Pickups    []int
	Promotions []int
}

// Engine runs the enabled checks; it never changes health, score or rosters itself
type Engine struct {
	Toggles     Toggles
	PickupInset float64

	rects []core.Rect
}

// NewEngine builds an engine from config
func NewEngine(c config.CollisionConfig) *Engine {
	return &Engine{
		Toggles: Toggles{
			PlayerZombies: c.PlayerZombies,
			PlayerMap:     c.PlayerMap,
			PlayerItems:   c.PlayerItems,
			NPCZombies:    c.NPCZombies,
		},
		PickupInset: c.PickupInset,
	}
}

// Intersects reports strict AABB overlap
func Intersects(a, b core.Rect) bool {
	return vmath.Intersects(a, b)
}

// Resolve runs every enabled check in order: map correction first so hits use the corrected position
func (e *Engine) Resolve(player *entity.Character, zombies, npcs []*entity.Character, items []*item.Item, grid *tilemap.Grid) Report {
	r := Report{HitBy: -1}
	if player != nil && !player.IsDead() {
		if e.Toggles.PlayerMap {
			r.Corrected = e.PlayerMap(player, grid)
		}
		if e.Toggles.PlayerZombies {
			r.HitBy = e.PlayerZombies(player, zombies)
			r.ZombieHit = r.HitBy >= 0
		}
		if e.Toggles.PlayerItems {
			r.Pickups = e.PlayerItems(player, items)
		}
	}
	if e.Toggles.NPCZombies {
		r.Promotions = e.NPCZombies(npcs, zombies)
	}
	return r
}

// PlayerZombies returns the index of the first zombie overlapping the player, or -1
// Nothing is reported while the player is invulnerable, so at most one hit lands per tick
func (e *Engine) PlayerZombies(player *entity.Character, zombies []*entity.Character) int {
	if player.HitTimer > 0 {
		return -1
	}
	pb := player.Bounds()
	for i, z := range zombies {
		if z == nil || z.IsDead() {
			continue
		}
		if Intersects(pb, z.Bounds()) {
			return i
		}
	}
	return -1
}

// PlayerMap pushes the player out of blocked cells; returns true if the position changed
// Each pass resolves the deepest overlap along its minimum-translation axis
func (e *Engine) PlayerMap(player *entity.Character, grid *tilemap.Grid) bool {
	if grid.Empty() {
		return false
	}
	moved := false
	for pass := 0; pass < maxPushPasses; pass++ {
		pb := player.Bounds()
		e.rects = grid.BlockedRectsIn(pb, e.rects[:0])
		if len(e.rects) == 0 {
			break
		}

		best := core.Vec{}
		bestArea := 0.0
		for _, cr := range e.rects {
			if area := overlapArea(pb, cr); area > bestArea {
				bestArea = area
				best = vmath.Penetration(pb, cr)
			}
		}
		if best == (core.Vec{}) {
			break
		}
		player.Pos = player.Pos.Add(best)
		moved = true
	}
	return moved
}

func overlapArea(a, b core.Rect) float64 {
	w := min(a.Right(), b.Right()) - max(a.X, b.X)
	h := min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// PlayerItems returns indices of items the player's body touches, tested against inset item bounds
func (e *Engine) PlayerItems(player *entity.Character, items []*item.Item) []int {
	var out []int
	pb := player.Bounds()
	for i, it := range items {
		if it == nil || it.Done() {
			continue
		}
		if Intersects(pb, it.PickupBounds(e.PickupInset)) {
			out = append(out, i)
		}
	}
	return out
}

// NPCZombies returns indices of NPCs touched by any zombie, each at most once
func (e *Engine) NPCZombies(npcs, zombies []*entity.Character) []int {
	var out []int
	for i, n := range npcs {
		if n == nil || n.IsDead() || n.Role != entity.RoleNPC {
			continue
		}
		nb := n.Bounds()
		for _, z := range zombies {
			if z == nil || z.IsDead() {
				continue
			}
			if Intersects(nb, z.Bounds()) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}
