package game

import (
	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/entity"
	"github.com/lixenwraith/deadtown/event"
	"github.com/lixenwraith/deadtown/item"
	"github.com/lixenwraith/deadtown/vmath"
)

// think advances one AI character: request a path when idle, walk it, integrate movement
// Without a grid the character keeps its last intent
func (s *Simulation) think(c *entity.Character, delta float64, chase bool) {
	if !c.IsDead() && !s.grid.Empty() && c.NeedsPath() {
		s.requestPath(c, chase)
	}
	c.OnPathTick()
	c.Update(delta)
}

// requestPath targets the player's cell when close enough to chase, otherwise a random walkable cell
func (s *Simulation) requestPath(c *entity.Character, chase bool) {
	from, ok := s.grid.WorldToGrid(c.Pos.X, c.Pos.Y)
	if !ok {
		return
	}

	var to core.Point
	picked := false
	if chase && !s.player.IsDead() {
		if pc, ok := s.grid.WorldToGrid(s.player.Pos.X, s.player.Pos.Y); ok &&
			vmath.ManhattanDistance(from, pc) <= s.cfg.Roster.ProximityCells {
			to, picked = pc, true
		}
	}
	if !picked {
		cell, err := s.grid.RandomWalkableCell(s.rng, s.cfg.Map.MaxRandomAttempts)
		if err != nil {
			return
		}
		to = cell
	}

	c.FindingPath = true
	round := s.round
	grid := s.grid
	s.metrics.PathRequests.Add(1)
	s.paths.RequestPath(from, to, func(cells []core.Point) {
		if round != s.round {
			return // Roster was rebuilt; c is gone
		}
		c.FindingPath = false
		if cells == nil {
			s.metrics.PathMissing.Add(1)
			return
		}
		s.metrics.PathFound.Add(1)
		if c.IsDead() {
			return
		}
		c.SetPath(grid.ToWaypoints(cells))
	})
}

// populate spawns the zombie and NPC rosters at random walkable cells
func (s *Simulation) populate() {
	for i := 0; i < s.cfg.Roster.Zombies; i++ {
		pos, ok := s.randomWorld()
		if !ok {
			break
		}
		s.zombies = append(s.zombies, s.newCharacter(entity.RoleZombie, pos))
	}
	for i := 0; i < s.cfg.Roster.NPCs; i++ {
		pos, ok := s.randomWorld()
		if !ok {
			break
		}
		s.npcs = append(s.npcs, s.newCharacter(entity.RoleNPC, pos))
	}
}

func (s *Simulation) randomWorld() (core.Vec, bool) {
	cell, err := s.grid.RandomWalkableCell(s.rng, s.cfg.Map.MaxRandomAttempts)
	if err != nil {
		return core.Vec{}, false
	}
	return s.grid.GridToWorld(cell), true
}

// placeItem picks a random walkable cell; spawning is skipped without a grid
func (s *Simulation) placeItem() (core.Vec, bool) {
	return s.randomWorld()
}

func (s *Simulation) newCharacter(role entity.Role, pos core.Vec) *entity.Character {
	c := entity.New(role, pos, s.speeds, s.cfg.Player.Width, s.cfg.Player.Height)
	c.Drawable = s.draw.Create(KindCharacter, "", role.String())
	s.positionCharacter(c)
	return c
}

func (s *Simulation) onItemSpawn(it *item.Item) {
	it.Drawable = s.draw.Create(KindItem, "", it.Type.String())
	s.draw.Position(it.Drawable, it.Pos.X, it.Pos.Y, it.Alpha, 0)
	it.OnExpire(s.onItemExpire)
	s.push(event.EventItemSpawned, &event.ItemPayload{ID: it.ID, Type: it.Type.String(), X: it.Pos.X, Y: it.Pos.Y})
}

func (s *Simulation) onItemExpire(it *item.Item) {
	s.metrics.Expiries.Add(1)
	s.play(core.SoundExpire)
	s.push(event.EventItemExpired, &event.ItemPayload{ID: it.ID, Type: it.Type.String(), X: it.Pos.X, Y: it.Pos.Y})
}
