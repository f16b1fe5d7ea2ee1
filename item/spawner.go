package item

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/vmath"
)

var (
	// ErrOverlappingBands is returned when two spawn windows share any value
	ErrOverlappingBands = errors.New("overlapping spawn bands")
	// ErrBandOutOfRange is returned for a window reaching outside [0,1)
	ErrBandOutOfRange = errors.New("spawn band outside [0,1)")
)

// Band is the half-open window [Lo, Hi) of the per-tick draw that spawns Type
type Band struct {
	Type   Type
	Lo, Hi float64
}

// Contains reports whether r falls in the window
func (b Band) Contains(r float64) bool {
	return r >= b.Lo && r < b.Hi
}

// Spawner decides per tick whether an item appears
type Spawner struct {
	bands []Band // Type order, which is the precedence order
	specs [TypeCount]Spec
	known [TypeCount]bool
}

// NewSpawner validates bands; empty windows disable spawning of that type
func NewSpawner(specs []Spec) (*Spawner, error) {
	s := &Spawner{}
	for _, sp := range specs {
		if sp.Type >= TypeCount {
			return nil, fmt.Errorf("%w: %d", ErrUnknownType, sp.Type)
		}
		s.specs[sp.Type] = sp
		s.known[sp.Type] = true
		if sp.BandHi <= sp.BandLo {
			continue
		}
		if sp.BandLo < 0 || sp.BandHi > 1 {
			return nil, fmt.Errorf("%w: %s [%v,%v)", ErrBandOutOfRange, sp.Type, sp.BandLo, sp.BandHi)
		}
		s.bands = append(s.bands, Band{Type: sp.Type, Lo: sp.BandLo, Hi: sp.BandHi})
	}
	sort.SliceStable(s.bands, func(a, b int) bool { return s.bands[a].Type < s.bands[b].Type })

	byLo := make([]Band, len(s.bands))
	copy(byLo, s.bands)
	sort.Slice(byLo, func(a, b int) bool { return byLo[a].Lo < byLo[b].Lo })
	for i := 1; i < len(byLo); i++ {
		if byLo[i].Lo < byLo[i-1].Hi {
			return nil, fmt.Errorf("%w: %s [%v,%v) and %s [%v,%v)", ErrOverlappingBands,
				byLo[i-1].Type, byLo[i-1].Lo, byLo[i-1].Hi, byLo[i].Type, byLo[i].Lo, byLo[i].Hi)
		}
	}
	return s, nil
}

// Bands returns the active windows in precedence order
func (s *Spawner) Bands() []Band {
	return s.bands
}

// Spec returns the tuning for t
func (s *Spawner) Spec(t Type) (Spec, bool) {
	if t >= TypeCount {
		return Spec{}, false
	}
	return s.specs[t], s.known[t]
}

// Roll maps one draw in [0,1) to at most one type, first band wins
func (s *Spawner) Roll(r float64) (Type, bool) {
	for _, b := range s.bands {
		if b.Contains(r) {
			return b.Type, true
		}
	}
	return 0, false
}

// Placer picks a world position for a new item; false skips the spawn
type Placer func() (core.Vec, bool)

// Roster owns live items
type Roster struct {
	spawner       *Spawner
	capacity      int
	width, height float64
	items         []*Item
	onSpawn       func(*Item)
}

// NewRoster creates an empty roster; capacity <= 0 means unlimited
func NewRoster(spawner *Spawner, capacity int, width, height float64) *Roster {
	return &Roster{spawner: spawner, capacity: capacity, width: width, height: height}
}

// OnSpawn sets the hook run for each new item before it ages
func (r *Roster) OnSpawn(fn func(*Item)) {
	r.onSpawn = fn
}

// Items returns the live items; the slice is owned by the roster
func (r *Roster) Items() []*Item {
	return r.items
}

// Len returns the number of live items
func (r *Roster) Len() int {
	return len(r.items)
}

// Spawn places an item of type t; returns nil when the type is unknown or placement fails
func (r *Roster) Spawn(t Type, place Placer) *Item {
	spec, ok := r.spawner.Spec(t)
	if !ok || place == nil {
		return nil
	}
	pos, ok := place()
	if !ok {
		return nil
	}
	it := New(spec, pos, r.width, r.height)
	r.items = append(r.items, it)
	if r.onSpawn != nil {
		r.onSpawn(it)
	}
	return it
}

// Tick draws once for a spawn, then ages every item
// Returns the spawned item or nil; at most one item spawns per call
func (r *Roster) Tick(delta float64, rng vmath.Rand, place Placer) *Item {
	var spawned *Item
	if r.capacity <= 0 || len(r.items) < r.capacity {
		if t, ok := r.spawner.Roll(rng.Float64()); ok {
			spawned = r.Spawn(t, place)
		}
	}
	for _, it := range r.items {
		it.Update(delta)
	}
	return spawned
}

// Sweep removes expired and collected items and returns them
func (r *Roster) Sweep() []*Item {
	var removed []*Item
	kept := r.items[:0]
	for _, it := range r.items {
		if it.Done() {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(r.items); i++ {
		r.items[i] = nil
	}
	r.items = kept
	return removed
}

// Clear drops every item without firing expiry
func (r *Roster) Clear() []*Item {
	removed := r.items
	for _, it := range removed {
		it.expire.Complete()
	}
	r.items = nil
	return removed
}
