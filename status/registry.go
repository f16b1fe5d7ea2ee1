// Package status exposes simulation counters to concurrent readers such as the debug endpoint
package status

import "sync/atomic"

// Metric keys written by the simulation
const (
	KeyTicks        = "sim.ticks"
	KeyElapsed      = "sim.elapsed"
	KeyMode         = "sim.mode"
	KeyHealth       = "player.health"
	KeyScore        = "player.score"
	KeyHits         = "player.hits"
	KeyZombies      = "roster.zombies"
	KeyNPCs         = "roster.npcs"
	KeyItems        = "roster.items"
	KeyPromotions   = "roster.promotions"
	KeyPickups      = "items.pickups"
	KeySpawns       = "items.spawns"
	KeyExpiries     = "items.expiries"
	KeyPathRequests = "path.requests"
	KeyPathFound    = "path.found"
	KeyPathMissing  = "path.missing"
	KeyPathPending  = "path.pending"
	KeyAudioEnabled = "audio.enabled"
	KeyLastSound    = "audio.last"
)

// Registry groups metrics by value type
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a plain map for serialisation
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// SimMetrics caches the pointers the tick loop writes every frame
type SimMetrics struct {
	Ticks        *atomic.Int64
	Elapsed      *AtomicFloat
	Mode         *AtomicString
	Health       *atomic.Int64
	Score        *atomic.Int64
	Hits         *atomic.Int64
	Zombies      *atomic.Int64
	NPCs         *atomic.Int64
	Items        *atomic.Int64
	Promotions   *atomic.Int64
	Pickups      *atomic.Int64
	Spawns       *atomic.Int64
	Expiries     *atomic.Int64
	PathRequests *atomic.Int64
	PathFound    *atomic.Int64
	PathMissing  *atomic.Int64
	PathPending  *atomic.Int64
}

// Sim registers and returns the simulation metric set
// A nil registry yields a detached set so callers never nil-check
func (r *Registry) Sim() *SimMetrics {
	if r == nil {
		r = NewRegistry()
	}
	return &SimMetrics{
		Ticks:        r.Ints.Get(KeyTicks),
		Elapsed:      r.Floats.Get(KeyElapsed),
		Mode:         r.Strings.Get(KeyMode),
		Health:       r.Ints.Get(KeyHealth),
		Score:        r.Ints.Get(KeyScore),
		Hits:         r.Ints.Get(KeyHits),
		Zombies:      r.Ints.Get(KeyZombies),
		NPCs:         r.Ints.Get(KeyNPCs),
		Items:        r.Ints.Get(KeyItems),
		Promotions:   r.Ints.Get(KeyPromotions),
		Pickups:      r.Ints.Get(KeyPickups),
		Spawns:       r.Ints.Get(KeySpawns),
		Expiries:     r.Ints.Get(KeyExpiries),
		PathRequests: r.Ints.Get(KeyPathRequests),
		PathFound:    r.Ints.Get(KeyPathFound),
		PathMissing:  r.Ints.Get(KeyPathMissing),
		PathPending:  r.Ints.Get(KeyPathPending),
	}
}
