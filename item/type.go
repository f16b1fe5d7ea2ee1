// Package item implements collectibles: types, ageing, expiry and probabilistic spawning
package item

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/deadtown/config"
)

// ErrUnknownType is returned for config sections that name no item type
var ErrUnknownType = errors.New("unknown item type")

// Type enumerates collectibles; declaration order is spawn precedence
type Type uint8

const (
	Brain Type = iota
	Chip
	HealthPack
	Key
	Keycard
	Sprout
	Shiny
	TypeCount
)

var typeNames = [TypeCount]string{
	"brain", "chip", "health_pack", "key", "keycard", "sprout", "shiny",
}

// String returns the config name of the type
func (t Type) String() string {
	if t >= TypeCount {
		return "unknown"
	}
	return typeNames[t]
}

// TypeByName resolves a config section name
func TypeByName(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

// Effect is what collecting an item does to the player
// Infect and Boost are durations in seconds, 0 = none
type Effect struct {
	Score  int
	Health int
	Infect float64
	Boost  float64
}

// Spec is the full tuning of one item type
// LifeTime 0 means the item never expires
type Spec struct {
	Type     Type
	LifeTime float64
	Effect   Effect
	BandLo   float64
	BandHi   float64
}

// SpecsFrom converts config sections into specs ordered by Type
func SpecsFrom(items map[string]config.ItemConfig) ([]Spec, error) {
	specs := make([]Spec, 0, len(items))
	for t := Type(0); t < TypeCount; t++ {
		ic, ok := items[t.String()]
		if !ok {
			continue
		}
		specs = append(specs, Spec{
			Type:     t,
			LifeTime: ic.LifeTime,
			Effect:   Effect{Score: ic.Score, Health: ic.Health, Infect: ic.Infect, Boost: ic.Boost},
			BandLo:   ic.BandLo,
			BandHi:   ic.BandHi,
		})
	}
	for name := range items {
		if _, ok := TypeByName(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
	}
	return specs, nil
}
