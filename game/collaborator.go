package game

import (
	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/event"
)

// Key is a one-shot command key
type Key int

const (
	KeyToggle  Key = iota // Cycle player human/zombie/dead
	KeyStart              // Leave the title screen
	KeyRestart            // Start a new round after game over
	KeyTitle              // Back to the title screen after game over
)

// Directional is the held-direction state sampled each tick
type Directional struct {
	Forward, Backward, Left, Right bool
}

// Input supplies held directions and key press notifications
// Notifications must be delivered on the tick goroutine
type Input interface {
	Directional() Directional
	OnKeyPress(key Key, handler func(Key)) event.Token
	CancelKeyPress(tok event.Token) bool
}

// Kind categorises drawables for the sink
type Kind uint8

const (
	KindTile Kind = iota
	KindCharacter
	KindItem
)

// Drawables creates, positions, removes and orders visuals
// Handles are non-zero; 0 means "no drawable"
type Drawables interface {
	Create(kind Kind, layer, name string) int
	Position(handle int, x, y, alpha float64, frame int)
	Remove(handle int)
	Order(handles []int)
}

// Audio plays named effects, fire-and-forget
type Audio interface {
	Play(id core.SoundType, opts core.PlayOptions)
}

// Camera follows a world point
type Camera interface {
	MoveCenterTo(x, y float64)
}

// Null collaborators used when the host supplies none

type nopInput struct{}

func (nopInput) Directional() Directional              { return Directional{} }
func (nopInput) OnKeyPress(Key, func(Key)) event.Token { return 0 }
func (nopInput) CancelKeyPress(event.Token) bool       { return false }

type nopDrawables struct{ next int }

func (n *nopDrawables) Create(Kind, string, string) int {
	n.next++
	return n.next
}
func (*nopDrawables) Position(int, float64, float64, float64, int) {}
func (*nopDrawables) Remove(int)                                   {}
func (*nopDrawables) Order([]int)                                  {}

type nopAudio struct{}

func (nopAudio) Play(core.SoundType, core.PlayOptions) {}

type nopCamera struct{}

func (nopCamera) MoveCenterTo(float64, float64) {}
