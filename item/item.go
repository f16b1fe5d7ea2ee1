package item

import (
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/event"
	"github.com/lixenwraith/deadtown/parameter"
	"github.com/lixenwraith/deadtown/vmath"
)

// Item is one live collectible
type Item struct {
	ID            string
	Type          Type
	Effect        Effect
	Pos           core.Vec
	Width, Height float64
	LifeTime      float64 // Remaining seconds, ignored when the type never expires
	Expired       bool
	Collected     bool
	Alpha         float64
	Frame         float64

	// Drawable is the handle issued by the drawable sink, 0 = none
	Drawable int

	mortal  bool
	elapsed float64
	expire  *event.Subject[*Item]
}

// New creates an item of spec at pos
func New(spec Spec, pos core.Vec, width, height float64) *Item {
	return &Item{
		ID:       "i_" + uuid.NewString()[:8],
		Type:     spec.Type,
		Effect:   spec.Effect,
		Pos:      pos,
		Width:    width,
		Height:   height,
		LifeTime: spec.LifeTime,
		Alpha:    1,
		mortal:   spec.LifeTime > 0,
		expire:   event.NewOnceSubject[*Item](),
	}
}

// OnExpire registers a handler for the single expiry notification
func (i *Item) OnExpire(handler func(*Item)) event.Token {
	return i.expire.Subscribe(handler)
}

// CancelExpire removes an expiry handler
func (i *Item) CancelExpire(tok event.Token) bool {
	return i.expire.Unsubscribe(tok)
}

// Mortal reports whether the item ages out
func (i *Item) Mortal() bool {
	return i.mortal
}

// Done reports whether the item should be removed
func (i *Item) Done() bool {
	return i.Expired || i.Collected
}

// Update ages the item; expiry fires once when LifeTime reaches zero
func (i *Item) Update(delta float64) {
	if i.Done() {
		return
	}
	dt := delta / parameter.FramesPerSecond
	i.elapsed += dt
	i.Frame = math.Mod(i.Frame+parameter.ItemAnimationSpeed*delta, 3)

	if !i.mortal {
		return
	}
	i.LifeTime -= dt
	if i.LifeTime <= 0 {
		i.LifeTime = 0
		i.Expired = true
		i.expire.Emit(i)
		return
	}

	if i.LifeTime < parameter.ItemPulseThreshold {
		i.Alpha = vmath.Pulse(i.elapsed, parameter.BlinkFrequency, parameter.BlinkMinAlpha)
	} else {
		i.Alpha = 1
	}
}

// Collect marks the item taken and suppresses any later expiry
// Returns false if it was already gone
func (i *Item) Collect() bool {
	if i.Done() {
		return false
	}
	i.Collected = true
	i.expire.Complete()
	return true
}

// Bounds returns the sprite AABB centred on the position
func (i *Item) Bounds() core.Rect {
	return core.RectAround(i.Pos, i.Width, i.Height)
}

// PickupBounds returns the bounds tightened by inset on every side
func (i *Item) PickupBounds(inset float64) core.Rect {
	return i.Bounds().Inset(inset, inset, inset, inset)
}
