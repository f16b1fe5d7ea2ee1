package main

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadtown/event"
	"github.com/lixenwraith/deadtown/game"
)

// holdTimeout approximates key release: terminals report presses and autorepeat only
const holdTimeout = 120 * time.Millisecond

type direction int

const (
	dirForward direction = iota
	dirBackward
	dirLeft
	dirRight
	dirCount
)

// Action is what the host loop does after an event
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMute
)

// terminalInput adapts tcell key events to the simulation's input contract
// Events arrive on the main loop goroutine, the same one that ticks the simulation
type terminalInput struct {
	mu   sync.Mutex
	seen [dirCount]time.Time
	now  func() time.Time

	keys *event.KeySubject[game.Key]
}

func newTerminalInput() *terminalInput {
	return &terminalInput{
		now:  time.Now,
		keys: event.NewKeySubject[game.Key](),
	}
}

// Directional reports every direction pressed or repeated within holdTimeout
func (in *terminalInput) Directional() game.Directional {
	in.mu.Lock()
	defer in.mu.Unlock()

	now := in.now()
	held := func(d direction) bool {
		return !in.seen[d].IsZero() && now.Sub(in.seen[d]) < holdTimeout
	}
	return game.Directional{
		Forward:  held(dirForward),
		Backward: held(dirBackward),
		Left:     held(dirLeft),
		Right:    held(dirRight),
	}
}

func (in *terminalInput) OnKeyPress(key game.Key, handler func(game.Key)) event.Token {
	return in.keys.Subscribe(key, handler)
}

func (in *terminalInput) CancelKeyPress(tok event.Token) bool {
	return in.keys.Unsubscribe(tok)
}

// HandleEvent maps one terminal key event
func (in *terminalInput) HandleEvent(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		in.press(dirForward)
		return ActionNone
	case tcell.KeyDown:
		in.press(dirBackward)
		return ActionNone
	case tcell.KeyLeft:
		in.press(dirLeft)
		return ActionNone
	case tcell.KeyRight:
		in.press(dirRight)
		return ActionNone
	case tcell.KeyEnter:
		in.keys.Emit(game.KeyStart)
		return ActionNone
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'q':
		return ActionQuit
	case 'w':
		in.press(dirForward)
	case 's':
		in.press(dirBackward)
	case 'a':
		in.press(dirLeft)
	case 'd':
		in.press(dirRight)
	case ' ':
		in.keys.Emit(game.KeyStart)
	case 'r':
		in.keys.Emit(game.KeyRestart)
	case 't':
		in.keys.Emit(game.KeyTitle)
	case 'z':
		in.keys.Emit(game.KeyToggle)
	case 'm':
		return ActionMute
	}
	return ActionNone
}

// press records a direction; the opposite direction is released so reversing is immediate
func (in *terminalInput) press(d direction) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.seen[d] = in.now()
	switch d {
	case dirForward:
		in.seen[dirBackward] = time.Time{}
	case dirBackward:
		in.seen[dirForward] = time.Time{}
	case dirLeft:
		in.seen[dirRight] = time.Time{}
	case dirRight:
		in.seen[dirLeft] = time.Time{}
	}
}
