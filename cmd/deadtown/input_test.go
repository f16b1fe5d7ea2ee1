package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadtown/game"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// TestDirectionalHoldTimeout verifies presses stay held only within the timeout
func TestDirectionalHoldTimeout(t *testing.T) {
	in := newTerminalInput()
	clock := time.Unix(1000, 0)
	in.now = func() time.Time { return clock }

	in.HandleEvent(runeKey('w'))
	in.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if d := in.Directional(); !d.Forward || !d.Right || d.Left || d.Backward {
		t.Errorf("directional = %+v", d)
	}

	clock = clock.Add(holdTimeout - time.Millisecond)
	if !in.Directional().Forward {
		t.Error("forward released before timeout")
	}

	clock = clock.Add(2 * time.Millisecond)
	if d := in.Directional(); d.Forward || d.Right {
		t.Errorf("directional after timeout = %+v", d)
	}
}

// TestOppositeDirectionReleases verifies reversing drops the old direction at once
func TestOppositeDirectionReleases(t *testing.T) {
	in := newTerminalInput()
	in.HandleEvent(runeKey('a'))
	in.HandleEvent(runeKey('d'))
	if d := in.Directional(); d.Left || !d.Right {
		t.Errorf("directional = %+v", d)
	}
}

// TestCommandKeys verifies command keys reach subscribers and host actions are returned
func TestCommandKeys(t *testing.T) {
	in := newTerminalInput()
	var got []game.Key
	for _, k := range []game.Key{game.KeyStart, game.KeyToggle, game.KeyRestart, game.KeyTitle} {
		in.OnKeyPress(k, func(k game.Key) { got = append(got, k) })
	}

	in.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	in.HandleEvent(runeKey('z'))
	in.HandleEvent(runeKey('r'))
	in.HandleEvent(runeKey(' '))
	in.HandleEvent(runeKey('t'))

	want := []game.Key{game.KeyStart, game.KeyToggle, game.KeyRestart, game.KeyStart, game.KeyTitle}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %v, want %v", i, got[i], want[i])
		}
	}

	if in.HandleEvent(runeKey('q')) != ActionQuit {
		t.Error("q should quit")
	}
	if in.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) != ActionQuit {
		t.Error("escape should quit")
	}
	if in.HandleEvent(runeKey('m')) != ActionMute {
		t.Error("m should toggle mute")
	}
}

// TestCancelKeyPress verifies cancelled handlers stop receiving keys
func TestCancelKeyPress(t *testing.T) {
	in := newTerminalInput()
	calls := 0
	tok := in.OnKeyPress(game.KeyToggle, func(game.Key) { calls++ })
	in.HandleEvent(runeKey('z'))
	if !in.CancelKeyPress(tok) {
		t.Fatal("cancel failed")
	}
	in.HandleEvent(runeKey('z'))
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
