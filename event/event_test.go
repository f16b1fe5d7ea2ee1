package event

import "testing"

func TestSubjectSubscribeEmitUnsubscribe(t *testing.T) {
	s := NewSubject[int]()
	var got []int

	tok := s.Subscribe(func(v int) { got = append(got, v) })
	if tok == 0 {
		t.Fatal("Expected non-zero token")
	}

	if n := s.Emit(1); n != 1 {
		t.Errorf("Expected 1 delivery, got %d", n)
	}
	if !s.Unsubscribe(tok) {
		t.Error("Expected unsubscribe to succeed")
	}
	if s.Unsubscribe(tok) {
		t.Error("Second unsubscribe should fail")
	}
	s.Emit(2)

	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected [1], got %v", got)
	}
}

func TestOnceSubjectFiresOnce(t *testing.T) {
	s := NewOnceSubject[string]()
	count := 0
	s.Subscribe(func(string) { count++ })

	s.Emit("a")
	s.Emit("b")

	if count != 1 {
		t.Errorf("Expected exactly one emission, got %d", count)
	}
	if !s.Completed() {
		t.Error("Expected subject completed after first emission")
	}
	if tok := s.Subscribe(func(string) { count++ }); tok != 0 {
		t.Error("Subscribe on completed subject should return 0")
	}
}

func TestSubjectHandlerUnsubscribesItself(t *testing.T) {
	s := NewSubject[int]()
	calls := 0
	var tok Token
	tok = s.Subscribe(func(int) {
		calls++
		s.Unsubscribe(tok)
	})
	other := 0
	s.Subscribe(func(int) { other++ })

	s.Emit(0)
	s.Emit(0)

	if calls != 1 {
		t.Errorf("Self-removing handler called %d times, expected 1", calls)
	}
	if other != 2 {
		t.Errorf("Other handler called %d times, expected 2", other)
	}
}

func TestKeySubjectFiltersByKey(t *testing.T) {
	k := NewKeySubject[rune]()
	spaces, enters := 0, 0

	spaceTok := k.Subscribe(' ', func(rune) { spaces++ })
	k.Subscribe('\n', func(rune) { enters++ })

	k.Emit(' ')
	k.Emit('x')
	k.Emit(' ')

	if spaces != 2 || enters != 0 {
		t.Errorf("Expected spaces=2 enters=0, got %d %d", spaces, enters)
	}

	if !k.Unsubscribe(spaceTok) {
		t.Fatal("Expected unsubscribe to succeed")
	}
	k.Emit(' ')
	if spaces != 2 {
		t.Errorf("Unsubscribed handler fired, spaces=%d", spaces)
	}
}

func TestRouterDispatchOrder(t *testing.T) {
	r := NewRouter()
	var seen []EventType

	r.Register(EventPlayerHit, func(ev GameEvent) { seen = append(seen, ev.Type) })
	r.Register(EventPromotion, func(ev GameEvent) {
		seen = append(seen, ev.Type)
		// Handler-pushed events are delivered in the same dispatch
		r.Push(GameEvent{Type: EventPlayerHit})
	})

	r.Push(GameEvent{Type: EventPlayerHit})
	r.Push(GameEvent{Type: EventItemExpired}) // no handler
	r.Push(GameEvent{Type: EventPromotion})

	if n := r.DispatchAll(); n != 4 {
		t.Errorf("Expected 4 dispatched events, got %d", n)
	}
	want := []EventType{EventPlayerHit, EventPromotion, EventPlayerHit}
	if len(seen) != len(want) {
		t.Fatalf("Expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Index %d: expected %v, got %v", i, want[i], seen[i])
		}
	}
	if r.Len() != 0 {
		t.Errorf("Queue should be empty, got %d", r.Len())
	}
}

func TestEventTypeNames(t *testing.T) {
	for et := EventType(0); et < EventTypeCount; et++ {
		got, ok := GetEventType(et.String())
		if !ok || got != et {
			t.Errorf("Name round trip failed for %d (%s)", et, et.String())
		}
	}
	if EventType(-1).String() != "EventUnknown" {
		t.Error("Expected EventUnknown for out-of-range type")
	}
}
