package status

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

// TestMetricMapGetCaches verifies repeated Get returns the same pointer
func TestMetricMapGetCaches(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	a.Add(3)
	if b := r.Ints.Get(KeyTicks); b != a || b.Load() != 3 {
		t.Errorf("Get returned a different metric")
	}
}

// TestSnapshot verifies every metric type is serialised
func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	m := r.Sim()
	m.Ticks.Store(10)
	m.Elapsed.Set(1.5)
	m.Mode.Store("playing")
	r.Bools.Get(KeyAudioEnabled).Store(true)

	snap := r.Snapshot()
	if snap[KeyTicks] != int64(10) || snap[KeyElapsed] != 1.5 || snap[KeyMode] != "playing" || snap[KeyAudioEnabled] != true {
		t.Errorf("snapshot = %v", snap)
	}
	if len(snap) != r.TotalCount() {
		t.Errorf("snapshot has %d keys, registry %d", len(snap), r.TotalCount())
	}
}

// TestAtomicStringTruncates verifies the length cap
func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value not empty")
	}
	s.Store("0123456789012345678901234567890123456789")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}

// TestAtomicStringKeepsRunes verifies truncation backs off to a rune boundary
func TestAtomicStringKeepsRunes(t *testing.T) {
	var s AtomicString
	prefix := strings.Repeat("a", MaxStringLen-1)
	s.Store(prefix + "é-zombie") // é straddles the cap

	got := s.Load()
	if !utf8.ValidString(got) {
		t.Fatalf("truncated to invalid UTF-8 %q", got)
	}
	if got != prefix {
		t.Errorf("got %q, want the %d-byte prefix", got, len(prefix))
	}

	s.Store(strings.Repeat("é", MaxStringLen))
	if got := s.Load(); !utf8.ValidString(got) || len(got) != MaxStringLen {
		t.Errorf("two-byte runes: len=%d valid=%v", len(got), utf8.ValidString(got))
	}
}

// TestNilRegistrySim verifies a detached metric set is usable
func TestNilRegistrySim(t *testing.T) {
	var r *Registry
	m := r.Sim()
	m.Hits.Add(1)
	if m.Hits.Load() != 1 {
		t.Error("detached metric not writable")
	}
}

// TestConcurrentReadWrite exercises snapshots while metrics are written
func TestConcurrentReadWrite(t *testing.T) {
	r := NewRegistry()
	m := r.Sim()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			m.Ticks.Add(1)
			m.Elapsed.Set(float64(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = r.Snapshot()
		}
	}()
	wg.Wait()
	if m.Ticks.Load() != 1000 {
		t.Errorf("ticks = %d", m.Ticks.Load())
	}
}
