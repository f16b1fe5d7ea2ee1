package navigation

import (
	"testing"

	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/vmath"
)

func openMatrix(cols, rows int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m
}

// checkPath verifies endpoints, adjacency and that no step enters a blocked cell
func checkPath(t *testing.T, m Matrix, path []core.Point, from, to core.Point) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("expected a path")
	}
	if path[0] != from {
		t.Errorf("path starts at %v, want %v", path[0], from)
	}
	if path[len(path)-1] != to {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], to)
	}
	for i := 1; i < len(path); i++ {
		if vmath.ManhattanDistance(path[i-1], path[i]) != 1 {
			t.Errorf("step %d: %v -> %v not adjacent", i, path[i-1], path[i])
		}
		if m.Blocked(path[i]) {
			t.Errorf("step %d enters blocked cell %v", i, path[i])
		}
	}
}

// resolveNow drives the adapter until the request resolves
func resolveNow(t *testing.T, a *Adapter, from, to core.Point) ([]core.Point, int) {
	t.Helper()
	var got []core.Point
	calls := 0
	a.RequestPath(from, to, func(p []core.Point) {
		got = p
		calls++
	})
	for i := 0; i < 100 && a.Pending() > 0; i++ {
		a.Tick()
	}
	if a.Pending() != 0 {
		t.Fatal("request never resolved")
	}
	return got, calls
}

// TestOpenGridPath verifies a 4x4 open grid yields an adjacent-step path to (3,3)
func TestOpenGridPath(t *testing.T) {
	for _, tc := range []struct {
		name   string
		solver Solver
	}{
		{"astar", AStar{}},
		{"flow", NewFlowSolver(4)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := openMatrix(4, 4)
			a := NewAdapter(tc.solver, 1000)
			a.SetGrid(m)

			path, calls := resolveNow(t, a, core.Point{}, core.Point{X: 3, Y: 3})
			if calls != 1 {
				t.Errorf("callback fired %d times, want 1", calls)
			}
			checkPath(t, m, path, core.Point{}, core.Point{X: 3, Y: 3})
			if len(path) != 7 {
				t.Errorf("path length = %d, want 7 (shortest)", len(path))
			}
		})
	}
}

// TestPathAroundWall verifies the solver routes through the single gap
func TestPathAroundWall(t *testing.T) {
	m := openMatrix(5, 5)
	for y := 0; y < 4; y++ {
		m[y][2] = 1
	}
	for _, s := range []Solver{AStar{}, NewFlowSolver(4)} {
		a := NewAdapter(s, 1000)
		a.SetGrid(m)
		path, _ := resolveNow(t, a, core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 0})
		checkPath(t, m, path, core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 0})
		if len(path) != 13 {
			t.Errorf("%T: path length = %d, want 13", s, len(path))
		}
	}
}

// TestUnreachableResolvesNil verifies blocked and walled-off targets resolve with no path
func TestUnreachableResolvesNil(t *testing.T) {
	m := openMatrix(4, 4)
	m[3][3] = 1
	m[0][3] = 1
	m[1][2] = 1
	m[0][2] = 1
	m[1][3] = 1 // (3,0) region sealed, (3,3) blocked

	for _, s := range []Solver{AStar{}, NewFlowSolver(4)} {
		a := NewAdapter(s, 5)
		a.SetGrid(m)

		path, calls := resolveNow(t, a, core.Point{}, core.Point{X: 3, Y: 3})
		if path != nil || calls != 1 {
			t.Errorf("%T blocked target: path=%v calls=%d", s, path, calls)
		}

		m2 := openMatrix(4, 4)
		m2[0][2], m2[1][2], m2[2][2], m2[3][2] = 1, 1, 1, 1
		a.SetGrid(m2)
		path, calls = resolveNow(t, a, core.Point{}, core.Point{X: 3, Y: 3})
		if path != nil || calls != 1 {
			t.Errorf("%T sealed target: path=%v calls=%d", s, path, calls)
		}
	}
}

// TestNoGridResolvesNil verifies requests without a grid resolve on the next tick
func TestNoGridResolvesNil(t *testing.T) {
	a := NewAdapter(AStar{}, 10)
	calls := 0
	a.RequestPath(core.Point{}, core.Point{X: 1}, func(p []core.Point) {
		calls++
		if p != nil {
			t.Errorf("path = %v, want nil", p)
		}
	})
	if calls != 0 {
		t.Fatal("RequestPath must not resolve synchronously")
	}
	if n := a.Tick(); n != 1 {
		t.Errorf("resolved = %d, want 1", n)
	}
	a.Tick()
	if calls != 1 {
		t.Errorf("callback fired %d times, want 1", calls)
	}
}

// TestBudgetSpreadsAcrossTicks verifies a small budget defers resolution to later ticks
func TestBudgetSpreadsAcrossTicks(t *testing.T) {
	m := openMatrix(20, 20)
	a := NewAdapter(AStar{}, 3)
	a.SetGrid(m)

	resolvedAt := -1
	a.RequestPath(core.Point{}, core.Point{X: 19, Y: 19}, func(p []core.Point) {
		if p == nil {
			t.Error("expected path")
		}
	})
	for tick := 1; tick <= 1000; tick++ {
		if a.Tick() > 0 {
			resolvedAt = tick
			break
		}
	}
	// At least 39 expansions are needed along the path
	if resolvedAt < 13 {
		t.Errorf("resolved at tick %d, want >= 13 with budget 3", resolvedAt)
	}
}

// TestFIFOOrder verifies requests resolve in submission order
func TestFIFOOrder(t *testing.T) {
	m := openMatrix(8, 8)
	a := NewAdapter(AStar{}, 4)
	a.SetGrid(m)

	var order []int
	for i := 0; i < 3; i++ {
		id := i
		a.RequestPath(core.Point{}, core.Point{X: 7, Y: 7}, func([]core.Point) { order = append(order, id) })
	}
	for i := 0; i < 200 && a.Pending() > 0; i++ {
		a.Tick()
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
}

// TestCallbackMayRequestAgain verifies a callback can queue the next request
func TestCallbackMayRequestAgain(t *testing.T) {
	a := NewAdapter(AStar{}, 100)
	a.SetGrid(openMatrix(3, 3))

	calls := 0
	var again func([]core.Point)
	again = func([]core.Point) {
		calls++
		if calls < 3 {
			a.RequestPath(core.Point{}, core.Point{X: 2, Y: 2}, again)
		}
	}
	a.RequestPath(core.Point{}, core.Point{X: 2, Y: 2}, again)
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

// TestResetResolvesQueuedWithNil verifies abandoned requests free the budget and still call back once
func TestResetResolvesQueuedWithNil(t *testing.T) {
	a := NewAdapter(AStar{}, 3)
	a.SetGrid(openMatrix(20, 20))

	stale := 0
	for i := 0; i < 4; i++ {
		a.RequestPath(core.Point{}, core.Point{X: 19, Y: 19}, func(p []core.Point) {
			stale++
			if p != nil {
				t.Errorf("abandoned request got path %v", p)
			}
		})
	}
	a.Tick()

	if n := a.Reset(); n != 4 {
		t.Errorf("reset = %d, want 4", n)
	}
	if stale != 4 || a.Pending() != 0 {
		t.Fatalf("stale callbacks = %d, pending = %d", stale, a.Pending())
	}

	var got []core.Point
	a.RequestPath(core.Point{}, core.Point{X: 1, Y: 0}, func(p []core.Point) { got = p })
	a.Tick()
	if len(got) != 2 {
		t.Errorf("fresh request path = %v, want 2 cells on the first tick", got)
	}
	for i := 0; i < 100; i++ {
		a.Tick()
	}
	if stale != 4 {
		t.Errorf("stale callbacks fired %d times after reset, want 4", stale)
	}
}

// TestFlowSolverSharesField verifies searches toward one target reuse the cached field
func TestFlowSolverSharesField(t *testing.T) {
	m := openMatrix(10, 10)
	s := NewFlowSolver(8)
	target := core.Point{X: 5, Y: 5}

	first := s.Begin(m, core.Point{}, target)
	for done := false; !done; {
		_, done = first.Step(1000)
	}

	second := s.Begin(m, core.Point{X: 1, Y: 0}, target)
	used, done := second.Step(1000)
	if !done || used != 0 {
		t.Errorf("second search used=%d done=%v, want 0 true", used, done)
	}
	checkPath(t, m, second.Result(), core.Point{X: 1, Y: 0}, target)
	if s.Fields() != 1 {
		t.Errorf("fields = %d, want 1", s.Fields())
	}
}

// TestFlowFieldCompute verifies full growth yields Manhattan distances on an open grid
func TestFlowFieldCompute(t *testing.T) {
	m := openMatrix(6, 4)
	f := NewFlowField(m, core.Point{X: 2, Y: 1})
	f.Compute(m)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			p := core.Point{X: x, Y: y}
			if got, want := f.GetDistance(p), vmath.ManhattanDistance(p, f.Target); got != want {
				t.Errorf("distance %v = %d, want %d", p, got, want)
			}
		}
	}
}
