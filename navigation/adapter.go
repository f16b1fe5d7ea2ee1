package navigation

import (
	"github.com/lixenwraith/deadtown/core"
)

// request is one queued path computation
type request struct {
	from, to   core.Point
	onComplete func([]core.Point)
	search     Search
}

// Adapter queues path requests and advances them within a per-tick node budget
// All work happens inside Tick on the caller's goroutine
type Adapter struct {
	solver Solver
	grid   Matrix
	budget int
	queue  []*request
}

// NewAdapter creates an adapter; budget is the number of node expansions shared by all requests per tick
func NewAdapter(solver Solver, budget int) *Adapter {
	if solver == nil {
		solver = AStar{}
	}
	return &Adapter{
		solver: solver,
		budget: max(budget, 1),
	}
}

// SetGrid replaces the collision matrix; in-flight searches restart on the new grid
func (a *Adapter) SetGrid(grid Matrix) {
	a.grid = grid
	for _, r := range a.queue {
		r.search = nil
	}
}

// Grid returns the current collision matrix
func (a *Adapter) Grid() Matrix {
	return a.grid
}

// RequestPath queues a request and returns immediately
// onComplete fires exactly once from a later Tick with the path or nil
func (a *Adapter) RequestPath(from, to core.Point, onComplete func([]core.Point)) {
	a.queue = append(a.queue, &request{from: from, to: to, onComplete: onComplete})
}

// Reset abandons every queued request, resolving each with nil so callbacks still fire exactly once
// Requests queued by those callbacks are kept
func (a *Adapter) Reset() int {
	dropped := a.queue
	a.queue = nil
	for _, r := range dropped {
		if r.onComplete != nil {
			r.onComplete(nil)
		}
	}
	return len(dropped)
}

// Pending returns the number of unresolved requests
func (a *Adapter) Pending() int {
	return len(a.queue)
}

// Tick advances outstanding requests in FIFO order until the budget is spent
// Returns the number of requests resolved; callbacks run after the queue is settled so they may request again
func (a *Adapter) Tick() int {
	if len(a.queue) == 0 {
		return 0
	}

	pending := a.queue
	a.queue = nil

	remaining := a.budget
	kept := make([]*request, 0, len(pending))
	var done []*request
	noGrid := len(a.grid) == 0

	for i, r := range pending {
		if noGrid {
			done = append(done, r)
			continue
		}
		if remaining <= 0 {
			kept = append(kept, pending[i:]...)
			break
		}
		if r.search == nil {
			r.search = a.solver.Begin(a.grid, r.from, r.to)
		}
		used, finished := r.search.Step(remaining)
		remaining -= used
		if finished {
			done = append(done, r)
		} else {
			kept = append(kept, r)
		}
	}

	a.queue = append(kept, a.queue...)

	for _, r := range done {
		var path []core.Point
		if r.search != nil {
			path = r.search.Result()
		}
		if len(path) == 0 {
			path = nil
		}
		if r.onComplete != nil {
			r.onComplete(path)
		}
	}
	return len(done)
}
