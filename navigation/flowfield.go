package navigation

import "github.com/lixenwraith/deadtown/core"

const costUnreachable = 1<<30 - 1

// FlowField is a Dijkstra distance field grown outward from one target cell
// Growth is incremental so a field can be shared by every search toward the same target
type FlowField struct {
	Width, Height int
	Target        core.Point
	Distances     []int // Steps to target, costUnreachable until settled

	settled   []bool
	heap      minHeap
	exhausted bool
}

// NewFlowField creates a field seeded at target; a blocked target yields an exhausted empty field
func NewFlowField(grid Matrix, target core.Point) *FlowField {
	cols, rows := grid.Size()
	size := cols * rows
	f := &FlowField{
		Width:     cols,
		Height:    rows,
		Target:    target,
		Distances: make([]int, size),
		settled:   make([]bool, size),
		heap:      make(minHeap, 0, size/4+1),
	}
	for i := range f.Distances {
		f.Distances[i] = costUnreachable
	}
	if grid.Blocked(target) {
		f.exhausted = true
		return f
	}
	idx := target.Y*cols + target.X
	f.Distances[idx] = 0
	f.heap.push(heapEntry{idx: idx})
	return f
}

// Grow settles up to budget cells; stop returns true to end early once a wanted cell settles
// Returns cells settled
func (f *FlowField) Grow(grid Matrix, budget int, stop func(idx int) bool) int {
	used := 0
	for used < budget && len(f.heap) > 0 {
		entry := f.heap.pop()
		if f.settled[entry.idx] || entry.cost > f.Distances[entry.idx] {
			continue // Stale entry
		}
		f.settled[entry.idx] = true
		used++

		cx, cy := entry.idx%f.Width, entry.idx/f.Width
		for _, d := range dirVectors {
			n := core.Point{X: cx + d.X, Y: cy + d.Y}
			if grid.Blocked(n) {
				continue
			}
			nIdx := n.Y*f.Width + n.X
			if nd := entry.cost + 1; nd < f.Distances[nIdx] {
				f.Distances[nIdx] = nd
				f.heap.push(heapEntry{idx: nIdx, cost: nd, g: nd})
			}
		}

		if stop != nil && stop(entry.idx) {
			break
		}
	}
	if len(f.heap) == 0 {
		f.exhausted = true
	}
	return used
}

// Compute grows the field to completion
func (f *FlowField) Compute(grid Matrix) {
	for !f.exhausted {
		f.Grow(grid, f.Width*f.Height+1, nil)
	}
}

// Settled reports whether the distance at p is final
func (f *FlowField) Settled(p core.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height {
		return false
	}
	return f.settled[p.Y*f.Width+p.X]
}

// GetDistance returns steps to target, -1 if unreachable or not yet settled
func (f *FlowField) GetDistance(p core.Point) int {
	if !f.Settled(p) {
		return -1
	}
	return f.Distances[p.Y*f.Width+p.X]
}

// Descend follows the steepest distance gradient from a settled cell to the target
// Every cell closer than a settled cell is itself settled, so the walk never reads a provisional distance
func (f *FlowField) Descend(from core.Point) []core.Point {
	if !f.Settled(from) {
		return nil
	}
	path := []core.Point{from}
	cur := from
	for cur != f.Target {
		best := cur
		bestDist := f.Distances[cur.Y*f.Width+cur.X]
		for _, d := range dirVectors {
			n := core.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !f.Settled(n) {
				continue
			}
			if nd := f.Distances[n.Y*f.Width+n.X]; nd < bestDist {
				best, bestDist = n, nd
			}
		}
		if best == cur {
			return nil
		}
		cur = best
		path = append(path, cur)
	}
	return path
}

// FlowSolver shares one incremental field per target cell
// Many chasers converging on the same cell pay for a single search
type FlowSolver struct {
	// MaxFields bounds cached targets; the cache is dropped when full
	MaxFields int

	grid   Matrix
	fields map[core.Point]*FlowField
}

// NewFlowSolver creates a solver caching up to maxFields targets
func NewFlowSolver(maxFields int) *FlowSolver {
	return &FlowSolver{MaxFields: max(maxFields, 1)}
}

// Begin reuses the field for to when the grid is unchanged
func (s *FlowSolver) Begin(grid Matrix, from, to core.Point) Search {
	cols, rows := grid.Size()
	if cols == 0 || grid.Blocked(to) || from.X < 0 || from.Y < 0 || from.X >= cols || from.Y >= rows {
		return resolved(nil)
	}

	if !sameMatrix(s.grid, grid) || s.fields == nil {
		s.grid = grid
		s.fields = make(map[core.Point]*FlowField)
	}
	field, ok := s.fields[to]
	if !ok {
		if len(s.fields) >= s.MaxFields {
			clear(s.fields)
		}
		field = NewFlowField(grid, to)
		s.fields[to] = field
	}
	return &flowSearch{grid: grid, field: field, from: from}
}

// Fields returns the number of cached targets
func (s *FlowSolver) Fields() int {
	return len(s.fields)
}

func sameMatrix(a, b Matrix) bool {
	if len(a) != len(b) || len(a) == 0 || len(a[0]) != len(b[0]) || len(a[0]) == 0 {
		return false
	}
	return &a[0][0] == &b[0][0]
}

type flowSearch struct {
	grid   Matrix
	field  *FlowField
	from   core.Point
	done   bool
	result []core.Point
}

func (s *flowSearch) Step(budget int) (int, bool) {
	if s.done {
		return 0, true
	}
	used := 0
	if !s.field.Settled(s.from) {
		fromIdx := s.from.Y*s.field.Width + s.from.X
		used = s.field.Grow(s.grid, budget, func(idx int) bool { return idx == fromIdx })
	}
	if s.field.Settled(s.from) {
		s.result = s.field.Descend(s.from)
		s.done = true
	} else if s.field.exhausted {
		s.done = true
	}
	return used, s.done
}

func (s *flowSearch) Result() []core.Point {
	return s.result
}
