package navigation

import (
	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/vmath"
)

// AStar is a 4-connected A* solver with a Manhattan heuristic
type AStar struct{}

// Begin validates endpoints and seeds the open set
// A blocked or out-of-range goal resolves immediately with no path
func (AStar) Begin(grid Matrix, from, to core.Point) Search {
	cols, rows := grid.Size()
	if cols == 0 || grid.Blocked(to) || from.X < 0 || from.Y < 0 || from.X >= cols || from.Y >= rows {
		return resolved(nil)
	}
	if from == to {
		return resolved([]core.Point{to})
	}

	size := cols * rows
	s := &astarSearch{
		grid:   grid,
		width:  cols,
		goal:   to,
		g:      make([]int, size),
		parent: make([]int32, size),
		closed: make([]bool, size),
		open:   make(minHeap, 0, 64),
	}
	for i := range s.g {
		s.g[i] = costUnreachable
		s.parent[i] = -1
	}
	start := from.Y*cols + from.X
	s.g[start] = 0
	s.open.push(heapEntry{idx: start, cost: vmath.ManhattanDistance(from, to)})
	return s
}

type astarSearch struct {
	grid   Matrix
	width  int
	goal   core.Point
	g      []int
	parent []int32
	closed []bool
	open   minHeap

	done   bool
	result []core.Point
}

func (s *astarSearch) Step(budget int) (int, bool) {
	if s.done {
		return 0, true
	}

	used := 0
	goalIdx := s.goal.Y*s.width + s.goal.X
	for used < budget {
		if len(s.open) == 0 {
			s.done = true
			return used, true
		}

		entry := s.open.pop()
		if s.closed[entry.idx] || entry.g > s.g[entry.idx] {
			continue // Stale entry
		}
		used++
		s.closed[entry.idx] = true

		if entry.idx == goalIdx {
			s.result = s.trace(goalIdx)
			s.done = true
			s.open = nil
			return used, true
		}

		cx, cy := entry.idx%s.width, entry.idx/s.width
		for _, d := range dirVectors {
			n := core.Point{X: cx + d.X, Y: cy + d.Y}
			if s.grid.Blocked(n) {
				continue
			}
			nIdx := n.Y*s.width + n.X
			if s.closed[nIdx] {
				continue
			}
			ng := s.g[entry.idx] + 1
			if ng < s.g[nIdx] {
				s.g[nIdx] = ng
				s.parent[nIdx] = int32(entry.idx)
				s.open.push(heapEntry{idx: nIdx, cost: ng + vmath.ManhattanDistance(n, s.goal), g: ng})
			}
		}
	}
	return used, false
}

func (s *astarSearch) Result() []core.Point {
	return s.result
}

// trace walks parent links back from idx and returns the path start-first
func (s *astarSearch) trace(idx int) []core.Point {
	var rev []core.Point
	for i := idx; i >= 0; i = int(s.parent[i]) {
		rev = append(rev, core.Point{X: i % s.width, Y: i / s.width})
	}
	out := make([]core.Point, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}
