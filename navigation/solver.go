// Package navigation resolves grid paths incrementally across simulation ticks
package navigation

import "github.com/lixenwraith/deadtown/core"

// Matrix is a collision matrix indexed [row][col]; non-zero cells block
type Matrix [][]int

// Size returns columns and rows
func (m Matrix) Size() (cols, rows int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m[0]), len(m)
}

// Blocked treats out-of-range cells as blocked
func (m Matrix) Blocked(p core.Point) bool {
	if p.Y < 0 || p.Y >= len(m) || p.X < 0 || p.X >= len(m[p.Y]) {
		return true
	}
	return m[p.Y][p.X] != 0
}

// Solver starts incremental searches on a collision matrix
type Solver interface {
	Begin(grid Matrix, from, to core.Point) Search
}

// Search is one in-flight path computation
type Search interface {
	// Step expands at most budget nodes; returns nodes used and whether the search resolved
	Step(budget int) (used int, done bool)
	// Result is the path from start to goal inclusive, nil when none exists
	Result() []core.Point
}

// 4-connected neighbourhood: N, E, S, W
var dirVectors = [4]core.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// resolved is a Search that finished at Begin
type resolved []core.Point

func (r resolved) Step(int) (int, bool)   { return 0, true }
func (r resolved) Result() []core.Point { return r }
