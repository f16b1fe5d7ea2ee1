package vmath

import "github.com/lixenwraith/deadtown/core"

// Rand is the random source consumed by spawn and placement code
// Satisfied by *math/rand.Rand and *FastRand
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// RandomPoint returns a uniformly random cell in [0,cols) x [0,rows)
func RandomPoint(cols, rows int, rng Rand) core.Point {
	p := core.Point{}
	if cols > 1 {
		p.X = rng.Intn(cols)
	}
	if rows > 1 {
		p.Y = rng.Intn(rows)
	}
	return p
}

// ManhattanDistance returns |dx| + |dy| between two cells
func ManhattanDistance(a, b core.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Distance returns Euclidean distance between two world points
func Distance(a, b core.Vec) float64 {
	return Sqrt(DistanceSq(a, b))
}

// DistanceSq returns squared Euclidean distance
func DistanceSq(a, b core.Vec) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
