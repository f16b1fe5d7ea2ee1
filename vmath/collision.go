package vmath

import "github.com/lixenwraith/deadtown/core"

// Intersects reports strict AABB overlap; touching edges do not overlap
func Intersects(a, b core.Rect) bool {
	return a.X+a.Width > b.X &&
		a.X < b.X+b.Width &&
		a.Y+a.Height > b.Y &&
		a.Y < b.Y+b.Height
}

// Penetration returns the minimum translation that moves a out of b
// Only one axis is non-zero: the axis with the smaller overlap, pushed away from b's centre
// Returns zero vector if boxes do not overlap
func Penetration(a, b core.Rect) core.Vec {
	if !Intersects(a, b) {
		return core.Vec{}
	}

	// Overlap depth when pushing a to each side of b
	pushLeft := a.Right() - b.X
	pushRight := b.Right() - a.X
	pushUp := a.Bottom() - b.Y
	pushDown := b.Bottom() - a.Y

	dx := -pushLeft
	if pushRight < pushLeft {
		dx = pushRight
	}
	dy := -pushUp
	if pushDown < pushUp {
		dy = pushDown
	}

	if Abs(dx) <= Abs(dy) {
		return core.Vec{X: dx}
	}
	return core.Vec{Y: dy}
}
