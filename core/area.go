package core

// Point is a discrete grid coordinate (column, row)
type Point struct {
	X, Y int
}

// Vec is a continuous world-space coordinate
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned bounding box in world space
// X, Y is the top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAround returns a box of the given size centred on c (anchor 0.5)
func RectAround(c Vec, width, height float64) Rect {
	return Rect{
		X:      c.X - width/2,
		Y:      c.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Inset shrinks the box by the given margins on each side
// Margins larger than the box collapse it to a zero-size box at its centre
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	out := Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
	if out.Width < 0 {
		out.X = r.X + r.Width/2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = r.Y + r.Height/2
		out.Height = 0
	}
	return out
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the box centre
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
