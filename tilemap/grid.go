// Package tilemap builds the collision grid from tile placements and converts between world and grid space
package tilemap

import (
	"errors"
	"math"
	"strings"

	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/vmath"
)

// ErrNoWalkableCell is returned when random placement finds no walkable cell
var ErrNoWalkableCell = errors.New("no walkable cell")

// Cell is one grid unit; WorldX/WorldY is the cell anchor (tile centre) in world space
type Cell struct {
	WorldX, WorldY float64
	Walkable       bool
}

// Placement is one tile (or multi-tile object) placed on a named layer
// X, Y is the anchor of its top-left tile; Width/Height span whole tiles in world units
type Placement struct {
	Layer         string
	GID           int
	X, Y          float64
	Width, Height float64
}

// Grid is a dense rows × cols collision grid; immutable after Build
type Grid struct {
	TileSize   float64
	MinX, MinY float64
	Rows, Cols int
	Cells      [][]Cell

	walkable []core.Point
}

// Build converts placements into a grid aligned to tileSize
// A cell is blocked iff a placement covering it sits on a layer ending in suffix
// No placements yields an empty 0×0 grid
func Build(placements []Placement, suffix string, tileSize float64) *Grid {
	g := &Grid{TileSize: tileSize}
	if len(placements) == 0 || tileSize <= 0 {
		return g
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range placements {
		w, h := span(p.Width, tileSize), span(p.Height, tileSize)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X+w)
		maxY = math.Max(maxY, p.Y+h)
	}

	g.MinX, g.MinY = minX, minY
	g.Cols = int(math.Round((maxX - minX) / tileSize))
	g.Rows = int(math.Round((maxY - minY) / tileSize))

	g.Cells = make([][]Cell, g.Rows)
	for row := range g.Cells {
		g.Cells[row] = make([]Cell, g.Cols)
		for col := range g.Cells[row] {
			g.Cells[row][col] = Cell{
				WorldX:   minX + float64(col)*tileSize,
				WorldY:   minY + float64(row)*tileSize,
				Walkable: true,
			}
		}
	}

	for _, p := range placements {
		if !strings.HasSuffix(p.Layer, suffix) {
			continue
		}
		col0 := int(math.Round((p.X - minX) / tileSize))
		row0 := int(math.Round((p.Y - minY) / tileSize))
		cols := int(math.Round(span(p.Width, tileSize) / tileSize))
		rows := int(math.Round(span(p.Height, tileSize) / tileSize))
		for row := row0; row < row0+rows && row < g.Rows; row++ {
			for col := col0; col < col0+cols && col < g.Cols; col++ {
				g.Cells[row][col].Walkable = false
			}
		}
	}

	for row := range g.Cells {
		for col := range g.Cells[row] {
			if g.Cells[row][col].Walkable {
				g.walkable = append(g.walkable, core.Point{X: col, Y: row})
			}
		}
	}

	return g
}

// span treats zero dimensions as one tile
func span(v, tileSize float64) float64 {
	if v < tileSize {
		return tileSize
	}
	return v
}

// Empty reports "no map loaded"
func (g *Grid) Empty() bool {
	return g == nil || g.Rows == 0 || g.Cols == 0
}

// InBounds reports whether p addresses a cell
func (g *Grid) InBounds(p core.Point) bool {
	return !g.Empty() && p.X >= 0 && p.Y >= 0 && p.X < g.Cols && p.Y < g.Rows
}

// IsBlocked returns true for blocked or out-of-range cells
func (g *Grid) IsBlocked(p core.Point) bool {
	if !g.InBounds(p) {
		return true
	}
	return !g.Cells[p.Y][p.X].Walkable
}

// WorldToGrid rounds a world coordinate to the nearest cell
// Returns false outside the grid
func (g *Grid) WorldToGrid(x, y float64) (core.Point, bool) {
	if g.Empty() {
		return core.Point{}, false
	}
	rx := vmath.RoundTo(x-g.MinX, g.TileSize)
	ry := vmath.RoundTo(y-g.MinY, g.TileSize)
	p := core.Point{
		X: int(rx / g.TileSize),
		Y: int(ry / g.TileSize),
	}
	if !g.InBounds(p) {
		return core.Point{}, false
	}
	return p, true
}

// GridToWorld returns the world anchor of cell p; p need not be in bounds
func (g *Grid) GridToWorld(p core.Point) core.Vec {
	return core.Vec{
		X: g.MinX + float64(p.X)*g.TileSize,
		Y: g.MinY + float64(p.Y)*g.TileSize,
	}
}

// ToWaypoints converts a grid path into world waypoints (cell centres)
func (g *Grid) ToWaypoints(cells []core.Point) []core.Vec {
	if len(cells) == 0 {
		return nil
	}
	out := make([]core.Vec, len(cells))
	for i, c := range cells {
		out[i] = g.GridToWorld(c)
	}
	return out
}

// CellRect returns the world bounds of cell p
func (g *Grid) CellRect(p core.Point) core.Rect {
	return core.RectAround(g.GridToWorld(p), g.TileSize, g.TileSize)
}

// BlockedRectsIn appends the world bounds of every blocked cell overlapping r
func (g *Grid) BlockedRectsIn(r core.Rect, dst []core.Rect) []core.Rect {
	if g.Empty() {
		return dst
	}
	half := g.TileSize / 2
	col0 := int(math.Floor((r.X - g.MinX + half) / g.TileSize))
	row0 := int(math.Floor((r.Y - g.MinY + half) / g.TileSize))
	col1 := int(math.Floor((r.Right() - g.MinX + half) / g.TileSize))
	row1 := int(math.Floor((r.Bottom() - g.MinY + half) / g.TileSize))

	for row := max(row0, 0); row <= min(row1, g.Rows-1); row++ {
		for col := max(col0, 0); col <= min(col1, g.Cols-1); col++ {
			if g.Cells[row][col].Walkable {
				continue
			}
			cr := g.CellRect(core.Point{X: col, Y: row})
			if vmath.Intersects(r, cr) {
				dst = append(dst, cr)
			}
		}
	}
	return dst
}

// CollisionMatrix returns 1 for blocked and 0 for walkable cells, indexed [row][col]
func (g *Grid) CollisionMatrix() [][]int {
	if g.Empty() {
		return [][]int{}
	}
	m := make([][]int, g.Rows)
	for row := range m {
		m[row] = make([]int, g.Cols)
		for col := range m[row] {
			if !g.Cells[row][col].Walkable {
				m[row][col] = 1
			}
		}
	}
	return m
}

// WalkableCount returns the number of walkable cells
func (g *Grid) WalkableCount() int {
	if g == nil {
		return 0
	}
	return len(g.walkable)
}

// RandomWalkableCell draws cells uniformly until a walkable one is found
// After maxAttempts misses it picks uniformly from the walkable set; a fully blocked or empty grid fails fast
func (g *Grid) RandomWalkableCell(rng vmath.Rand, maxAttempts int) (core.Point, error) {
	if g.Empty() || len(g.walkable) == 0 {
		return core.Point{}, ErrNoWalkableCell
	}

	for i := 0; i < maxAttempts; i++ {
		p := vmath.RandomPoint(g.Cols, g.Rows, rng)
		if g.Cells[p.Y][p.X].Walkable {
			return p, nil
		}
	}
	return g.walkable[rng.Intn(len(g.walkable))], nil
}
