package tilemap

import (
	"github.com/lixenwraith/deadtown/maze"
)

// Layer names used for generated towns
const (
	TownGroundLayer = "ground_below"
	TownRoofLayer   = "roofs_above"
)

// FromTown lays out a generated town as placements
// Every cell gets a ground tile; blocked cells add a wall tile on wallLayer, and a roof tile unless they face the street below
func FromTown(town maze.Town, tileSize float64, wallLayer string) []Placement {
	var out []Placement
	for row, line := range town.Blocked {
		for col, blocked := range line {
			x := float64(col) * tileSize
			y := float64(row) * tileSize
			out = append(out, Placement{Layer: TownGroundLayer, GID: 1, X: x, Y: y, Width: tileSize, Height: tileSize})
			if !blocked {
				continue
			}
			out = append(out, Placement{Layer: wallLayer, GID: 2, X: x, Y: y, Width: tileSize, Height: tileSize})
			if row+1 < len(town.Blocked) && town.Blocked[row+1][col] {
				// Inner building cells get a roof; the street-facing bottom edge stays a wall face
				out = append(out, Placement{Layer: TownRoofLayer, GID: 3, X: x, Y: y, Width: tileSize, Height: tileSize})
			}
		}
	}
	return out
}
