package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/maze"
	"github.com/lixenwraith/deadtown/tilemap"
)

// TestLongestRouteFromSpawn verifies the route starts at the spawn and walks open cells
func TestLongestRouteFromSpawn(t *testing.T) {
	town := maze.Generate(maze.Config{BlocksX: 4, BlocksY: 3, Street: 2, Building: 3, Braiding: 0.3, Seed: 11})
	grid := tilemap.Build(tilemap.FromTown(town, 16, "walls_collision"), "_collision", 16)
	start := core.Point{X: town.Spawn.X, Y: town.Spawn.Y}

	route := longestRoute(grid, start)
	if len(route) < 2 {
		t.Fatalf("route length %d", len(route))
	}
	if route[0] != start {
		t.Errorf("route starts at %v, want %v", route[0], start)
	}
	for i, p := range route {
		if grid.IsBlocked(p) {
			t.Fatalf("step %d at %v is blocked", i, p)
		}
	}

	var out bytes.Buffer
	draw(&out, grid, town.Spawn, route)
	text := out.String()
	if strings.Count(text, "S") != 1 || strings.Count(text, "E") != 1 {
		t.Errorf("markers missing:\n%s", text)
	}
	if lines := strings.Count(text, "\n"); lines != grid.Rows {
		t.Errorf("rows = %d, want %d", lines, grid.Rows)
	}
}

// TestLongestRouteBlockedStart verifies a blocked start yields no route
func TestLongestRouteBlockedStart(t *testing.T) {
	town := maze.Generate(maze.Config{BlocksX: 2, BlocksY: 2, Street: 1, Building: 1, Seed: 3})
	grid := tilemap.Build(tilemap.FromTown(town, 16, "walls_collision"), "_collision", 16)
	if route := longestRoute(grid, core.Point{}); route != nil {
		t.Errorf("route from wall = %v", route)
	}
}
