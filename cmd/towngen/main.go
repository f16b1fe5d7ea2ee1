// Command towngen previews generated towns and the longest street route from the spawn
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/maze"
	"github.com/lixenwraith/deadtown/navigation"
	"github.com/lixenwraith/deadtown/parameter"
	"github.com/lixenwraith/deadtown/tilemap"
	"github.com/lixenwraith/deadtown/vmath"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== TOWN GENERATOR ===")

		cfg := maze.Config{
			BlocksX:  getInt(reader, "Blocks across (default 6): ", 6),
			BlocksY:  getInt(reader, "Blocks down (default 4): ", 4),
			Street:   getInt(reader, "Street width in tiles (default 2): ", 2),
			Building: getInt(reader, "Building size in tiles (default 4): ", 4),
			Braiding: getFloat(reader, "Braiding Factor [0.0 - 1.0] (default 0.5): ", 0.5),
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		town := maze.Generate(cfg)
		grid := tilemap.Build(tilemap.FromTown(town, parameter.TileSize, "walls"+parameter.CollisionSuffix), parameter.CollisionSuffix, parameter.TileSize)
		route := longestRoute(grid, core.Point{X: town.Spawn.X, Y: town.Spawn.Y})
		dur := time.Since(startT)

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid Dimensions: %dx%d, walkable %d\n", grid.Cols, grid.Rows, grid.WalkableCount())
		if route != nil {
			fmt.Printf("Longest Route: %d steps\n", len(route)-1)
		} else {
			fmt.Println("Status: Spawn isolated")
		}

		draw(os.Stdout, grid, town.Spawn, route)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// longestRoute finds the walkable cell farthest from start by street distance and the path to it
func longestRoute(grid *tilemap.Grid, start core.Point) []core.Point {
	m := navigation.Matrix(grid.CollisionMatrix())
	if m.Blocked(start) {
		return nil
	}

	field := navigation.NewFlowField(m, start)
	field.Compute(m)

	far, best := start, 0
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			p := core.Point{X: col, Y: row}
			if d := field.GetDistance(p); d > best && !m.Blocked(p) {
				far, best = p, d
			}
		}
	}

	search := navigation.AStar{}.Begin(m, start, far)
	for {
		if _, done := search.Step(parameter.PathBudgetPerTick); done {
			return search.Result()
		}
	}
}

func draw(w io.Writer, grid *tilemap.Grid, spawn maze.Point, route []core.Point) {
	onRoute := make(map[core.Point]bool, len(route))
	for _, p := range route {
		onRoute[p] = true
	}
	var end core.Point
	if len(route) > 0 {
		end = route[len(route)-1]
	}

	var b strings.Builder
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			p := core.Point{X: col, Y: row}
			switch {
			case col == spawn.X && row == spawn.Y:
				b.WriteString("S")
			case len(route) > 0 && p == end:
				b.WriteString("E")
			case grid.IsBlocked(p):
				b.WriteString("█")
			case onRoute[p]:
				b.WriteString("•")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprint(w, b.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return vmath.Clamp(v, 0.0, 1.0)
}
