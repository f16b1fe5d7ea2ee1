package maze

import (
	"math/rand"
	"time"
)

type Point struct {
	X, Y int
}

// Config describes a town of building blocks separated by streets
type Config struct {
	// Blocks across and down; the street lattice is derived from these
	BlocksX, BlocksY int

	// Street width and building size in tiles
	Street, Building int

	// Braiding: 0.0 (tree of streets, many dead ends) to 1.0 (every dead end looped)
	// Dead ends are closed by merging the adjacent buildings
	Braiding float64

	Seed int64 // Optional (0 = Random)
}

// Town is the generated layout, Blocked[row][col] in tiles
type Town struct {
	Blocked [][]bool
	Spawn   Point // Always an open street tile near the centre
}

// Generate creates a town whose street network is a braided spanning tree
// The outer ring of tiles is always wall
func Generate(cfg Config) Town {
	bx := max(cfg.BlocksX, 1)
	by := max(cfg.BlocksY, 1)
	street := max(cfg.Street, 1)
	building := max(cfg.Building, 1)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 1. Lattice: odd indices are junctions, even indices are walls
	// A junction joins its east/south neighbour when the wall between is open
	rows := by*2 + 1
	cols := bx*2 + 1
	lattice := make([][]bool, rows)
	for i := range lattice {
		lattice[i] = make([]bool, cols)
		for j := range lattice[i] {
			lattice[i][j] = true
		}
	}

	carve(lattice, Point{1, 1}, rng)
	if cfg.Braiding > 0 {
		braid(lattice, cfg.Braiding, rng)
	}

	// 2. Expand: open lattice cells become street tiles, walls become buildings
	// Junction and wall columns alternate widths street/building
	tiles := func(i int) int {
		if i%2 == 1 {
			return street
		}
		return building
	}
	offsets := func(n int) []int {
		out := make([]int, n+1)
		for i := 0; i < n; i++ {
			out[i+1] = out[i] + tiles(i)
		}
		return out
	}
	colOff := offsets(cols)
	rowOff := offsets(rows)

	blocked := make([][]bool, rowOff[rows])
	for ty := range blocked {
		blocked[ty] = make([]bool, colOff[cols])
	}
	for ly := 0; ly < rows; ly++ {
		for lx := 0; lx < cols; lx++ {
			for ty := rowOff[ly]; ty < rowOff[ly+1]; ty++ {
				for tx := colOff[lx]; tx < colOff[lx+1]; tx++ {
					blocked[ty][tx] = lattice[ly][lx]
				}
			}
		}
	}

	// 3. Seal the border so nothing walks off the map
	h, w := len(blocked), len(blocked[0])
	for x := 0; x < w; x++ {
		blocked[0][x] = true
		blocked[h-1][x] = true
	}
	for y := 0; y < h; y++ {
		blocked[y][0] = true
		blocked[y][w-1] = true
	}

	// 4. Spawn on the junction closest to the centre
	cx := (bx / 2) | 1
	cy := (by / 2) | 1
	if cx >= cols {
		cx = 1
	}
	if cy >= rows {
		cy = 1
	}
	spawn := Point{X: colOff[cx] + street/2, Y: rowOff[cy] + street/2}

	return Town{Blocked: blocked, Spawn: spawn}
}

// --- Core Algorithms ---

// carve opens a uniform spanning tree of junctions (recursive backtracker)
func carve(grid [][]bool, start Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	stack := []Point{start}
	grid[start.Y][start.X] = false

	dirs := []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = false
		grid[curr.Y+d.Y][curr.X+d.X] = false
		stack = append(stack, Point{curr.X + d.X, curr.Y + d.Y})
	}
}

// braid opens a wall next to dead-end junctions with the given probability
func braid(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	ortho := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			exits := 0
			for _, d := range ortho {
				if !grid[y+d.Y][x+d.X] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]Point, 0, 3)
			for _, d := range ortho {
				wx, wy := x+d.X, y+d.Y
				nx, ny := x+2*d.X, y+2*d.Y
				if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[wy][wx] {
					candidates = append(candidates, Point{wx, wy})
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid[c.Y][c.X] = false
			}
		}
	}
}
