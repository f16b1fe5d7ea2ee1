package maze

import "testing"

// TestGenerateBorderSealed verifies the outer ring is always wall
func TestGenerateBorderSealed(t *testing.T) {
	town := Generate(Config{BlocksX: 4, BlocksY: 3, Street: 2, Building: 3, Braiding: 0.5, Seed: 7})

	h := len(town.Blocked)
	w := len(town.Blocked[0])
	for x := 0; x < w; x++ {
		if !town.Blocked[0][x] || !town.Blocked[h-1][x] {
			t.Fatalf("border column %d open", x)
		}
	}
	for y := 0; y < h; y++ {
		if !town.Blocked[y][0] || !town.Blocked[y][w-1] {
			t.Fatalf("border row %d open", y)
		}
	}
}

// TestGenerateDimensions verifies tile size derives from block counts and widths
func TestGenerateDimensions(t *testing.T) {
	town := Generate(Config{BlocksX: 3, BlocksY: 2, Street: 2, Building: 4, Seed: 1})

	// cols = (bx+1) buildings + bx streets
	wantW := 4*4 + 3*2
	wantH := 3*4 + 2*2
	if len(town.Blocked) != wantH || len(town.Blocked[0]) != wantW {
		t.Errorf("size = %dx%d, want %dx%d", len(town.Blocked[0]), len(town.Blocked), wantW, wantH)
	}
}

// TestGenerateConnected verifies every street tile is reachable from the spawn
func TestGenerateConnected(t *testing.T) {
	town := Generate(Config{BlocksX: 6, BlocksY: 5, Street: 1, Building: 2, Braiding: 0.3, Seed: 42})

	if town.Blocked[town.Spawn.Y][town.Spawn.X] {
		t.Fatalf("spawn %v is blocked", town.Spawn)
	}

	h, w := len(town.Blocked), len(town.Blocked[0])
	seen := make([][]bool, h)
	for i := range seen {
		seen[i] = make([]bool, w)
	}
	queue := []Point{town.Spawn}
	seen[town.Spawn.Y][town.Spawn.X] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			n := Point{p.X + d.X, p.Y + d.Y}
			if n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h || seen[n.Y][n.X] || town.Blocked[n.Y][n.X] {
				continue
			}
			seen[n.Y][n.X] = true
			queue = append(queue, n)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !town.Blocked[y][x] && !seen[y][x] {
				t.Fatalf("street tile (%d,%d) unreachable from spawn", x, y)
			}
		}
	}
}

// TestGenerateDeterministic verifies equal seeds produce equal towns
func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{BlocksX: 5, BlocksY: 5, Street: 1, Building: 1, Braiding: 0.7, Seed: 99}
	a := Generate(cfg)
	b := Generate(cfg)
	for y := range a.Blocked {
		for x := range a.Blocked[y] {
			if a.Blocked[y][x] != b.Blocked[y][x] {
				t.Fatalf("towns differ at (%d,%d)", x, y)
			}
		}
	}
}
