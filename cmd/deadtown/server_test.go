package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lixenwraith/deadtown/maze"
	"github.com/lixenwraith/deadtown/status"
	"github.com/lixenwraith/deadtown/tilemap"
)

// TestStatusEndpoint verifies the snapshot is served as JSON
func TestStatusEndpoint(t *testing.T) {
	reg := status.NewRegistry()
	reg.Sim().Score.Store(42)

	srv := httptest.NewServer(newStatusRouter(reg, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body[status.KeyScore] != float64(42) {
		t.Errorf("score = %v", body[status.KeyScore])
	}
}

// TestGridEndpoint verifies the collision grid is served as text rows
func TestGridEndpoint(t *testing.T) {
	town := maze.Generate(maze.Config{BlocksX: 2, BlocksY: 2, Street: 1, Building: 1, Seed: 7})
	grid := tilemap.Build(tilemap.FromTown(town, 16, "walls_collision"), "_collision", 16)

	srv := httptest.NewServer(newStatusRouter(status.NewRegistry(), grid))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/grid")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)

	rows := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(rows) != grid.Rows || len(rows[0]) != grid.Cols {
		t.Fatalf("grid text %dx%d, want %dx%d", len(rows[0]), len(rows), grid.Cols, grid.Rows)
	}
	if strings.Trim(rows[0], "#") != "" {
		t.Errorf("top row should be sealed: %q", rows[0])
	}
}

// TestParseMaze verifies the WxH flag format
func TestParseMaze(t *testing.T) {
	if bx, by, err := parseMaze("6x4"); err != nil || bx != 6 || by != 4 {
		t.Errorf("6x4 = %d,%d,%v", bx, by, err)
	}
	for _, bad := range []string{"6", "0x3", "ax2", "3x-1"} {
		if _, _, err := parseMaze(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

// TestCharacterFramesValid verifies the built-in sheet passes validation
func TestCharacterFramesValid(t *testing.T) {
	if err := characterFrames().Validate(); err != nil {
		t.Error(err)
	}
}
