package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/status"
	"github.com/lixenwraith/deadtown/tilemap"
)

// newStatusRouter serves read-only debug views of a running game
// The grid is rendered once; it does not change after load
func newStatusRouter(reg *status.Registry, grid *tilemap.Grid) http.Handler {
	gridText := renderGrid(grid)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, reg.Snapshot())
	})
	r.Get("/grid", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(gridText))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("status encode: %v", err)
	}
}

// renderGrid draws blocked cells as '#' and walkable cells as '.'
func renderGrid(g *tilemap.Grid) string {
	if g == nil || g.Empty() {
		return ""
	}
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.IsBlocked(core.Point{X: col, Y: row}) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
