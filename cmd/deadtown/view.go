package main

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadtown/game"
	"github.com/lixenwraith/deadtown/item"
	"github.com/lixenwraith/deadtown/parameter"
)

// Frame layout boundaries of a character sheet
const (
	firstHumanFrame  = 2
	firstZombieFrame = 14
)

type sprite struct {
	kind  game.Kind
	layer string
	name  string
	x, y  float64
	alpha float64
	frame int
}

// glyphView is a terminal drawable sink and camera
// The simulation writes from the main loop; Render reads from the same goroutine
// A tile spans tileSize/ViewScale columns but one row, keeping the town's aspect in a terminal
type glyphView struct {
	tileSize        float64
	tileCols        int
	collisionSuffix string
	aboveSuffix     string

	sprites map[int]*sprite
	order   []int
	next    int

	camX, camY float64
}

func newGlyphView(tileSize float64, collisionSuffix, aboveSuffix string) *glyphView {
	return &glyphView{
		tileSize:        tileSize,
		tileCols:        max(int(math.Round(tileSize/parameter.ViewScale)), 1),
		collisionSuffix: collisionSuffix,
		aboveSuffix:     aboveSuffix,
		sprites:         make(map[int]*sprite),
	}
}

func (v *glyphView) Create(kind game.Kind, layer, name string) int {
	v.next++
	v.sprites[v.next] = &sprite{kind: kind, layer: layer, name: name, alpha: 1}
	return v.next
}

func (v *glyphView) Position(h int, x, y, alpha float64, frame int) {
	s, ok := v.sprites[h]
	if !ok {
		return
	}
	s.x, s.y, s.alpha, s.frame = x, y, alpha, frame
}

func (v *glyphView) Remove(h int) {
	delete(v.sprites, h)
}

func (v *glyphView) Order(handles []int) {
	v.order = append(v.order[:0], handles...)
}

func (v *glyphView) MoveCenterTo(x, y float64) {
	v.camX, v.camY = x, y
}

// Len returns the number of live sprites
func (v *glyphView) Len() int { return len(v.sprites) }

// Render paints sprites in depth order, then the HUD on the top row
func (v *glyphView) Render(screen tcell.Screen, hud string) {
	screen.Clear()
	w, h := screen.Size()

	for _, handle := range v.order {
		s, ok := v.sprites[handle]
		if !ok {
			continue
		}
		col, row := v.project(s.x, s.y, w, h)
		r, style := v.glyph(s)
		if s.kind == game.KindTile {
			// Tile anchors are cell centres
			left := col - v.tileCols/2
			for c := left; c < left+v.tileCols; c++ {
				if c >= 0 && c < w && row >= 1 && row < h {
					screen.SetContent(c, row, r, nil, style)
				}
			}
			continue
		}
		if col >= 0 && col < w && row >= 1 && row < h {
			screen.SetContent(col, row, r, nil, style)
		}
	}

	for i, r := range []rune(hud) {
		if i >= w {
			break
		}
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

// project maps world coordinates to a screen cell with the camera at the centre
func (v *glyphView) project(x, y float64, w, h int) (int, int) {
	col := int(math.Round((x-v.camX)/parameter.ViewScale)) + w/2
	row := int(math.Round((y-v.camY)/v.tileSize)) + h/2
	return col, row
}

func (v *glyphView) glyph(s *sprite) (rune, tcell.Style) {
	style := tcell.StyleDefault
	if s.alpha < 0.7 {
		style = style.Dim(true)
	}

	switch s.kind {
	case game.KindTile:
		switch {
		case strings.HasSuffix(s.layer, v.aboveSuffix):
			return '▒', style.Foreground(tcell.ColorGray)
		case strings.HasSuffix(s.layer, v.collisionSuffix):
			return '█', style.Foreground(tcell.ColorMaroon)
		}
		return '·', style.Foreground(tcell.ColorDarkGreen)

	case game.KindCharacter:
		switch {
		case s.frame < 0:
			return '?', style.Foreground(tcell.ColorFuchsia)
		case s.frame < firstHumanFrame:
			return 'x', style.Foreground(tcell.ColorRed)
		case s.frame >= firstZombieFrame:
			return 'Z', style.Foreground(tcell.ColorGreen).Bold(true)
		case s.name == "player":
			return '@', style.Foreground(tcell.ColorYellow).Bold(true)
		}
		return 'h', style.Foreground(tcell.ColorWhite)

	case game.KindItem:
		return itemGlyph(s.name), style.Foreground(tcell.ColorAqua)
	}
	return ' ', style
}

func itemGlyph(name string) rune {
	t, ok := item.TypeByName(name)
	if !ok {
		return '*'
	}
	switch t {
	case item.Brain:
		return 'b'
	case item.Chip:
		return 'c'
	case item.HealthPack:
		return '+'
	case item.Key:
		return 'k'
	case item.Keycard:
		return 'K'
	case item.Sprout:
		return 's'
	case item.Shiny:
		return '$'
	}
	return '*'
}
