package tilemap

import (
	"github.com/lixenwraith/deadtown/depth"
)

// Chunk is one block of an infinite-map tile layer
// X, Y are in tiles; Data holds Width*Height global tile ids, 0 = empty
type Chunk struct {
	X, Y          int
	Width, Height int
	Data          []int
}

// Layer is a named tile layer as delivered by the map loader
// Finite maps use Data/Width directly; infinite maps use Chunks
type Layer struct {
	Name   string
	Width  int
	Data   []int
	Chunks []Chunk
}

// ExpandLayers flattens layers into one placement per non-empty tile
func ExpandLayers(layers []Layer, tileW, tileH float64) []Placement {
	var out []Placement
	for _, l := range layers {
		if len(l.Data) > 0 && l.Width > 0 {
			out = appendData(out, l.Name, 0, 0, l.Width, l.Data, tileW, tileH)
		}
		for _, c := range l.Chunks {
			if c.Width <= 0 {
				continue
			}
			out = appendData(out, l.Name, c.X, c.Y, c.Width, c.Data, tileW, tileH)
		}
	}
	return out
}

func appendData(out []Placement, layer string, originX, originY, width int, data []int, tileW, tileH float64) []Placement {
	for i, gid := range data {
		if gid <= 0 {
			continue
		}
		x := i % width
		y := i / width
		out = append(out, Placement{
			Layer:  layer,
			GID:    gid,
			X:      float64(originX+x) * tileW,
			Y:      float64(originY+y) * tileH,
			Width:  tileW,
			Height: tileH,
		})
	}
	return out
}

// Classify returns the depth class of every placement's layer
func Classify(placements []Placement, belowSuffix, aboveSuffix string) []depth.Class {
	out := make([]depth.Class, len(placements))
	for i, p := range placements {
		out[i] = depth.LayerClass(p.Layer, belowSuffix, aboveSuffix)
	}
	return out
}
