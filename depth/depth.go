// Package depth orders drawables for painter's-algorithm layering in a top-down view
package depth

import (
	"sort"
	"strings"
)

// Class is the depth layer a drawable belongs to
type Class uint8

const (
	// ClassNone marks non-map drawables (characters, items)
	ClassNone Class = iota
	// ClassBelow map layers paint before everything else
	ClassBelow
	// ClassMiddle map layers interleave with entities by y
	ClassMiddle
	// ClassAbove map layers paint after everything else
	ClassAbove
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassBelow:
		return "below"
	case ClassMiddle:
		return "middle"
	case ClassAbove:
		return "above"
	}
	return "unknown"
}

// LayerClass derives the class of a map layer from its name suffix
// Layers with neither suffix are middle layers
func LayerClass(name, belowSuffix, aboveSuffix string) Class {
	switch {
	case belowSuffix != "" && strings.HasSuffix(name, belowSuffix):
		return ClassBelow
	case aboveSuffix != "" && strings.HasSuffix(name, aboveSuffix):
		return ClassAbove
	}
	return ClassMiddle
}

// Tag is the sort key of one drawable
type Tag struct {
	Class Class
	Y     float64
}

// band maps a class to its paint band: below=0, middle/none=1, above=2
func band(c Class) int {
	switch c {
	case ClassBelow:
		return 0
	case ClassAbove:
		return 2
	}
	return 1
}

// Less reports whether a paints before b
func Less(a, b Tag) bool {
	ba, bb := band(a.Class), band(b.Class)
	if ba != bb {
		return ba < bb
	}
	if ba == 1 {
		return a.Y < b.Y
	}
	// Within below/above bands keep prior order
	return false
}

// Sorter sorts drawable handles without moving the drawables
// The index buffer is reused across ticks
type Sorter struct {
	order []int
}

// NewSorter creates a sorter with capacity hint
func NewSorter(capacity int) *Sorter {
	return &Sorter{order: make([]int, 0, capacity)}
}

// Sort returns indices into tags in paint order
// Equal keys keep their input order; the returned slice is owned by the sorter until the next call
func (s *Sorter) Sort(tags []Tag) []int {
	s.order = s.order[:0]
	for i := range tags {
		s.order = append(s.order, i)
	}
	sort.SliceStable(s.order, func(i, j int) bool {
		return Less(tags[s.order[i]], tags[s.order[j]])
	})
	return s.order
}

// Sort is the allocation-per-call form of Sorter.Sort
func Sort(tags []Tag) []int {
	return NewSorter(len(tags)).Sort(tags)
}
