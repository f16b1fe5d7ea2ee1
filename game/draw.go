package game

import (
	"github.com/lixenwraith/deadtown/depth"
	"github.com/lixenwraith/deadtown/entity"
)

// positionCharacter pushes one character's visual state to the sink
// Frame is -1 when the sheet failed validation so the sink can draw a placeholder
func (s *Simulation) positionCharacter(c *entity.Character) {
	frame := -1
	if s.framesOK {
		frame = c.FrameIndex()
	}
	s.draw.Position(c.Drawable, c.Pos.X, c.Pos.Y, c.Alpha, frame)
}

func (s *Simulation) syncDrawables() {
	s.positionCharacter(s.player)
	for _, c := range s.zombies {
		s.positionCharacter(c)
	}
	for _, c := range s.npcs {
		s.positionCharacter(c)
	}
}

// order sorts every drawable handle by depth and hands the order to the sink
func (s *Simulation) order() {
	s.tags = s.tags[:0]
	s.handles = s.handles[:0]

	for _, t := range s.tiles {
		s.tags = append(s.tags, t.tag)
		s.handles = append(s.handles, t.handle)
	}
	s.appendCharacter(s.player)
	for _, c := range s.zombies {
		s.appendCharacter(c)
	}
	for _, c := range s.npcs {
		s.appendCharacter(c)
	}
	for _, it := range s.items.Items() {
		s.tags = append(s.tags, depth.Tag{Class: depth.ClassNone, Y: it.Pos.Y})
		s.handles = append(s.handles, it.Drawable)
	}

	idx := s.sorter.Sort(s.tags)
	s.ordered = s.ordered[:0]
	for _, i := range idx {
		s.ordered = append(s.ordered, s.handles[i])
	}
	s.draw.Order(s.ordered)
}

func (s *Simulation) appendCharacter(c *entity.Character) {
	s.tags = append(s.tags, depth.Tag{Class: depth.ClassNone, Y: c.Pos.Y})
	s.handles = append(s.handles, c.Drawable)
}
