package scenes

import (
	"context"

	"github.com/rook-computer/neomatrix/internal/assets"
	"github.com/rook-computer/neomatrix/internal/shape"
)

// Sprites marches an invader along the top and sends a pac-man along the
// bottom eating a row of dots.
type Sprites struct {
	st      *Stage
	invader *shape.Sprite
	pacman  *shape.Sprite
	dots    []*shape.Point
	dir     float64
}

func loadSprite(st *Stage, name string, x, y float64) (*shape.Sprite, error) {
	frames, err := assets.SpriteFrames(name)
	if err != nil {
		return nil, err
	}
	return shape.NewSprite(x, y, frames, assets.SpriteColors, st.Opts()...)
}

func (s *Sprites) Start(ctx context.Context, st *Stage) error {
	s.st = st
	w, h := st.size()
	var err error
	if s.invader, err = loadSprite(st, "invader", 0, float64(h/2)); err != nil {
		return err
	}
	if s.pacman, err = loadSprite(st, "pacman", -8, 0); err != nil {
		return err
	}
	s.dots = s.dots[:0]
	for x := 1; x < w; x += 3 {
		dot, err := shape.NewPoint(float64(x), 3, st.Opts(shape.WithColor("white"))...)
		if err != nil {
			return err
		}
		s.dots = append(s.dots, dot)
		if err := st.Canvas.Add(dot); err != nil {
			return err
		}
	}
	s.dir = 1
	return st.Canvas.Add(s.invader, s.pacman)
}

func (s *Sprites) Step(tick int) error {
	w, _ := s.st.size()
	if every(tick, 4) {
		box := s.invader.Bounds()
		if box.MaxX+s.dir > float64(w-1) || box.MinX+s.dir < 0 {
			s.dir = -s.dir
		}
		s.invader.Move(s.dir, 0)
	}
	if every(tick, 8) {
		s.invader.NextImage()
	}

	if every(tick, 2) {
		s.pacman.Move(1, 0)
		s.pacman.NextImage()
		if s.pacman.Bounds().MinX >= float64(w) {
			s.pacman.SetPosition(-8, 0)
			for _, dot := range s.dots {
				dot.Show()
			}
		}
		for _, dot := range s.dots {
			if dot.Visible() && eats(s.pacman, dot) {
				dot.Hide()
			}
		}
	}
	return nil
}

// eats reports whether a's horizontal span covers the single-cell target
// and their vertical extents overlap.
func eats(a, target shape.Shape) bool {
	sides := a.CheckCollision(target)
	return sides.Has(shape.Right) && sides.Has(shape.Top) && sides.Has(shape.Bottom)
}

func (s *Sprites) Stop() error { return nil }

// Hearts beats a group of a large and a small heart.
type Hearts struct {
	st    *Stage
	group *shape.SpriteGroup
}

func (s *Hearts) Start(ctx context.Context, st *Stage) error {
	s.st = st
	frames, err := assets.SpriteFrames("heart")
	if err != nil {
		return err
	}
	var parts []shape.Shape
	for _, f := range frames {
		part, err := shape.NewSprite(0, 0, []string{f}, assets.SpriteColors, st.Opts()...)
		if err != nil {
			return err
		}
		parts = append(parts, part)
	}
	w, h := st.size()
	s.group, err = shape.NewSpriteGroup(0, 0, parts, st.Opts()...)
	if err != nil {
		return err
	}
	box := s.group.Bounds()
	s.group.SetPosition(float64((w-int(box.MaxX)-1)/2), float64((h-int(box.MaxY)-1)/2))
	return st.Canvas.Add(s.group)
}

func (s *Hearts) Step(tick int) error {
	if !every(tick, 8) {
		return nil
	}
	if (tick/8)%2 == 0 {
		s.group.SetBrightness(s.st.Brightness * 3)
	} else {
		s.group.SetBrightness(s.st.Brightness)
	}
	return nil
}

func (s *Hearts) Stop() error { return nil }
