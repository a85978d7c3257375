package scenes

import (
	"context"
	"errors"
	"image"

	"github.com/rook-computer/neomatrix/internal/canvas"
	"github.com/rook-computer/neomatrix/internal/shape"
)

var paintColors = []string{"red", "green", "blue", "yellow", "purple", "cyan"}

// Paint draws a frame and a ring and flood fills the areas they bound,
// cycling the fill colors.
type Paint struct {
	st      *Stage
	seeds   []image.Point
	regions []*shape.Region
}

func (p *Paint) Start(ctx context.Context, st *Stage) error {
	p.st = st
	w, h := st.size()
	frame, err := shape.NewRectangle(1, 1, w-2, h-2, st.Opts(shape.WithColor("white"))...)
	if err != nil {
		return err
	}
	cx, cy := w/2, h/2
	ring, err := shape.NewCircle(float64(cx), float64(cy), float64(min(w, h)/4), st.Opts(shape.WithColor("white"))...)
	if err != nil {
		return err
	}
	if err := st.Canvas.Add(frame, ring); err != nil {
		return err
	}
	p.seeds = []image.Point{{X: cx, Y: cy}, {X: 2, Y: 2}, {X: 0, Y: 0}}
	p.regions = nil
	return nil
}

func (p *Paint) Step(tick int) error {
	if !every(tick, 16) {
		return nil
	}
	c := p.st.Canvas
	for _, r := range p.regions {
		if err := c.Remove(r); err != nil {
			return err
		}
	}
	p.regions = p.regions[:0]

	round := tick / 16
	for i, seed := range p.seeds {
		color := paintColors[(round+i)%len(paintColors)]
		r, err := c.Fill(seed.X, seed.Y, color, p.st.Brightness)
		var oob *canvas.OutOfBoundsError
		if errors.As(err, &oob) {
			continue
		}
		if err != nil {
			return err
		}
		p.regions = append(p.regions, r)
	}
	return nil
}

func (p *Paint) Stop() error { return nil }
