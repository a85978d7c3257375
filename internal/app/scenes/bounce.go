package scenes

import (
	"context"
	"math"

	"github.com/rook-computer/neomatrix/internal/shape"
)

var bounceColors = []string{"red", "green", "yellow", "cyan", "purple", "orange"}

// Bounce moves a filled ball inside a border and recolors it on every hit.
type Bounce struct {
	st     *Stage
	ball   *shape.Circle
	vx, vy float64
	hits   int
}

func (b *Bounce) Start(ctx context.Context, st *Stage) error {
	b.st = st
	w, h := st.size()
	border, err := shape.NewRectangle(0, 0, w, h, st.Opts(shape.WithColor("blue"))...)
	if err != nil {
		return err
	}
	r := math.Max(0, math.Min(2, float64(min(w, h))/2-2))
	b.ball, err = shape.NewCircle(float64(w/2), float64(h/2), r,
		st.Opts(shape.WithColor(bounceColors[0]), shape.WithFill("white"))...)
	if err != nil {
		return err
	}
	b.vx, b.vy = 1, 0.5
	return st.Canvas.Add(border, b.ball)
}

func (b *Bounce) Step(tick int) error {
	w, h := b.st.size()
	box := b.ball.Bounds()
	hit := false
	if box.MinX+b.vx < 1 || box.MaxX+b.vx > float64(w-2) {
		b.vx = -b.vx
		hit = true
	}
	if box.MinY+b.vy < 1 || box.MaxY+b.vy > float64(h-2) {
		b.vy = -b.vy
		hit = true
	}
	if hit {
		b.hits++
		if err := b.ball.SetColor(bounceColors[b.hits%len(bounceColors)]); err != nil {
			return err
		}
	}
	b.ball.Move(b.vx, b.vy)
	return nil
}

func (b *Bounce) Stop() error { return nil }
