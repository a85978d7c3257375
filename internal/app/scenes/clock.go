package scenes

import (
	"context"
	"math"

	"github.com/rook-computer/neomatrix/internal/shape"
)

// Clock sweeps a hand around a dial once every 60 ticks.
type Clock struct {
	hand   *shape.Line
	cx, cy float64
	radius float64
}

func (c *Clock) Start(ctx context.Context, st *Stage) error {
	w, h := st.size()
	c.cx, c.cy = float64(w/2), float64(h/2)
	c.radius = math.Max(0, float64(min(w, h)/2-1))

	dial, err := shape.NewCircle(c.cx, c.cy, c.radius, st.Opts(shape.WithColor("blue"))...)
	if err != nil {
		return err
	}
	if err := st.Canvas.Add(dial); err != nil {
		return err
	}

	// Marks at 12, 3, 6 and 9 o'clock, pointing inward from the dial.
	mark := int(math.Max(1, c.radius/4))
	r := int(c.radius)
	x, y := int(c.cx), int(c.cy)
	for _, m := range []struct {
		vertical bool
		x, y     int
	}{
		{true, x, y + r - mark + 1},
		{true, x, y - r},
		{false, x + r - mark + 1, y},
		{false, x - r, y},
	} {
		var l *shape.Line
		if m.vertical {
			l, err = shape.NewVLine(float64(m.x), float64(m.y), mark-1, st.Opts(shape.WithColor("yellow"))...)
		} else {
			l, err = shape.NewHLine(float64(m.x), float64(m.y), mark-1, st.Opts(shape.WithColor("yellow"))...)
		}
		if err != nil {
			return err
		}
		if err := st.Canvas.Add(l); err != nil {
			return err
		}
	}

	c.hand, err = shape.NewLine(c.cx, c.cy, c.cx, c.cy+c.radius-1, st.Opts(shape.WithColor("red"))...)
	if err != nil {
		return err
	}
	return st.Canvas.Add(c.hand)
}

func (c *Clock) Step(tick int) error {
	angle := math.Pi/2 - 2*math.Pi*float64(tick%60)/60
	length := math.Max(0, c.radius-1)
	c.hand.SetEnd(c.cx+length*math.Cos(angle), c.cy+length*math.Sin(angle))
	return nil
}

func (c *Clock) Stop() error { return nil }
