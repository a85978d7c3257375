package scenes

import (
	"context"

	"github.com/rook-computer/neomatrix/internal/assets"
	"github.com/rook-computer/neomatrix/internal/shape"
)

var marqueeColors = []string{"white", "yellow", "cyan", "orange"}

// Marquee scrolls a message from right to left, one column per tick.
type Marquee struct {
	Message string
	// TrueType renders with the embedded outline font instead of TomThumb.
	TrueType bool
	SizePx   float64

	st     *Stage
	text   *shape.Text
	y      float64
	passes int
}

func (m *Marquee) Start(ctx context.Context, st *Stage) error {
	m.st = st
	face := shape.DefaultTypeface()
	if m.TrueType {
		size := m.SizePx
		if size <= 0 {
			size = 11
		}
		tt, err := shape.TrueType(assets.FontTTF, size)
		if err != nil {
			st.logger().Errorf("scene", "truetype font: %v; using fallback face", err)
			face = shape.FallbackTypeface()
		} else {
			face = tt
		}
	}
	w, h := st.size()
	var err error
	m.text, err = shape.NewText(float64(w), 0, m.Message, face, st.Opts(shape.WithColor(marqueeColors[0]))...)
	if err != nil {
		return err
	}
	rows := int(m.text.Bounds().MaxY) + 1
	m.y = float64(max(0, (h-rows)/2))
	m.text.SetPosition(float64(w), m.y)
	m.passes = 0
	return st.Canvas.Add(m.text)
}

func (m *Marquee) Step(tick int) error {
	m.text.Move(-1, 0)
	if m.text.Bounds().MaxX < 0 {
		w, _ := m.st.size()
		m.passes++
		if err := m.text.SetColor(marqueeColors[m.passes%len(marqueeColors)]); err != nil {
			return err
		}
		m.text.SetPosition(float64(w), m.y)
	}
	return nil
}

func (m *Marquee) Stop() error { return nil }
