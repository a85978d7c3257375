package scenes

import (
	"context"
	"errors"
	"testing"

	"github.com/rook-computer/neomatrix/internal/canvas"
	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/rook-computer/neomatrix/internal/render"
)

func newStage(t *testing.T, w, h int) (*Stage, *render.Recorder) {
	t.Helper()
	rec := render.NewRecorder(w * h)
	c, err := canvas.New(w, h, rec)
	if err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	return &Stage{Canvas: c, Palette: palette.Default(), Color: "white", Brightness: 20}, rec
}

func startScene(t *testing.T, name string, w, h int) (Scene, *Stage) {
	t.Helper()
	s, err := New(name)
	if err != nil {
		t.Fatalf("New(%q): %v", name, err)
	}
	st, _ := newStage(t, w, h)
	if err := s.Start(context.Background(), st); err != nil {
		t.Fatalf("%s Start: %v", name, err)
	}
	return s, st
}

func TestRegistry(t *testing.T) {
	names := Names()
	if len(names) != 8 {
		t.Fatalf("names=%v; want 8 scenes", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	if _, err := New("nope"); !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("New(nope) err=%v", err)
	}
}

func TestEverySceneRuns(t *testing.T) {
	sizes := []struct{ w, h int }{{16, 16}, {5, 3}, {32, 8}, {1, 1}}
	for _, name := range Names() {
		for _, size := range sizes {
			s, st := startScene(t, name, size.w, size.h)
			for tick := 0; tick < 200; tick++ {
				if err := s.Step(tick); err != nil {
					t.Fatalf("%s %dx%d step %d: %v", name, size.w, size.h, tick, err)
				}
				if err := st.Canvas.Update(); err != nil {
					t.Fatalf("%s update: %v", name, err)
				}
			}
			if err := s.Stop(); err != nil {
				t.Fatalf("%s Stop: %v", name, err)
			}
		}
	}
}

func TestBounceStaysInsideBorder(t *testing.T) {
	s, _ := startScene(t, "bounce", 16, 16)
	b := s.(*Bounce)
	for tick := 0; tick < 500; tick++ {
		if err := s.Step(tick); err != nil {
			t.Fatalf("step: %v", err)
		}
		box := b.ball.Bounds()
		if box.MinX < 1 || box.MaxX > 14 || box.MinY < 1 || box.MaxY > 14 {
			t.Fatalf("tick %d: ball %+v crossed the border", tick, box)
		}
	}
	if b.hits == 0 {
		t.Fatalf("ball never bounced")
	}
}

func TestSpritesEatDots(t *testing.T) {
	s, _ := startScene(t, "sprites", 16, 16)
	sp := s.(*Sprites)
	for tick := 0; tick < 20; tick++ {
		if err := s.Step(tick); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	for _, dot := range sp.dots {
		x, _ := dot.Position()
		if eaten := !dot.Visible(); eaten != (x <= 7) {
			t.Fatalf("dot at x=%v eaten=%v", x, eaten)
		}
	}
	if x, _ := sp.pacman.Position(); x != 2 {
		t.Fatalf("pacman x=%v; want 2", x)
	}
}

func TestPaintFillsAreas(t *testing.T) {
	s, st := startScene(t, "fill", 16, 16)
	p := s.(*Paint)
	if err := s.Step(0); err != nil {
		t.Fatalf("step: %v", err)
	}
	if len(p.regions) != 3 {
		t.Fatalf("regions=%d; want 3", len(p.regions))
	}
	// The outermost ring of cells outside the frame.
	if n := p.regions[2].Len(); n != 60 {
		t.Fatalf("outside region=%d cells; want 60", n)
	}
	for tick := 1; tick <= 16; tick++ {
		if err := s.Step(tick); err != nil {
			t.Fatalf("step %d: %v", tick, err)
		}
	}
	if st.Canvas.Len() != 5 {
		t.Fatalf("canvas holds %d shapes; want frame, ring and 3 regions", st.Canvas.Len())
	}
}

func TestQRPans(t *testing.T) {
	s, _ := startScene(t, "qr", 16, 16)
	q := s.(*QR)
	if q.spanX == 0 {
		t.Fatalf("%d modules fit a 16x16 matrix; want a panning code", q.code.Modules())
	}
	if err := s.Step(4 * q.spanX); err != nil {
		t.Fatalf("step: %v", err)
	}
	if x, _ := q.code.Position(); x != float64(-q.spanX) {
		t.Fatalf("x=%v; want %d", x, -q.spanX)
	}
	if got := pingPong(3*q.spanX, q.spanX); got != q.spanX {
		t.Fatalf("pingPong=%d; want %d", got, q.spanX)
	}
}

func TestMarqueeWraps(t *testing.T) {
	s, _ := startScene(t, "marquee", 16, 16)
	m := s.(*Marquee)
	for tick := 0; tick < 200; tick++ {
		if err := s.Step(tick); err != nil {
			t.Fatalf("step: %v", err)
		}
		if m.text.Bounds().MaxX < 0 {
			t.Fatalf("tick %d: text left the matrix without wrapping", tick)
		}
	}
	if m.passes == 0 {
		t.Fatalf("marquee never wrapped")
	}
}

func TestClockHand(t *testing.T) {
	s, _ := startScene(t, "clock", 16, 16)
	c := s.(*Clock)
	for _, tc := range []struct {
		tick int
		x, y float64
	}{{0, 8, 14}, {15, 14, 8}, {30, 8, 2}, {45, 2, 8}} {
		if err := s.Step(tc.tick); err != nil {
			t.Fatalf("step: %v", err)
		}
		if x, y := c.hand.End(); x != tc.x || y != tc.y {
			t.Fatalf("tick %d: hand end=(%v,%v); want (%v,%v)", tc.tick, x, y, tc.x, tc.y)
		}
	}
}

func TestHeartsBeat(t *testing.T) {
	s, st := startScene(t, "hearts", 16, 16)
	h := s.(*Hearts)
	if err := s.Step(0); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := h.group.Brightness(); got != 3*st.Brightness {
		t.Fatalf("brightness=%d; want %d", got, 3*st.Brightness)
	}
	if err := s.Step(8); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := h.group.Brightness(); got != st.Brightness {
		t.Fatalf("brightness=%d; want %d", got, st.Brightness)
	}
}
