package canvas

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/rook-computer/neomatrix/internal/shape"
)

type fakeSink struct {
	n      int
	writes int
	last   []palette.RGB
	err    error
}

func (s *fakeSink) Len() int { return s.n }

func (s *fakeSink) Write(frame []palette.RGB) error {
	s.writes++
	s.last = append([]palette.RGB(nil), frame...)
	return s.err
}

func newTestCanvas(t *testing.T, w, h int, opts ...Option) (*Canvas, *fakeSink) {
	t.Helper()
	sink := &fakeSink{n: w * h}
	c, err := New(w, h, sink, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, sink
}

func mustPoint(t *testing.T, x, y float64, opts ...shape.Option) *shape.Point {
	t.Helper()
	p, err := shape.NewPoint(x, y, opts...)
	if err != nil {
		t.Fatalf("NewPoint: %v", err)
	}
	return p
}

func TestSerpentineMapping(t *testing.T) {
	for x, want := range []int{0, 1, 2, 3} {
		if got := PhysicalIndex(x, 0, 4); got != want {
			t.Fatalf("row 0 x=%d -> %d; want %d", x, got, want)
		}
	}
	for x, want := range []int{7, 6, 5, 4} {
		if got := PhysicalIndex(x, 1, 4); got != want {
			t.Fatalf("row 1 x=%d -> %d; want %d", x, got, want)
		}
	}
	for i := 0; i < 4*5; i++ {
		x, y := LogicalCoord(i, 4)
		if PhysicalIndex(x, y, 4) != i {
			t.Fatalf("LogicalCoord(%d)=(%d,%d) does not round-trip", i, x, y)
		}
	}
}

func TestUpdateScalesAndMaps(t *testing.T) {
	c, sink := newTestCanvas(t, 4, 4)
	if err := c.Add(mustPoint(t, 1, 1, shape.WithColor("red"), shape.WithBrightness(50))); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if sink.writes != 1 || len(sink.last) != 16 {
		t.Fatalf("writes=%d len=%d", sink.writes, len(sink.last))
	}
	want := palette.RGB{R: 128}
	if got := sink.last[6]; got != want {
		t.Fatalf("frame[6]=%v; want %v", got, want)
	}
	for i, rgb := range sink.last {
		if i != 6 && rgb != (palette.RGB{}) {
			t.Fatalf("frame[%d]=%v; want black", i, rgb)
		}
	}
}

func TestScaleRounding(t *testing.T) {
	tcs := []struct {
		c    uint8
		b    int
		want uint8
	}{
		{255, 100, 255},
		{255, 50, 128},
		{5, 50, 2},
		{7, 50, 4},
		{200, 0, 0},
		{255, 10, 26},
	}
	for _, tc := range tcs {
		if got := scale(tc.c, tc.b); got != tc.want {
			t.Errorf("scale(%d,%d)=%d; want %d", tc.c, tc.b, got, tc.want)
		}
	}
}

func TestLaterShapesWin(t *testing.T) {
	c, _ := newTestCanvas(t, 3, 3)
	_ = c.Add(mustPoint(t, 1, 1, shape.WithColor("red")), mustPoint(t, 1, 1, shape.WithColor("blue")))
	_ = c.Update()
	if rgb, _, _ := c.At(1, 1); rgb != (palette.RGB{B: 255}) {
		t.Fatalf("At(1,1)=%v; want blue", rgb)
	}
}

func TestClippingHiddenAndFloor(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4)
	rect, _ := shape.NewRectangle(-2, 2, 4, 4, shape.WithColor("green"))
	hidden := mustPoint(t, 0, 0, shape.WithColor("red"))
	hidden.Hide()
	floored := mustPoint(t, 3.9, 0.2, shape.WithColor("white"))
	negative := mustPoint(t, -0.5, 1, shape.WithColor("white"))
	if err := c.Add(rect, hidden, floored, negative); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	green := palette.RGB{G: 255}
	for _, cell := range [][2]int{{0, 2}, {1, 2}, {1, 3}} {
		if rgb, _, _ := c.At(cell[0], cell[1]); rgb != green {
			t.Fatalf("At%v=%v; want green", cell, rgb)
		}
	}
	if rgb, _, _ := c.At(0, 3); rgb != (palette.RGB{}) {
		t.Fatalf("At(0,3)=%v; rectangle interior should be empty", rgb)
	}
	if rgb, _, _ := c.At(0, 0); rgb != (palette.RGB{}) {
		t.Fatalf("hidden shape drawn: %v", rgb)
	}
	if rgb, _, _ := c.At(3, 0); rgb != (palette.RGB{R: 255, G: 255, B: 255}) {
		t.Fatalf("At(3,0)=%v; want floored point", rgb)
	}
	if rgb, _, _ := c.At(0, 1); rgb != (palette.RGB{}) {
		t.Fatalf("point at x=-0.5 should floor to -1 and clip, got %v", rgb)
	}
	if _, _, ok := c.At(4, 0); ok {
		t.Fatalf("At outside canvas ok=true")
	}
}

func TestRemoveRestoresFrame(t *testing.T) {
	base := func() (*Canvas, *fakeSink, shape.Shape) {
		c, sink := newTestCanvas(t, 5, 5)
		circle, _ := shape.NewCircle(2, 2, 2, shape.WithColor("cyan"))
		_ = c.Add(circle)
		return c, sink, circle
	}

	c1, sink1, _ := base()
	_ = c1.Update()

	c2, sink2, _ := base()
	extra, _ := shape.NewRectangle(0, 0, 5, 5, shape.WithColor("red"), shape.WithFill("yellow"))
	_ = c2.Add(extra)
	_ = c2.Update()
	if err := c2.Remove(extra); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	_ = c2.Update()

	if !reflect.DeepEqual(sink1.last, sink2.last) {
		t.Fatalf("frame after remove differs from frame without the shape")
	}
	if extra.Owner() != nil {
		t.Fatalf("Remove left the owner set")
	}
}

func TestAddRemoveErrors(t *testing.T) {
	c1, _ := newTestCanvas(t, 2, 2)
	c2, _ := newTestCanvas(t, 2, 2)
	p := mustPoint(t, 0, 0)
	q := mustPoint(t, 1, 1)

	if err := c1.Add(p); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c1.Add(p); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second Add err=%v; want ErrDuplicate", err)
	}
	if err := c2.Add(q, p); !errors.Is(err, ErrAdopted) {
		t.Fatalf("Add to second canvas err=%v; want ErrAdopted", err)
	}
	if c2.Len() != 0 || q.Owner() != nil {
		t.Fatalf("failed Add was not atomic")
	}
	if err := c2.Add(q, q); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Add(q, q) err=%v; want ErrDuplicate", err)
	}
	if err := c2.Remove(p); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove err=%v; want ErrNotFound", err)
	}

	if got, ok := c1.Lookup(p.ID()); !ok || got != shape.Shape(p) {
		t.Fatalf("Lookup failed")
	}
	if err := c1.RemoveID(p.ID()); err != nil {
		t.Fatalf("RemoveID: %v", err)
	}
	if err := c2.Add(p); err != nil {
		t.Fatalf("Add after remove: %v", err)
	}

	c2.RemoveAll()
	if c2.Len() != 0 || p.Owner() != nil {
		t.Fatalf("RemoveAll left shapes attached")
	}
}

func TestAutoupdate(t *testing.T) {
	c, sink := newTestCanvas(t, 4, 4, WithAutoupdate(true))
	p := mustPoint(t, 0, 0)
	_ = c.Add(p) // 1
	p.Move(1, 0) // 2
	_ = p.SetColor("red")
	p.Hide()
	p.Show()        // 5
	_ = c.Remove(p) // 6
	p.Move(1, 0)    // detached: no write
	if sink.writes != 6 {
		t.Fatalf("writes=%d; want 6", sink.writes)
	}

	c.SetAutoupdate(false)
	_ = c.Add(p)
	p.Move(1, 0)
	if sink.writes != 6 {
		t.Fatalf("writes=%d with autoupdate off; want 6", sink.writes)
	}
}

func TestSetBrightnessSingleUpdate(t *testing.T) {
	c, sink := newTestCanvas(t, 4, 4, WithAutoupdate(true))
	_ = c.Add(mustPoint(t, 0, 0, shape.WithColor("white")), mustPoint(t, 1, 0, shape.WithColor("white")))
	before := sink.writes
	c.SetBrightness(100)
	if sink.writes != before+1 {
		t.Fatalf("writes=%d; want %d", sink.writes, before+1)
	}
	if sink.last[0] != (palette.RGB{R: 255, G: 255, B: 255}) || sink.last[1] != (palette.RGB{R: 255, G: 255, B: 255}) {
		t.Fatalf("frame=%v", sink.last[:2])
	}
}

func TestSinkErrors(t *testing.T) {
	c, sink := newTestCanvas(t, 2, 2, WithAutoupdate(true))
	sink.err = errors.New("strip unplugged")
	if err := c.Update(); !errors.Is(err, sink.err) {
		t.Fatalf("Update err=%v", err)
	}
	_ = c.Add(mustPoint(t, 0, 0))
	if !errors.Is(c.Err(), sink.err) {
		t.Fatalf("Err()=%v", c.Err())
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 4, nil); err == nil {
		t.Fatalf("New(0,4) err=nil")
	}
	if _, err := New(4, 4, &fakeSink{n: 15}); err == nil {
		t.Fatalf("sink size mismatch err=nil")
	}
	c, err := New(3, 2, nil)
	if err != nil {
		t.Fatalf("New without sink: %v", err)
	}
	if err := c.Update(); err != nil {
		t.Fatalf("Update without sink: %v", err)
	}
	if len(c.Frame()) != 6 {
		t.Fatalf("Frame len=%d; want 6", len(c.Frame()))
	}
}
