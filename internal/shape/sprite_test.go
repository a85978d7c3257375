package shape

import (
	"errors"
	"image"
	"testing"

	"github.com/rook-computer/neomatrix/internal/palette"
)

var invaderColors = map[rune]any{'#': "green", 'o': "ff0000"}

const (
	invaderA = `
 #  #
######
#o##o#
`
	invaderB = `
#    #
######
 o##o
`
)

func TestSpriteParse(t *testing.T) {
	s, err := NewSprite(0, 0, []string{invaderA}, invaderColors)
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}
	set := pixelSet(s.Pixels())
	// First text row is the top row (y=2).
	for _, pt := range []image.Point{{1, 2}, {4, 2}, {0, 1}, {5, 1}, {0, 0}, {1, 0}} {
		if !set[pt] {
			t.Fatalf("missing %v in %v", pt, set)
		}
	}
	if set[image.Pt(0, 2)] {
		t.Fatalf("space produced a pixel")
	}
	if n := len(s.Pixels()); n != 2+6+6 {
		t.Fatalf("pixels=%d; want 14", n)
	}
	red := palette.Some(palette.RGB{R: 255})
	for _, p := range s.Pixels() {
		if p.X == 1 && p.Y == 0 && p.Color != red {
			t.Fatalf("'o' color=%v; want red", p.Color)
		}
	}
	if b := s.Bounds(); b != (BBox{MinX: 0, MinY: 0, MaxX: 5, MaxY: 2}) {
		t.Fatalf("bounds=%+v", b)
	}
}

func TestSpriteNextImageCycles(t *testing.T) {
	s, err := NewSprite(3, 4, []string{invaderA, invaderB, "##\n##"}, invaderColors)
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}
	first := pixelSet(s.Pixels())
	firstBounds := s.Bounds()

	s.NextImage()
	if s.Frame() != 1 {
		t.Fatalf("Frame=%d; want 1", s.Frame())
	}
	s.NextImage()
	if b := s.Bounds(); b != (BBox{MinX: 3, MinY: 4, MaxX: 4, MaxY: 5}) {
		t.Fatalf("frame 2 bounds=%+v", b)
	}
	s.NextImage()

	if s.Frame() != 0 {
		t.Fatalf("Frame=%d after %d advances; want 0", s.Frame(), s.FrameCount())
	}
	if b := s.Bounds(); b != firstBounds {
		t.Fatalf("bounds=%+v; want %+v", b, firstBounds)
	}
	got := pixelSet(s.Pixels())
	if len(got) != len(first) {
		t.Fatalf("pixels=%d; want %d", len(got), len(first))
	}
	for pt := range first {
		if !got[pt] {
			t.Fatalf("missing %v after full cycle", pt)
		}
	}

	s.SetFrame(-1)
	if s.Frame() != 2 {
		t.Fatalf("SetFrame(-1) -> %d; want 2", s.Frame())
	}
}

func TestSpriteErrors(t *testing.T) {
	if _, err := NewSprite(0, 0, nil, invaderColors); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("no frames err=%v", err)
	}
	if _, err := NewSprite(0, 0, []string{"#x#"}, invaderColors); !errors.Is(err, ErrUnmappedChar) {
		t.Fatalf("unmapped err=%v", err)
	}
	if _, err := NewSprite(0, 0, []string{"#"}, map[rune]any{'#': "chartreuse"}); err == nil {
		t.Fatalf("bad color map err=nil")
	}
}

func TestSpriteSetColorAllFrames(t *testing.T) {
	s, _ := NewSprite(0, 0, []string{invaderA, invaderB}, invaderColors)
	if err := s.SetColor("blue"); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	s.NextImage()
	blue := palette.Some(palette.RGB{B: 255})
	for _, p := range s.Pixels() {
		if p.Color != blue {
			t.Fatalf("frame 1 pixel %+v not recolored", p)
		}
	}
}

func TestSpriteGroup(t *testing.T) {
	a, _ := NewSprite(10, 10, []string{"###\n# #"}, invaderColors)
	b, _ := NewSprite(0, 0, []string{"##\n##\n##"}, invaderColors)
	g, err := NewSpriteGroup(1, 1, []Shape{a, b})
	if err != nil {
		t.Fatalf("NewSpriteGroup: %v", err)
	}
	if n := len(g.Pixels()); n != 5+6 {
		t.Fatalf("pixels=%d; want 11", n)
	}
	set := pixelSet(g.Pixels())
	for _, pt := range []image.Point{{0, 1}, {2, 0}, {3, 0}, {4, 2}} {
		if !set[pt] {
			t.Fatalf("missing %v in %v", pt, set)
		}
	}
	if b := g.Bounds(); b != (BBox{MinX: 1, MinY: 1, MaxX: 5, MaxY: 3}) {
		t.Fatalf("bounds=%+v", b)
	}
	// Inputs are copied, not shifted in place.
	if p := b.Pixels()[0]; p.X > 1 {
		t.Fatalf("input pixels were modified: %+v", p)
	}
}

func TestRegion(t *testing.T) {
	r, err := NewRegion([]image.Point{{1, 1}, {2, 1}, {2, 3}}, WithColor("red"))
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("Len=%d", r.Len())
	}
	if b := r.Bounds(); b != (BBox{MinX: 1, MinY: 1, MaxX: 2, MaxY: 3}) {
		t.Fatalf("bounds=%+v", b)
	}
}
