package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rook-computer/neomatrix/internal/canvas"
	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/rook-computer/neomatrix/internal/shape"
)

var red = palette.RGB{R: 255}

// frameWith returns a physical frame with c at logical (x, y).
func frameWith(width, height, x, y int, c palette.RGB) []palette.RGB {
	frame := make([]palette.RGB, width*height)
	frame[canvas.PhysicalIndex(x, y, width)] = c
	return frame
}

func TestMatrixImageFlipsRows(t *testing.T) {
	img := MatrixImage(frameWith(3, 2, 2, 1, red), 3, 2)
	if got := img.RGBAAt(2, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("top-right=%v; want red", got)
	}
	if got := img.RGBAAt(2, 1); got.R != 0 {
		t.Fatalf("bottom-right=%v; want black", got)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(4)
	c, err := canvas.New(2, 2, rec, canvas.WithAutoupdate(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p, _ := shape.NewPoint(1, 1, shape.WithColor("red"), shape.WithBrightness(100))
	if err := c.Add(p); err != nil {
		t.Fatalf("Add: %v", err)
	}
	p.Move(-1, 0)
	if rec.Writes() != 2 {
		t.Fatalf("writes=%d; want 2", rec.Writes())
	}
	// (0,1) is physical index 3 on a 2-wide serpentine strip.
	if got := rec.Last()[3]; got != red {
		t.Fatalf("last[3]=%v; want red", got)
	}
	if got := rec.Frames()[0][2]; got != red {
		t.Fatalf("first[2]=%v; want red", got)
	}

	rec.Err = errors.New("unplugged")
	p.Move(1, 0)
	if !errors.Is(c.Err(), rec.Err) {
		t.Fatalf("canvas Err=%v; want recorder error", c.Err())
	}
	rec.Reset()
	if rec.Writes() != 0 || rec.Last() != nil {
		t.Fatalf("Reset left %d frames", rec.Writes())
	}
}

func TestPNGSink(t *testing.T) {
	dir := t.TempDir()
	sink := NewPNGSink(dir, 2, 2)
	sink.CellPx = 10
	if err := sink.Write(frameWith(2, 2, 0, 0, red)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Write(make([]palette.RGB, 3)); err == nil {
		t.Fatalf("Write of short frame err=nil")
	}

	data, err := os.ReadFile(filepath.Join(dir, "frame-00000.png"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("bounds=%v; want 20x20", b)
	}
	// Logical (0,0) is the bottom-left dot.
	if r, g, b, _ := img.At(5, 15).RGBA(); r>>8 != 255 || g != 0 || b != 0 {
		t.Fatalf("dot center=(%d,%d,%d); want red", r>>8, g>>8, b>>8)
	}
	if r, _, _, _ := img.At(5, 5).RGBA(); uint8(r>>8) != Unlit.R {
		t.Fatalf("unlit dot r=%d; want %d", r>>8, Unlit.R)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); uint8(r>>8) != Background.R {
		t.Fatalf("corner r=%d; want background", r>>8)
	}
	if sink.Written() != 1 {
		t.Fatalf("written=%d; want 1", sink.Written())
	}
}

func TestPNGSinkFlat(t *testing.T) {
	dir := t.TempDir()
	sink := NewPNGSink(dir, 2, 1)
	sink.CellPx, sink.Style, sink.Prefix = 4, StyleFlat, "flat"
	if err := sink.Write(frameWith(2, 1, 1, 0, red)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	f, err := os.Open(filepath.Join(dir, "flat-00000.png"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, _ := img.At(7, 3).RGBA(); r>>8 != 255 {
		t.Fatalf("flat cell corner r=%d; want 255", r>>8)
	}
	if r, _, _, _ := img.At(3, 0).RGBA(); r != 0 {
		t.Fatalf("dark flat cell r=%d; want 0", r>>8)
	}
}

func TestTermSink(t *testing.T) {
	var out strings.Builder
	sink := NewTermSink(&out, 2, 3)
	if sink.Len() != 6 {
		t.Fatalf("Len=%d", sink.Len())
	}
	if err := sink.Write(frameWith(2, 3, 0, 2, red)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	s := out.String()
	if !strings.HasPrefix(s, "\x1b[H\x1b[38;2;255;0;0m") {
		t.Fatalf("output starts %q; want red top-left", s[:min(len(s), 24)])
	}
	if n := strings.Count(s, "▀"); n != 4 {
		t.Fatalf("%d half blocks; want 4", n)
	}
	if n := strings.Count(s, "\n"); n != 2 {
		t.Fatalf("%d lines; want 2", n)
	}
	if !strings.Contains(s, "\x1b[49m") {
		t.Fatalf("odd height did not reset the background")
	}
}
