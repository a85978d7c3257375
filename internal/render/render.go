// Package render holds the display sinks a canvas writes its physical frames
// to, and the helpers that draw a frame as an image of LEDs.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/neomatrix/internal/canvas"
	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/rook-computer/neomatrix/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// Logger is the component-tagged logger sinks report to.
type Logger interface {
	Infof(component, format string, args ...interface{})
	Errorf(component, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

func loggerOrNoop(l Logger) Logger {
	if l == nil {
		return noopLogger{}
	}
	return l
}

// Style selects how a frame is drawn into an image.
type Style int

const (
	// StyleDots draws each LED as a round dot on a dark background.
	StyleDots Style = iota
	// StyleFlat scales the matrix up with square cells.
	StyleFlat
)

func checkFrame(frame []palette.RGB, width, height int) error {
	if len(frame) != width*height {
		return fmt.Errorf("frame has %d pixels; want %d", len(frame), width*height)
	}
	return nil
}

// MatrixImage decodes a physical (serpentine) frame into a width x height
// image. Logical row 0 is the bottom row of the image.
func MatrixImage(frame []palette.RGB, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, c := range frame {
		x, y := canvas.LogicalCoord(i, width)
		if y >= height {
			break
		}
		img.SetRGBA(x, height-1-y, c.ToRGBA())
	}
	return img
}

// DrawMatrix draws frame into rect of dst, keeping the matrix aspect ratio.
func DrawMatrix(dst draw.Image, rect image.Rectangle, frame []palette.RGB, width, height int, style Style) {
	draw.Draw(dst, rect, &image.Uniform{C: Background}, image.Point{}, draw.Src)
	fit := layout.FitCentered(rect, width, height)
	src := MatrixImage(frame, width, height)

	if style == StyleFlat {
		xdraw.NearestNeighbor.Scale(dst, fit, src, src.Bounds(), draw.Src, nil)
		return
	}

	grid := layout.Grid{Rect: fit, Cols: width, Rows: height}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cell := grid.Cell(col, row)
			led := layout.Inset(cell, cell.Dx()/8)
			c := src.RGBAAt(col, row)
			if c.R == 0 && c.G == 0 && c.B == 0 {
				c = Unlit
			}
			draw.DrawMask(dst, led, &image.Uniform{C: c}, image.Point{}, dotMask{led}, led.Min, draw.Over)
		}
	}
}

// dotMask is an opaque disc inscribed in r.
type dotMask struct{ r image.Rectangle }

func (m dotMask) ColorModel() color.Model { return color.AlphaModel }

func (m dotMask) Bounds() image.Rectangle { return m.r }

func (m dotMask) At(x, y int) color.Color {
	// Doubled coordinates keep even-sized discs centered.
	dx := 2*x + 1 - (2*m.r.Min.X + m.r.Dx())
	dy := 2*y + 1 - (2*m.r.Min.Y + m.r.Dy())
	d := m.r.Dx()
	if m.r.Dy() < d {
		d = m.r.Dy()
	}
	if dx*dx+dy*dy <= d*d {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}
