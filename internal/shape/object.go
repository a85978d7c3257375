// Package shape holds the drawable primitives placed on a canvas. Every
// shape rasterizes its geometry eagerly into a list of pixels at local
// offsets from its position; compositing only translates them.
//
// Coordinates grow right (x) and up (y): the first line of a sprite's text
// art is its topmost row.
package shape

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rook-computer/neomatrix/internal/palette"
)

const (
	DefaultColor      = "white"
	DefaultBrightness = 10
)

// ErrAdopted is returned when attaching a shape that already belongs to
// another owner.
var ErrAdopted = errors.New("shape already belongs to another canvas")

// Pixel is one lit cell at a local offset from its shape's position.
type Pixel struct {
	X, Y       int
	Color      palette.Color
	Brightness int // percent, 0-100
}

// BBox is an inclusive axis-aligned box in canvas coordinates.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b BBox) Translate(dx, dy float64) BBox {
	return BBox{MinX: b.MinX + dx, MinY: b.MinY + dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}

// Sides is the result of a collision test.
type Sides uint8

const (
	Left Sides = 1 << iota
	Right
	Top
	Bottom
)

func (s Sides) Has(side Sides) bool { return s&side != 0 }

func (s Sides) String() string {
	if s == 0 {
		return "NONE"
	}
	var parts []string
	for _, side := range []struct {
		bit  Sides
		name string
	}{{Left, "LEFT"}, {Right, "RIGHT"}, {Top, "TOP"}, {Bottom, "BOTTOM"}} {
		if s.Has(side.bit) {
			parts = append(parts, side.name)
		}
	}
	return strings.Join(parts, "|")
}

// Owner is notified whenever an attached shape changes. The canvas is the
// only implementation; shapes hold it as a non-owning handle.
type Owner interface {
	Changed(id uuid.UUID)
}

// Shape is the uniform interface over all shape kinds.
type Shape interface {
	ID() uuid.UUID
	Position() (x, y float64)
	Bounds() BBox
	// Pixels returns the active pixel list by reference. Callers must not
	// modify it.
	Pixels() []Pixel
	Visible() bool

	SetPosition(x, y float64)
	Move(dx, dy float64)
	SetColor(spec any) error
	SetBrightness(brightness int)
	Show()
	Hide()
	CheckCollision(other Shape) Sides

	Owner() Owner
	Attach(owner Owner) error
	Detach(owner Owner)

	object() *Object
}

// Object carries the state shared by every shape kind. It is embedded by
// the concrete kinds and is not useful on its own.
type Object struct {
	id         uuid.UUID
	x, y       float64
	bbox       BBox
	color      palette.Color
	brightness int
	pal        *palette.Palette
	pixels     []Pixel
	visible    bool
	owner      Owner
}

func newObject(x, y float64, o options) Object {
	return Object{
		id:         uuid.New(),
		x:          x,
		y:          y,
		color:      o.color,
		brightness: o.brightness,
		pal:        o.palette,
		visible:    true,
	}
}

func (o *Object) object() *Object { return o }

func (o *Object) ID() uuid.UUID { return o.id }

func (o *Object) Position() (float64, float64) { return o.x, o.y }

func (o *Object) Bounds() BBox { return o.bbox }

func (o *Object) Pixels() []Pixel { return o.pixels }

func (o *Object) Visible() bool { return o.visible }

// Color is the shape's stroke color.
func (o *Object) Color() palette.Color { return o.color }

func (o *Object) Brightness() int { return o.brightness }

// SetPosition moves the shape to (x, y). The bounding box is translated by
// the same delta, not recomputed.
func (o *Object) SetPosition(x, y float64) {
	dx, dy := x-o.x, y-o.y
	o.x, o.y = x, y
	o.translateBounds(dx, dy)
	o.notify()
}

func (o *Object) Move(dx, dy float64) {
	o.x += dx
	o.y += dy
	o.translateBounds(dx, dy)
	o.notify()
}

// SetColor resolves spec once and applies it to every pixel.
func (o *Object) SetColor(spec any) error {
	c, err := o.pal.Resolve(spec)
	if err != nil {
		return err
	}
	o.color = c
	recolor(o.pixels, c)
	o.notify()
	return nil
}

func (o *Object) SetBrightness(brightness int) {
	o.brightness = ClampBrightness(brightness)
	rebright(o.pixels, o.brightness)
	o.notify()
}

func (o *Object) Show() {
	o.visible = true
	o.notify()
}

func (o *Object) Hide() {
	o.visible = false
	o.notify()
}

// CheckCollision compares bounding boxes. The horizontal tests exclude
// boxes that lie entirely on the other side; the vertical tests do not.
func (o *Object) CheckCollision(other Shape) Sides {
	a, b := o.bbox, other.Bounds()
	var sides Sides
	if a.MaxX >= b.MinX && !(a.MinX > b.MinX) {
		sides |= Right
	}
	if a.MinX <= b.MaxX && !(a.MaxX > b.MaxX) {
		sides |= Left
	}
	if a.MaxY >= b.MinY {
		sides |= Top
	}
	if a.MinY <= b.MaxY {
		sides |= Bottom
	}
	return sides
}

func (o *Object) Owner() Owner { return o.owner }

// Attach records owner as the shape's canvas.
func (o *Object) Attach(owner Owner) error {
	if o.owner != nil && o.owner != owner {
		return ErrAdopted
	}
	o.owner = owner
	return nil
}

// Detach clears the owner if it is owner.
func (o *Object) Detach(owner Owner) {
	if o.owner == owner {
		o.owner = nil
	}
}

func (o *Object) notify() {
	if o.owner != nil {
		o.owner.Changed(o.id)
	}
}

func (o *Object) translateBounds(dx, dy float64) {
	o.bbox = o.bbox.Translate(dx, dy)
}

// setGeometry replaces the pixel list and recomputes the bounding box from
// the local box given by the rasterizer.
func (o *Object) setGeometry(pixels []Pixel, local BBox) {
	o.pixels = pixels
	o.bbox = local.Translate(o.x, o.y)
}

// boundsOf returns the extents of pixels in local coordinates.
func boundsOf(pixels []Pixel) BBox {
	if len(pixels) == 0 {
		return BBox{}
	}
	b := BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, p := range pixels {
		b.MinX = math.Min(b.MinX, float64(p.X))
		b.MinY = math.Min(b.MinY, float64(p.Y))
		b.MaxX = math.Max(b.MaxX, float64(p.X))
		b.MaxY = math.Max(b.MaxY, float64(p.Y))
	}
	return b
}

func recolor(pixels []Pixel, c palette.Color) {
	for i := range pixels {
		pixels[i].Color = c
	}
}

func rebright(pixels []Pixel, brightness int) {
	for i := range pixels {
		pixels[i].Brightness = brightness
	}
}

// ClampBrightness limits a brightness to 0-100 percent.
func ClampBrightness(brightness int) int {
	if brightness < 0 {
		return 0
	}
	if brightness > 100 {
		return 100
	}
	return brightness
}
