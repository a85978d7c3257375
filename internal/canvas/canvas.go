// Package canvas composites shapes into a frame and hands it to a display
// sink in the physical wiring order of a serpentine LED matrix.
package canvas

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/rook-computer/neomatrix/internal/shape"
)

var (
	ErrAdopted   = shape.ErrAdopted
	ErrDuplicate = errors.New("shape already on this canvas")
	ErrNotFound  = errors.New("shape not on this canvas")
)

// Sink receives one brightness-scaled RGB triple per LED, indexed by
// physical position, and pushes it to the hardware.
type Sink interface {
	Write(frame []palette.RGB) error
}

// sizedSink is implemented by sinks constructed for a fixed LED count.
type sizedSink interface {
	Len() int
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

type Option func(*Canvas)

// WithAutoupdate makes every shape or membership change recomposite and
// write to the sink immediately.
func WithAutoupdate(enabled bool) Option {
	return func(c *Canvas) { c.autoupdate = enabled }
}

func WithLogger(l Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPalette sets the palette used to resolve flood-fill colors.
func WithPalette(p *palette.Palette) Option {
	return func(c *Canvas) {
		if p != nil {
			c.palette = p
		}
	}
}

// Canvas owns an ordered list of shapes. Later shapes paint over earlier
// ones. It is not safe for concurrent use.
type Canvas struct {
	width, height int
	sink          Sink
	logger        Logger
	palette       *palette.Palette

	shapes []shape.Shape
	byID   map[uuid.UUID]shape.Shape

	// composite buffers, indexed [x][y]
	color      [][]palette.RGB
	brightness [][]int
	frame      []palette.RGB

	autoupdate bool
	holds      int
	err        error
}

// New creates a width x height canvas writing to sink. A nil sink composites
// without output.
func New(width, height int, sink Sink, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d: width and height must be positive", width, height)
	}
	if s, ok := sink.(sizedSink); ok && s.Len() != width*height {
		return nil, fmt.Errorf("sink drives %d LEDs; canvas %dx%d needs %d", s.Len(), width, height, width*height)
	}
	c := &Canvas{
		width:   width,
		height:  height,
		sink:    sink,
		logger:  noopLogger{},
		palette: palette.Default(),
		byID:    map[uuid.UUID]shape.Shape{},
		frame:   make([]palette.RGB, width*height),
	}
	c.color = make([][]palette.RGB, width)
	c.brightness = make([][]int, width)
	for x := range c.color {
		c.color[x] = make([]palette.RGB, height)
		c.brightness[x] = make([]int, height)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) Autoupdate() bool           { return c.autoupdate }
func (c *Canvas) SetAutoupdate(enabled bool) { c.autoupdate = enabled }

// Err returns the last sink error raised by an automatic update.
func (c *Canvas) Err() error { return c.err }

// Add appends shapes in paint order. Either all shapes are added or none.
func (c *Canvas) Add(shapes ...shape.Shape) error {
	seen := map[uuid.UUID]bool{}
	for _, s := range shapes {
		if _, ok := c.byID[s.ID()]; ok || seen[s.ID()] {
			return ErrDuplicate
		}
		if owner := s.Owner(); owner != nil && owner != shape.Owner(c) {
			return ErrAdopted
		}
		seen[s.ID()] = true
	}
	for _, s := range shapes {
		if err := s.Attach(c); err != nil {
			return err
		}
		c.shapes = append(c.shapes, s)
		c.byID[s.ID()] = s
	}
	c.autoUpdate()
	return nil
}

// Remove detaches s from the canvas.
func (c *Canvas) Remove(s shape.Shape) error {
	return c.RemoveID(s.ID())
}

func (c *Canvas) RemoveID(id uuid.UUID) error {
	s, ok := c.byID[id]
	if !ok {
		return ErrNotFound
	}
	for i, candidate := range c.shapes {
		if candidate.ID() == id {
			c.shapes = append(c.shapes[:i], c.shapes[i+1:]...)
			break
		}
	}
	delete(c.byID, id)
	s.Detach(c)
	c.autoUpdate()
	return nil
}

func (c *Canvas) RemoveAll() {
	for _, s := range c.shapes {
		s.Detach(c)
	}
	c.shapes = nil
	c.byID = map[uuid.UUID]shape.Shape{}
	c.autoUpdate()
}

// Lookup finds a shape on this canvas by ID.
func (c *Canvas) Lookup(id uuid.UUID) (shape.Shape, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Shapes returns the shapes in paint order.
func (c *Canvas) Shapes() []shape.Shape {
	return append([]shape.Shape(nil), c.shapes...)
}

func (c *Canvas) Len() int { return len(c.shapes) }

// Changed implements shape.Owner.
func (c *Canvas) Changed(id uuid.UUID) {
	if _, ok := c.byID[id]; ok {
		c.autoUpdate()
	}
}

// SetBrightness applies brightness to every shape on the canvas with a
// single update at the end.
func (c *Canvas) SetBrightness(brightness int) {
	c.hold(func() {
		for _, s := range c.shapes {
			s.SetBrightness(brightness)
		}
	})
	c.autoUpdate()
}

// hold runs fn with automatic updates suppressed.
func (c *Canvas) hold(fn func()) {
	c.holds++
	defer func() { c.holds-- }()
	fn()
}

func (c *Canvas) autoUpdate() {
	if !c.autoupdate || c.holds > 0 {
		return
	}
	if err := c.Update(); err != nil {
		c.err = err
		c.logger.Errorf("canvas", "autoupdate: %v", err)
	}
}

// Update composites all visible shapes and writes the frame to the sink.
func (c *Canvas) Update() error {
	c.compose()
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			rgb, b := c.color[x][y], c.brightness[x][y]
			c.frame[PhysicalIndex(x, y, c.width)] = palette.RGB{
				R: scale(rgb.R, b),
				G: scale(rgb.G, b),
				B: scale(rgb.B, b),
			}
		}
	}
	if c.sink == nil {
		return nil
	}
	if err := c.sink.Write(c.frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// compose rebuilds the composite buffers. Pixels outside the canvas and
// pixels without a color are skipped.
func (c *Canvas) compose() {
	for x := range c.color {
		clear(c.color[x])
		clear(c.brightness[x])
	}
	for _, s := range c.shapes {
		if !s.Visible() {
			continue
		}
		sx, sy := s.Position()
		ox, oy := int(math.Floor(sx)), int(math.Floor(sy))
		for _, p := range s.Pixels() {
			rgb, ok := p.Color.RGB()
			if !ok {
				continue
			}
			x, y := ox+p.X, oy+p.Y
			if !c.ValidCoord(x, y) {
				continue
			}
			c.color[x][y] = rgb
			c.brightness[x][y] = p.Brightness
		}
	}
}

// scale applies a brightness percentage to a channel, rounding half to even.
func scale(channel uint8, brightness int) uint8 {
	v := math.RoundToEven(float64(channel) * float64(brightness) / 100)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func (c *Canvas) ValidCoord(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At reads the composite at a logical cell as of the last Update or Fill.
func (c *Canvas) At(x, y int) (rgb palette.RGB, brightness int, ok bool) {
	if !c.ValidCoord(x, y) {
		return palette.RGB{}, 0, false
	}
	return c.color[x][y], c.brightness[x][y], true
}

// Frame returns a copy of the last frame in physical order.
func (c *Canvas) Frame() []palette.RGB {
	return append([]palette.RGB(nil), c.frame...)
}
