package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rook-computer/neomatrix/internal/palette"
)

var (
	ErrUnmappedChar = errors.New("sprite character has no color mapping")
	ErrNoFrames     = errors.New("sprite needs at least one frame")
)

type frame struct {
	pixels []Pixel
	local  BBox
}

// Sprite is text art with one or more frames. Each character maps to a
// color through the sprite's color map, a space is transparent and a
// newline starts the next row down. NextImage cycles the frames.
type Sprite struct {
	Object
	frames []frame
	index  int
}

// NewSprite parses each art string into a frame. A single leading and
// trailing newline are ignored so raw string literals can start on their
// own line. The first frame is active.
func NewSprite(x, y float64, art []string, colors map[rune]any, opts ...Option) (*Sprite, error) {
	if len(art) == 0 {
		return nil, ErrNoFrames
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	resolved := make(map[rune]palette.Color, len(colors))
	for ch, spec := range colors {
		c, err := o.palette.Resolve(spec)
		if err != nil {
			return nil, fmt.Errorf("sprite color for %q: %w", ch, err)
		}
		resolved[ch] = c
	}

	s := &Sprite{Object: newObject(x, y, o)}
	for i, text := range art {
		f, err := parseFrame(text, resolved, o.brightness)
		if err != nil {
			return nil, fmt.Errorf("sprite frame %d: %w", i, err)
		}
		s.frames = append(s.frames, f)
	}
	s.activate(0)
	return s, nil
}

func parseFrame(text string, colors map[rune]palette.Color, brightness int) (frame, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimPrefix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	var f frame
	width := 0
	for row, line := range lines {
		y := len(lines) - 1 - row
		x := 0
		for _, ch := range line {
			if ch != ' ' {
				c, ok := colors[ch]
				if !ok {
					return frame{}, fmt.Errorf("%w: %q", ErrUnmappedChar, ch)
				}
				f.pixels = append(f.pixels, Pixel{X: x, Y: y, Color: c, Brightness: brightness})
			}
			x++
		}
		width = max(width, x)
	}
	f.local = BBox{MinX: 0, MinY: 0, MaxX: float64(width - 1), MaxY: float64(len(lines) - 1)}
	return f, nil
}

// NextImage advances to the next frame, wrapping after the last.
func (s *Sprite) NextImage() {
	s.activate((s.index + 1) % len(s.frames))
	s.notify()
}

// SetFrame activates frame i modulo the frame count.
func (s *Sprite) SetFrame(i int) {
	n := len(s.frames)
	s.activate(((i % n) + n) % n)
	s.notify()
}

func (s *Sprite) Frame() int { return s.index }

func (s *Sprite) FrameCount() int { return len(s.frames) }

func (s *Sprite) activate(i int) {
	s.index = i
	s.setGeometry(s.frames[i].pixels, s.frames[i].local)
}

// SetColor recolors every frame, not only the active one.
func (s *Sprite) SetColor(spec any) error {
	c, err := s.pal.Resolve(spec)
	if err != nil {
		return err
	}
	s.color = c
	for _, f := range s.frames {
		recolor(f.pixels, c)
	}
	s.notify()
	return nil
}

func (s *Sprite) SetBrightness(brightness int) {
	s.brightness = ClampBrightness(brightness)
	for _, f := range s.frames {
		rebright(f.pixels, s.brightness)
	}
	s.notify()
}

// SpriteGroup lays the pixels of several shapes side by side. Each part is
// shifted right by the combined width of the parts before it; the parts'
// own positions are ignored. Parts abut with no blank column between them.
type SpriteGroup struct {
	Object
}

func NewSpriteGroup(x, y float64, parts []Shape, opts ...Option) (*SpriteGroup, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	g := &SpriteGroup{Object: newObject(x, y, o)}

	var pixels []Pixel
	offset, maxY := 0, 0
	for _, part := range parts {
		px, py := part.Position()
		b := part.Bounds()
		for _, p := range part.Pixels() {
			p.X += offset
			pixels = append(pixels, p)
		}
		offset += int(math.Round(b.MaxX-px)) + 1
		maxY = max(maxY, int(math.Round(b.MaxY-py)))
	}
	g.setGeometry(pixels, BBox{MinX: 0, MinY: 0, MaxX: float64(offset - 1), MaxY: float64(maxY)})
	return g, nil
}
