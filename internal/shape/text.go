package shape

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/tinyfont"
)

// Typeface turns a string into lit cells. Bitmap fonts light cells fully;
// outline faces report antialiasing coverage, which Text maps to brightness.
type Typeface interface {
	cells(text string) []coverage
}

type coverage struct {
	x, y  int // image space: y grows down
	alpha uint8
}

// TinyFont wraps a tinyfont bitmap font. TomThumb (3x5) suits small matrices.
func TinyFont(f tinyfont.Fonter) Typeface { return tinyFace{font: f} }

// Face wraps any x/image font face.
func Face(face font.Face) Typeface { return outlineFace{face: face} }

// TrueType parses ttf and returns a face sized to sizePx pixels.
func TrueType(ttf []byte, sizePx float64) (Typeface, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return Face(truetype.NewFace(f, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingFull})), nil
}

// DefaultTypeface is TomThumb.
func DefaultTypeface() Typeface { return TinyFont(&tinyfont.TomThumb) }

// FallbackTypeface is the 7x13 basic font, for when no TrueType data loads.
func FallbackTypeface() Typeface { return Face(basicfont.Face7x13) }

type tinyFace struct {
	font tinyfont.Fonter
}

// tinyBaseline leaves room above the baseline for any glyph height.
const tinyBaseline = 64

func (f tinyFace) cells(text string) []coverage {
	rec := &cellRecorder{}
	tinyfont.WriteLine(rec, f.font, 0, tinyBaseline, text, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	return rec.cells
}

// cellRecorder is a drivers.Displayer that keeps the cells tinyfont sets.
type cellRecorder struct {
	cells []coverage
	seen  map[image.Point]bool
}

func (r *cellRecorder) Size() (x, y int16) { return math.MaxInt16, math.MaxInt16 }

func (r *cellRecorder) SetPixel(x, y int16, c color.RGBA) {
	pt := image.Pt(int(x), int(y))
	if r.seen == nil {
		r.seen = map[image.Point]bool{}
	}
	if r.seen[pt] {
		return
	}
	r.seen[pt] = true
	r.cells = append(r.cells, coverage{x: pt.X, y: pt.Y, alpha: 0xFF})
}

func (r *cellRecorder) Display() error { return nil }

type outlineFace struct {
	face font.Face
}

func (f outlineFace) cells(text string) []coverage {
	metrics := f.face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	drawer := &font.Drawer{Face: f.face}
	width := drawer.MeasureString(text).Ceil()
	height := ascent + descent
	if width <= 0 || height <= 0 {
		return nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer.Dst = mask
	drawer.Src = image.Opaque
	drawer.Dot = fixed.P(0, ascent)
	drawer.DrawString(text)

	var out []coverage
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if a := mask.AlphaAt(x, y).A; a > 0 {
				out = append(out, coverage{x: x, y: y, alpha: a})
			}
		}
	}
	return out
}

// Text renders a string. Its lower-left lit cell sits at the position.
type Text struct {
	Object
	text string
	face Typeface
}

// NewText renders text with face; a nil face means DefaultTypeface.
func NewText(x, y float64, text string, face Typeface, opts ...Option) (*Text, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if face == nil {
		face = DefaultTypeface()
	}
	t := &Text{Object: newObject(x, y, o), text: text, face: face}
	t.calc()
	return t, nil
}

func (t *Text) Text() string { return t.text }

// SetText re-renders and recomputes the bounding box.
func (t *Text) SetText(text string) {
	t.text = text
	t.calc()
	t.notify()
}

// SetBrightness re-renders so antialiased edges keep their relative weight.
func (t *Text) SetBrightness(brightness int) {
	t.brightness = ClampBrightness(brightness)
	t.calc()
	t.notify()
}

func (t *Text) calc() {
	cells := t.face.cells(t.text)
	if len(cells) == 0 {
		t.setGeometry(nil, BBox{})
		return
	}
	minX, maxY := cells[0].x, cells[0].y
	for _, c := range cells {
		minX = min(minX, c.x)
		maxY = max(maxY, c.y)
	}

	pixels := make([]Pixel, 0, len(cells))
	for _, c := range cells {
		b := int(math.Round(float64(t.brightness) * float64(c.alpha) / 0xFF))
		if b == 0 && t.brightness > 0 {
			continue
		}
		pixels = append(pixels, Pixel{X: c.x - minX, Y: maxY - c.y, Color: t.color, Brightness: b})
	}
	t.setGeometry(pixels, boundsOf(pixels))
}
