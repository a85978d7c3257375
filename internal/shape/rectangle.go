package shape

import "github.com/rook-computer/neomatrix/internal/palette"

// Rectangle is an axis-aligned outline whose lower-left corner sits at its
// position, optionally filled.
type Rectangle struct {
	Object
	width, height int
	fill          palette.Color
}

func NewRectangle(x, y float64, width, height int, opts ...Option) (*Rectangle, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	r := &Rectangle{Object: newObject(x, y, o), width: width, height: height, fill: o.fill}
	r.calc()
	return r, nil
}

func (r *Rectangle) Size() (width, height int) { return r.width, r.height }

// SetSize re-rasterizes the outline and recomputes its bounding box.
func (r *Rectangle) SetSize(width, height int) {
	r.width, r.height = width, height
	r.calc()
	r.notify()
}

func (r *Rectangle) Fill() palette.Color { return r.fill }

func (r *Rectangle) SetFill(spec any) error {
	fill, err := r.pal.Resolve(spec)
	if err != nil {
		return err
	}
	r.fill = fill
	r.calc()
	r.notify()
	return nil
}

// calc lays out bottom and top rows, then the side columns between them:
//
//	4 *********
//	3 *       *
//	2 *       *
//	1 *       *
//	0 *********
//	  012345678   width=9, height=5
func (r *Rectangle) calc() {
	w, h := r.width, r.height
	local := BBox{MinX: 0, MinY: 0, MaxX: float64(w - 1), MaxY: float64(h - 1)}
	if w <= 0 || h <= 0 {
		r.setGeometry(nil, local)
		return
	}

	pixels := make([]Pixel, 0, 2*w+2*h)
	for x := 0; x < w; x++ {
		pixels = append(pixels, r.pixel(x, 0, r.color))
		if h > 1 {
			pixels = append(pixels, r.pixel(x, h-1, r.color))
		}
	}
	for y := 1; y < h-1; y++ {
		pixels = append(pixels, r.pixel(0, y, r.color))
		if w > 1 {
			pixels = append(pixels, r.pixel(w-1, y, r.color))
		}
	}
	if !r.fill.IsNone() {
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				pixels = append(pixels, r.pixel(x, y, r.fill))
			}
		}
	}
	r.setGeometry(pixels, local)
}

func (r *Rectangle) pixel(x, y int, color palette.Color) Pixel {
	return Pixel{X: x, Y: y, Color: color, Brightness: r.brightness}
}
