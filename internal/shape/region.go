package shape

import "image"

// Region is an arbitrary set of cells in canvas coordinates, as produced by
// a flood fill. Its position starts at the origin.
type Region struct {
	Object
}

func NewRegion(cells []image.Point, opts ...Option) (*Region, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	r := &Region{Object: newObject(0, 0, o)}
	pixels := make([]Pixel, 0, len(cells))
	for _, cell := range cells {
		pixels = append(pixels, Pixel{X: cell.X, Y: cell.Y, Color: o.color, Brightness: o.brightness})
	}
	r.setGeometry(pixels, boundsOf(pixels))
	return r, nil
}

// Len is the number of cells in the region.
func (r *Region) Len() int { return len(r.pixels) }
