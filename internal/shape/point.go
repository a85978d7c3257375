package shape

// Point is a single pixel.
type Point struct {
	Object
}

func NewPoint(x, y float64, opts ...Option) (*Point, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	p := &Point{Object: newObject(x, y, o)}
	p.setGeometry([]Pixel{{X: 0, Y: 0, Color: o.color, Brightness: o.brightness}}, BBox{})
	return p, nil
}
