package shape

import "github.com/rook-computer/neomatrix/internal/palette"

// Circle is a midpoint-circle ring around its position, optionally filled.
type Circle struct {
	Object
	radius float64
	fill   palette.Color
}

// NewCircle centers a circle of radius r at (x, y). A radius of zero or less
// produces no pixels; a radius below one produces only the center. A
// fractional radius is truncated for rasterizing while the bounding box
// stays at ±r.
func NewCircle(x, y, r float64, opts ...Option) (*Circle, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	c := &Circle{Object: newObject(x, y, o), radius: r, fill: o.fill}
	c.calc()
	return c, nil
}

func (c *Circle) Radius() float64 { return c.radius }

// SetRadius re-rasterizes the circle and recomputes its bounding box.
func (c *Circle) SetRadius(r float64) {
	c.radius = r
	c.calc()
	c.notify()
}

func (c *Circle) Fill() palette.Color { return c.fill }

// SetFill changes the interior color; None removes the fill.
func (c *Circle) SetFill(spec any) error {
	fill, err := c.pal.Resolve(spec)
	if err != nil {
		return err
	}
	c.fill = fill
	c.calc()
	c.notify()
	return nil
}

func (c *Circle) calc() {
	r := c.radius
	local := BBox{MinX: -r, MinY: -r, MaxX: r, MaxY: r}
	switch {
	case r <= 0:
		c.setGeometry(nil, local)
	case r < 1:
		c.setGeometry([]Pixel{c.pixel(0, 0, c.color)}, local)
	default:
		ring := rasterRing(int(r))
		pixels := make([]Pixel, 0, len(ring))
		for _, pt := range ring {
			pixels = append(pixels, c.pixel(pt[0], pt[1], c.color))
		}
		if !c.fill.IsNone() {
			for _, pt := range fillRing(int(r), ring) {
				pixels = append(pixels, c.pixel(pt[0], pt[1], c.fill))
			}
		}
		c.setGeometry(pixels, local)
	}
}

func (c *Circle) pixel(x, y int, color palette.Color) Pixel {
	return Pixel{X: x, Y: y, Color: color, Brightness: c.brightness}
}

// rasterRing walks one quadrant from (-r, 0) towards the y axis and emits
// each step rotated into all four quadrants.
func rasterRing(r int) [][2]int {
	var pts [][2]int
	x, y := -r, 0
	err := 2 - 2*r
	for {
		pts = append(pts, [2]int{-x, y}, [2]int{-y, -x}, [2]int{x, -y}, [2]int{y, x})
		e := err
		if e > x {
			x++
			err += x*2 + 1
		}
		if e <= y {
			y++
			err += y*2 + 1
		}
		if x >= 0 {
			break
		}
	}
	return pts
}

// fillRing finds, per column of the first quadrant, the lowest ring pixel
// and fills every row beneath it, mirrored into all quadrants.
func fillRing(r int, ring [][2]int) [][2]int {
	ceiling := make([]int, r+1)
	for i := range ceiling {
		ceiling[i] = -1
	}
	for _, pt := range ring {
		x, y := pt[0], pt[1]
		if x >= 0 && y >= 0 && x <= r && (ceiling[x] < 0 || y < ceiling[x]) {
			ceiling[x] = y
		}
	}

	var pts [][2]int
	for x := 0; x < r; x++ {
		for y := 0; y < ceiling[x]; y++ {
			pts = appendMirrored(pts, x, y)
		}
	}
	return pts
}

// appendMirrored adds (±x, ±y) without repeating cells that lie on an axis.
func appendMirrored(pts [][2]int, x, y int) [][2]int {
	pts = append(pts, [2]int{x, y})
	if y != 0 {
		pts = append(pts, [2]int{x, -y})
	}
	if x != 0 {
		pts = append(pts, [2]int{-x, y})
		if y != 0 {
			pts = append(pts, [2]int{-x, -y})
		}
	}
	return pts
}
