package shape

import "math"

// Line is a straight run of pixels from its position to an end point,
// both ends included.
type Line struct {
	Object
	dx, dy int
}

// NewLine draws from (x, y) to (endX, endY). The end point is rounded to a
// whole-pixel offset from the start.
func NewLine(x, y, endX, endY float64, opts ...Option) (*Line, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	l := &Line{
		Object: newObject(x, y, o),
		dx:     int(math.Round(endX - x)),
		dy:     int(math.Round(endY - y)),
	}
	l.calc()
	return l, nil
}

// NewHLine draws length+1 pixels to the right of (x, y).
func NewHLine(x, y float64, length int, opts ...Option) (*Line, error) {
	return NewLine(x, y, x+float64(length), y, opts...)
}

// NewVLine draws length+1 pixels above (x, y).
func NewVLine(x, y float64, length int, opts ...Option) (*Line, error) {
	return NewLine(x, y, x, y+float64(length), opts...)
}

// End returns the end point in canvas coordinates.
func (l *Line) End() (x, y float64) {
	return l.x + float64(l.dx), l.y + float64(l.dy)
}

// SetEnd moves the end point, keeping the start fixed.
func (l *Line) SetEnd(endX, endY float64) {
	l.dx = int(math.Round(endX - l.x))
	l.dy = int(math.Round(endY - l.y))
	l.calc()
	l.notify()
}

func (l *Line) calc() {
	pixels := rasterLine(l.dx, l.dy, func(x, y int) Pixel {
		return Pixel{X: x, Y: y, Color: l.color, Brightness: l.brightness}
	})
	l.setGeometry(pixels, boundsOf(pixels))
}

// rasterLine walks from (0,0) to (x1,y1) with an integer error term,
// stepping x, y or both each iteration, so every octant yields a connected
// run including both ends.
func rasterLine(x1, y1 int, pixel func(x, y int) Pixel) []Pixel {
	dx := abs(x1)
	dy := -abs(y1)
	sx, sy := -1, -1
	if x1 > 0 {
		sx = 1
	}
	if y1 > 0 {
		sy = 1
	}
	err := dx + dy

	pixels := make([]Pixel, 0, dx-dy+1)
	x, y := 0, 0
	for {
		pixels = append(pixels, pixel(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return pixels
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
