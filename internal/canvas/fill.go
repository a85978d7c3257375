package canvas

import (
	"fmt"
	"image"

	"github.com/rook-computer/neomatrix/internal/shape"
)

// OutOfBoundsError reports a flood-fill start outside the canvas.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("(%d,%d) is outside the %dx%d canvas", e.X, e.Y, e.Width, e.Height)
}

// Fill paints the 4-connected area around (x, y) whose composite color
// equals the start cell's. The composite is rebuilt from the current shapes
// first, so fills always see the latest state. The painted cells become a
// Region shape added on top of the canvas and returned.
func (c *Canvas) Fill(x, y int, spec any, brightness int) (*shape.Region, error) {
	if !c.ValidCoord(x, y) {
		return nil, &OutOfBoundsError{X: x, Y: y, Width: c.width, Height: c.height}
	}
	fill, err := c.palette.Resolve(spec)
	if err != nil {
		return nil, err
	}

	c.compose()
	cells := c.floodCells(x, y)

	region, err := shape.NewRegion(cells, shape.WithColor(fill), shape.WithBrightness(brightness))
	if err != nil {
		return nil, err
	}
	if err := c.Add(region); err != nil {
		return nil, err
	}
	c.logger.Infof("canvas", "fill from (%d,%d) covered %d cells", x, y, len(cells))
	return region, nil
}

// floodCells runs a breadth-first search over the composite buffer.
func (c *Canvas) floodCells(x, y int) []image.Point {
	target := c.color[x][y]
	visited := make([][]bool, c.width)
	for i := range visited {
		visited[i] = make([]bool, c.height)
	}

	queue := []image.Point{image.Pt(x, y)}
	visited[x][y] = true
	var cells []image.Point
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cells = append(cells, p)

		for _, n := range [...]image.Point{image.Pt(p.X+1, p.Y), image.Pt(p.X-1, p.Y), image.Pt(p.X, p.Y+1), image.Pt(p.X, p.Y-1)} {
			if !c.ValidCoord(n.X, n.Y) || visited[n.X][n.Y] || c.color[n.X][n.Y] != target {
				continue
			}
			visited[n.X][n.Y] = true
			queue = append(queue, n)
		}
	}
	return cells
}
