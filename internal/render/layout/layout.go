package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	if out.Dx() <= 0 || out.Dy() <= 0 {
		// Too small to pad; keep a single pixel at the center.
		c := image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
		return image.Rectangle{Min: c, Max: c.Add(image.Pt(1, 1))}
	}
	return out
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// FitCentered returns the largest rectangle with the aspect ratio cols:rows
// whose sides are whole multiples of cols and rows, centered in rect.
func FitCentered(rect image.Rectangle, cols, rows int) image.Rectangle {
	rect = Normalize(rect)
	if cols <= 0 || rows <= 0 {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	cell := rect.Dx() / cols
	if h := rect.Dy() / rows; h < cell {
		cell = h
	}
	if cell < 1 {
		cell = 1
	}
	w, h := cell*cols, cell*rows
	minX := rect.Min.X + (rect.Dx()-w)/2
	minY := rect.Min.Y + (rect.Dy()-h)/2
	return image.Rect(minX, minY, minX+w, minY+h)
}

// Grid divides rect into cols x rows equal cells.
type Grid struct {
	Rect       image.Rectangle
	Cols, Rows int
}

// Cell returns the rectangle of the cell in column col, image row row
// (row 0 at the top).
func (g Grid) Cell(col, row int) image.Rectangle {
	r := Normalize(g.Rect)
	x0 := r.Min.X + col*r.Dx()/g.Cols
	x1 := r.Min.X + (col+1)*r.Dx()/g.Cols
	y0 := r.Min.Y + row*r.Dy()/g.Rows
	y1 := r.Min.Y + (row+1)*r.Dy()/g.Rows
	return image.Rect(x0, y0, x1, y1)
}
