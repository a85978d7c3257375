package shape

import (
	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/skip2/go-qrcode"
)

// QRCode lights the dark modules of a QR symbol in the stroke color. With
// WithFill the light modules are lit in the fill color too. The quiet zone
// is omitted; leave unlit cells around the code when placing it.
type QRCode struct {
	Object
	payload string
	level   qrcode.RecoveryLevel
	fill    palette.Color
}

func NewQRCode(x, y float64, payload string, level qrcode.RecoveryLevel, opts ...Option) (*QRCode, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	q := &QRCode{Object: newObject(x, y, o), payload: payload, level: level, fill: o.fill}
	if err := q.calc(); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *QRCode) Payload() string { return q.payload }

// Modules is the symbol's side length in cells.
func (q *QRCode) Modules() int { return int(q.bbox.MaxX-q.bbox.MinX) + 1 }

// SetPayload re-encodes the symbol; on error the previous symbol is kept.
func (q *QRCode) SetPayload(payload string) error {
	prev := q.payload
	q.payload = payload
	if err := q.calc(); err != nil {
		q.payload = prev
		return err
	}
	q.notify()
	return nil
}

// SetColor recolors the dark modules only; lit light modules keep the fill.
func (q *QRCode) SetColor(spec any) error {
	c, err := q.pal.Resolve(spec)
	if err != nil {
		return err
	}
	prev := q.color
	q.color = c
	if err := q.calc(); err != nil {
		q.color = prev
		return err
	}
	q.notify()
	return nil
}

func (q *QRCode) calc() error {
	code, err := qrcode.New(q.payload, q.level)
	if err != nil {
		return err
	}
	code.DisableBorder = true
	bitmap := trimQuietZone(code.Bitmap())

	n := len(bitmap)
	var pixels []Pixel
	for row, line := range bitmap {
		y := n - 1 - row
		for x, dark := range line {
			switch {
			case dark:
				pixels = append(pixels, Pixel{X: x, Y: y, Color: q.color, Brightness: q.brightness})
			case !q.fill.IsNone():
				pixels = append(pixels, Pixel{X: x, Y: y, Color: q.fill, Brightness: q.brightness})
			}
		}
	}
	q.setGeometry(pixels, BBox{MinX: 0, MinY: 0, MaxX: float64(n - 1), MaxY: float64(n - 1)})
	return nil
}

// trimQuietZone drops all-light outer rows and columns. Finder patterns keep
// the symbol's own edges dark, so only the quiet zone is removed.
func trimQuietZone(bitmap [][]bool) [][]bool {
	top, bottom := 0, len(bitmap)
	for top < bottom && !anyDark(bitmap[top]) {
		top++
	}
	for bottom > top && !anyDark(bitmap[bottom-1]) {
		bottom--
	}
	bitmap = bitmap[top:bottom]
	if len(bitmap) == 0 {
		return nil
	}

	left, right := 0, len(bitmap[0])
	for left < right && !columnDark(bitmap, left) {
		left++
	}
	for right > left && !columnDark(bitmap, right-1) {
		right--
	}
	out := make([][]bool, len(bitmap))
	for i, row := range bitmap {
		out[i] = row[left:right]
	}
	return out
}

func anyDark(row []bool) bool {
	for _, dark := range row {
		if dark {
			return true
		}
	}
	return false
}

func columnDark(bitmap [][]bool, x int) bool {
	for _, row := range bitmap {
		if row[x] {
			return true
		}
	}
	return false
}
