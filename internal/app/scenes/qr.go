package scenes

import (
	"context"

	"github.com/rook-computer/neomatrix/internal/shape"
	"github.com/skip2/go-qrcode"
)

// QR shows a QR code. A code larger than the matrix pans back and forth so
// every module is shown.
type QR struct {
	Payload string

	code         *shape.QRCode
	spanX, spanY int
	baseX, baseY int
}

func (q *QR) Start(ctx context.Context, st *Stage) error {
	var err error
	q.code, err = shape.NewQRCode(0, 0, q.Payload, qrcode.Low, st.Opts(shape.WithColor("white"))...)
	if err != nil {
		return err
	}
	w, h := st.size()
	n := q.code.Modules()
	q.spanX, q.spanY = max(0, n-w), max(0, n-h)
	q.baseX, q.baseY = max(0, (w-n)/2), max(0, (h-n)/2)
	q.code.SetPosition(float64(q.baseX), float64(q.baseY-q.spanY))
	return st.Canvas.Add(q.code)
}

func (q *QR) Step(tick int) error {
	if q.spanX == 0 && q.spanY == 0 {
		return nil
	}
	t := tick / 4
	q.code.SetPosition(float64(q.baseX-pingPong(t, q.spanX)), float64(q.baseY-q.spanY+pingPong(t, q.spanY)))
	return nil
}

// pingPong walks 0..span..0 repeatedly.
func pingPong(t, span int) int {
	if span == 0 {
		return 0
	}
	t %= 2 * span
	if t > span {
		return 2*span - t
	}
	return t
}

func (q *QR) Stop() error { return nil }
