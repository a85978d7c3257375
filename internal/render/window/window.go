//go:build !tinygo

// Package window shows the matrix in a desktop window.
package window

import (
	"context"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/rook-computer/neomatrix/internal/render"
)

// Window is a sink that draws the latest frame on every ebiten tick.
type Window struct {
	Title  string
	CellPx int
	Style  render.Style
	Logger render.Logger

	width, height int

	mu    sync.Mutex
	frame []palette.RGB
}

func New(width, height int) *Window {
	return &Window{
		Title:  "neomatrix",
		CellPx: render.DefaultCellPx,
		width:  width,
		height: height,
		frame:  make([]palette.RGB, width*height),
	}
}

func (w *Window) Len() int { return w.width * w.height }

func (w *Window) Write(frame []palette.RGB) error {
	w.mu.Lock()
	copy(w.frame, frame)
	w.mu.Unlock()
	return nil
}

// Run opens the window and calls step once per tick at tps ticks per
// second. It blocks until the window closes, ctx is done, or step fails,
// and must be called from the main goroutine.
func (w *Window) Run(ctx context.Context, tps int, step func() error) error {
	cell := w.CellPx
	if cell <= 0 {
		cell = render.DefaultCellPx
	}
	g := &game{w: w, ctx: ctx, step: step, cell: cell}
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.width*cell, w.height*cell)
	ebiten.SetTPS(tps)
	if w.Logger != nil {
		w.Logger.Infof("window", "opening %dx%d window at %d tps", w.width*cell, w.height*cell, tps)
	}
	return ebiten.RunGame(g)
}

type game struct {
	w    *Window
	ctx  context.Context
	step func() error
	cell int
	img  *image.RGBA
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w.width*g.cell, w.height*g.cell))
	}
	w.mu.Lock()
	render.DrawMatrix(g.img, g.img.Bounds(), w.frame, w.width, w.height, w.Style)
	w.mu.Unlock()
	screen.WritePixels(g.img.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.width * g.cell, g.w.height * g.cell
}
