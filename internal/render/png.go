package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rook-computer/neomatrix/internal/palette"
)

// PNGSink writes every frame as a numbered PNG preview in Dir.
type PNGSink struct {
	Dir    string
	Prefix string // file name prefix, default "frame"
	CellPx int    // LED pitch in pixels, default DefaultCellPx
	Style  Style
	Logger Logger

	width, height int
	written       int
}

func NewPNGSink(dir string, width, height int) *PNGSink {
	return &PNGSink{Dir: dir, width: width, height: height}
}

func (s *PNGSink) Len() int { return s.width * s.height }

// Written reports how many images have been written.
func (s *PNGSink) Written() int { return s.written }

func (s *PNGSink) Write(frame []palette.RGB) error {
	if err := checkFrame(frame, s.width, s.height); err != nil {
		return err
	}
	cell := s.CellPx
	if cell <= 0 {
		cell = DefaultCellPx
	}
	prefix := s.Prefix
	if prefix == "" {
		prefix = "frame"
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width*cell, s.height*cell))
	DrawMatrix(img, img.Bounds(), frame, s.width, s.height, s.Style)

	path := filepath.Join(s.Dir, fmt.Sprintf("%s-%05d.png", prefix, s.written))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.written++
	if s.written == 1 || s.written%100 == 0 {
		loggerOrNoop(s.Logger).Infof("png", "wrote %s (%d frames)", path, s.written)
	}
	return nil
}
