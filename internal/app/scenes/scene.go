// Package scenes holds the animations the runner can show. Each scene builds
// its shapes on Start and mutates them on every Step.
package scenes

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rook-computer/neomatrix/internal/canvas"
	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/rook-computer/neomatrix/internal/shape"
)

var ErrUnknownScene = errors.New("unknown scene")

type Logger interface {
	Infof(component, format string, args ...interface{})
	Errorf(component, format string, args ...interface{})
}

// Scene is one animation. Step is called once per tick, starting at 0.
type Scene interface {
	Start(ctx context.Context, st *Stage) error
	Step(tick int) error
	Stop() error
}

// Stage is the canvas a scene draws on plus the configured shape defaults.
type Stage struct {
	Canvas     *canvas.Canvas
	Palette    *palette.Palette
	Color      string
	Brightness int
	Logger     Logger
}

// Opts returns the stage defaults followed by extra, so extra wins.
func (st *Stage) Opts(extra ...shape.Option) []shape.Option {
	opts := []shape.Option{shape.WithPalette(st.Palette), shape.WithBrightness(st.Brightness)}
	if st.Color != "" {
		opts = append(opts, shape.WithColor(st.Color))
	}
	return append(opts, extra...)
}

func (st *Stage) size() (w, h int) { return st.Canvas.Width(), st.Canvas.Height() }

func (st *Stage) logger() Logger {
	if st.Logger == nil {
		return noopLogger{}
	}
	return st.Logger
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

var registry = map[string]func() Scene{
	"bounce":  func() Scene { return &Bounce{} },
	"sprites": func() Scene { return &Sprites{} },
	"hearts":  func() Scene { return &Hearts{} },
	"marquee": func() Scene { return &Marquee{Message: "NEOMATRIX"} },
	"banner":  func() Scene { return &Marquee{Message: "Hello, matrix!", TrueType: true} },
	"qr":      func() Scene { return &QR{Payload: "https://github.com/rook-computer/neomatrix"} },
	"fill":    func() Scene { return &Paint{} },
	"clock":   func() Scene { return &Clock{} },
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func New(name string) (Scene, error) {
	newScene, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, Names())
	}
	return newScene(), nil
}

// every reports whether tick falls on a multiple of n.
func every(tick, n int) bool { return n <= 1 || tick%n == 0 }
