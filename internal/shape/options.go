package shape

import "github.com/rook-computer/neomatrix/internal/palette"

// Option configures a shape during construction.
type Option func(*optionSpecs)

type optionSpecs struct {
	color      any
	fill       any
	brightness int
	palette    *palette.Palette
}

// options holds the resolved construction settings.
type options struct {
	color      palette.Color
	fill       palette.Color
	brightness int
	palette    *palette.Palette
}

// WithColor sets the stroke color. Any spec accepted by palette.Resolve is
// allowed; "" means no color.
func WithColor(spec any) Option {
	return func(o *optionSpecs) { o.color = spec }
}

// WithFill sets the interior color of closed shapes (circle, rectangle) and
// the background of a QR code. Without it the interior is left empty.
func WithFill(spec any) Option {
	return func(o *optionSpecs) { o.fill = spec }
}

// WithBrightness sets the brightness in percent; values are clamped to 0-100.
func WithBrightness(brightness int) Option {
	return func(o *optionSpecs) { o.brightness = brightness }
}

// WithPalette resolves names against p instead of the default palette.
func WithPalette(p *palette.Palette) Option {
	return func(o *optionSpecs) {
		if p != nil {
			o.palette = p
		}
	}
}

func resolveOptions(opts []Option) (options, error) {
	specs := optionSpecs{
		color:      DefaultColor,
		brightness: DefaultBrightness,
		palette:    palette.Default(),
	}
	for _, opt := range opts {
		opt(&specs)
	}

	color, err := specs.palette.Resolve(specs.color)
	if err != nil {
		return options{}, err
	}
	fill, err := specs.palette.Resolve(specs.fill)
	if err != nil {
		return options{}, err
	}
	return options{
		color:      color,
		fill:       fill,
		brightness: ClampBrightness(specs.brightness),
		palette:    specs.palette,
	}, nil
}
