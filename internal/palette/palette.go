package palette

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// RGB is a resolved 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// ToRGBA converts to an opaque color.RGBA for image APIs.
func (c RGB) ToRGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF} }

func (c RGB) String() string { return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B) }

// Color is an optional RGB. The zero value is "no color".
type Color struct {
	rgb RGB
	ok  bool
}

// None is the absent color.
var None = Color{}

// Some wraps rgb as a present color.
func Some(rgb RGB) Color { return Color{rgb: rgb, ok: true} }

// RGB returns the triple and whether the color is present.
func (c Color) RGB() (RGB, bool) { return c.rgb, c.ok }

func (c Color) IsNone() bool { return !c.ok }

func (c Color) String() string {
	if !c.ok {
		return "none"
	}
	return c.rgb.String()
}

// InvalidColorError reports a color spec that is neither a palette name nor
// a 6-digit hex string, or a spec of an unsupported type.
type InvalidColorError struct {
	Spec any
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %#v", e.Spec)
}

// Palette maps lower-case names to colors. A Palette is never mutated after
// construction; Extend returns a new one.
type Palette struct {
	entries map[string]RGB
}

var defaultPalette = &Palette{entries: map[string]RGB{
	"red":    {255, 0, 0},
	"blue":   {0, 0, 255},
	"green":  {0, 255, 0},
	"yellow": {255, 255, 0},
	"purple": {255, 0, 255},
	"cyan":   {0, 255, 255},
	"white":  {255, 255, 255},
	"orange": {255, 165, 0},
	"black":  {0, 0, 0},
}}

// Default returns the built-in nine-color palette.
func Default() *Palette { return defaultPalette }

// Extend returns a palette holding p's entries plus extra. Names in extra
// override existing entries and are matched case-insensitively.
func (p *Palette) Extend(extra map[string]RGB) *Palette {
	out := &Palette{entries: make(map[string]RGB, len(p.entries)+len(extra))}
	for name, rgb := range p.entries {
		out.entries[name] = rgb
	}
	for name, rgb := range extra {
		out.entries[strings.ToLower(strings.TrimSpace(name))] = rgb
	}
	return out
}

// Lookup returns the named entry.
func (p *Palette) Lookup(name string) (RGB, bool) {
	rgb, ok := p.entries[strings.ToLower(name)]
	return rgb, ok
}

// Names returns the palette names in sorted order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.entries))
	for name := range p.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves spec against the default palette.
func Resolve(spec any) (Color, error) { return defaultPalette.Resolve(spec) }

// MustResolve is Resolve for package-level literals; it panics on error.
func MustResolve(spec any) Color {
	c, err := Resolve(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve accepts a palette name (any case), a 6-digit hex string without
// '#', an RGB, a Color, any image/color.Color, or nil. The empty string and
// nil resolve to None.
func (p *Palette) Resolve(spec any) (Color, error) {
	switch v := spec.(type) {
	case nil:
		return None, nil
	case Color:
		return v, nil
	case RGB:
		return Some(v), nil
	case *RGB:
		if v == nil {
			return None, nil
		}
		return Some(*v), nil
	case string:
		return p.resolveString(v)
	case color.Color:
		r, g, b, _ := v.RGBA()
		return Some(RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}), nil
	default:
		return None, &InvalidColorError{Spec: spec}
	}
}

func (p *Palette) resolveString(s string) (Color, error) {
	if s == "" {
		return None, nil
	}
	if rgb, ok := p.Lookup(s); ok {
		return Some(rgb), nil
	}
	rgb, err := ParseHex(s)
	if err != nil {
		return None, &InvalidColorError{Spec: s}
	}
	return Some(rgb), nil
}

// ParseHex parses "rrggbb".
func ParseHex(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("hex color %q: want 6 digits", s)
	}
	var raw [3]byte
	if _, err := hex.Decode(raw[:], []byte(s)); err != nil {
		return RGB{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	return RGB{R: raw[0], G: raw[1], B: raw[2]}, nil
}

// ParseEntries parses a comma-separated "name=rrggbb" list, the format used
// to extend the palette from configuration.
func ParseEntries(raw string) (map[string]RGB, error) {
	out := map[string]RGB{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, value, ok := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("palette entry %q: want name=rrggbb", item)
		}
		rgb, err := ParseHex(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", name, err)
		}
		out[strings.ToLower(name)] = rgb
	}
	return out, nil
}
