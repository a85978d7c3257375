package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/rook-computer/neomatrix/internal/shape"
)

const (
	EnvWidth      = "NEOMATRIX_WIDTH"
	EnvHeight     = "NEOMATRIX_HEIGHT"
	EnvColor      = "NEOMATRIX_COLOR"
	EnvBrightness = "NEOMATRIX_BRIGHTNESS"
	EnvAutoupdate = "NEOMATRIX_AUTOUPDATE"
	EnvFPS        = "NEOMATRIX_FPS"
	EnvScene      = "NEOMATRIX_SCENE"
	EnvPalette    = "NEOMATRIX_PALETTE"
)

// Config contains the matrix geometry, shape defaults and runner settings.
type Config struct {
	Width, Height int
	Color         string
	Brightness    int
	Autoupdate    bool
	FPS           int
	Scene         string
	// Palette resolves color names; extended by NEOMATRIX_PALETTE.
	Palette *palette.Palette
}

func DefaultConfig() Config {
	return Config{
		Width:      16,
		Height:     16,
		Color:      shape.DefaultColor,
		Brightness: shape.DefaultBrightness,
		FPS:        30,
		Scene:      "bounce",
		Palette:    palette.Default(),
	}
}

// DefaultConfigFromEnv starts from DefaultConfig and applies any NEOMATRIX_*
// variables that are set.
func DefaultConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	for _, v := range []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvBrightness, &cfg.Brightness},
		{EnvFPS, &cfg.FPS},
	} {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", v.name, raw, err)
		}
		*v.dst = parsed
	}

	if raw := os.Getenv(EnvAutoupdate); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvAutoupdate, raw, err)
		}
		cfg.Autoupdate = parsed
	}
	if raw := os.Getenv(EnvColor); raw != "" {
		cfg.Color = raw
	}
	if raw := os.Getenv(EnvScene); raw != "" {
		cfg.Scene = raw
	}
	if raw := os.Getenv(EnvPalette); raw != "" {
		extra, err := palette.ParseEntries(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPalette, err)
		}
		cfg.Palette = cfg.Palette.Extend(extra)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot drive a matrix.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("matrix size %dx%d: width and height must be positive", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive (got %d)", c.FPS)
	}
	p := c.Palette
	if p == nil {
		p = palette.Default()
	}
	if _, err := p.Resolve(c.Color); err != nil {
		return fmt.Errorf("default color: %w", err)
	}
	return nil
}
