package app

import (
	"flag"
	"strings"

	"github.com/rook-computer/neomatrix/internal/app/scenes"
	"github.com/rook-computer/neomatrix/internal/palette"
)

// RegisterFlags binds the matrix options to fs, using the current values of
// cfg as defaults.
func RegisterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Width, "width", cfg.Width, "matrix width in LEDs; also configurable via "+EnvWidth)
	fs.IntVar(&cfg.Height, "height", cfg.Height, "matrix height in LEDs; also configurable via "+EnvHeight)
	fs.StringVar(&cfg.Color, "color", cfg.Color, "default shape color (palette name or rrggbb); also configurable via "+EnvColor)
	fs.IntVar(&cfg.Brightness, "brightness", cfg.Brightness, "default shape brightness in percent; also configurable via "+EnvBrightness)
	fs.BoolVar(&cfg.Autoupdate, "autoupdate", cfg.Autoupdate, "write a frame on every shape change; also configurable via "+EnvAutoupdate)
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "ticks per second; also configurable via "+EnvFPS)
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "scene to start: "+strings.Join(scenes.Names(), " | ")+"; also configurable via "+EnvScene)
	fs.Func("palette", "extra palette entries name=rrggbb,...; also configurable via "+EnvPalette, func(raw string) error {
		extra, err := palette.ParseEntries(raw)
		if err != nil {
			return err
		}
		cfg.Palette = cfg.Palette.Extend(extra)
		return nil
	})
}
