//go:build tinygo

package ws2812

import (
	"image/color"
	"machine"

	"github.com/rook-computer/neomatrix/internal/palette"
	"tinygo.org/x/drivers/ws2812"
)

// Strip drives a serpentine WS2812 matrix wired to a single data pin.
type Strip struct {
	dev ws2812.Device
	buf []color.RGBA
}

// New configures pin as the data line of a strip of n LEDs.
func New(pin machine.Pin, n int) *Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &Strip{dev: ws2812.New(pin), buf: make([]color.RGBA, n)}
}

func (s *Strip) Len() int { return len(s.buf) }

func (s *Strip) Write(frame []palette.RGB) error {
	if err := Encode(s.buf, frame); err != nil {
		return err
	}
	return s.dev.WriteColors(s.buf)
}
