// Package ws2812 writes frames to a NeoPixel matrix on a microcontroller.
package ws2812

import (
	"errors"
	"image/color"

	"github.com/rook-computer/neomatrix/internal/palette"
)

var ErrFrameSize = errors.New("frame length does not match strip length")

// Encode converts frame into the driver's color buffer.
func Encode(dst []color.RGBA, frame []palette.RGB) error {
	if len(dst) != len(frame) {
		return ErrFrameSize
	}
	for i, c := range frame {
		dst[i] = c.ToRGBA()
	}
	return nil
}
