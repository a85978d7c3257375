package render

import "image/color"

// Global render configuration for preview sinks.
var (
	// Background surrounds the LED grid; Unlit is drawn for dark LEDs so
	// the grid stays visible.
	Background = color.RGBA{R: 0x0c, G: 0x0c, B: 0x0c, A: 0xFF}
	Unlit      = color.RGBA{R: 0x24, G: 0x24, B: 0x24, A: 0xFF}

	// Logical framebuffer canvas size; scaled to the device.
	CanvasWidth  = 1280
	CanvasHeight = 720

	// DefaultCellPx is the LED pitch of PNG and window previews.
	DefaultCellPx = 24
)
