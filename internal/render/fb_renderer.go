package render

import (
	"image"
	"sync"
	"sync/atomic"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/neomatrix/internal/palette"
	"github.com/rook-computer/neomatrix/internal/system"
	xdraw "golang.org/x/image/draw"
)

const DefaultFBDevice = "/dev/fb0"

// FBSink renders frames to the Linux framebuffer using an offscreen logical
// canvas that is scaled to the device on every write.
type FBSink struct {
	Device string
	Style  Style
	Logger Logger
	// KeepConsole leaves the console in text mode.
	KeepConsole bool

	width, height int

	mu      sync.Mutex
	fbDev   *fb.Device
	canvas  *image.RGBA
	running atomic.Bool
	frames  int
}

func NewFBSink(width, height int) *FBSink {
	return &FBSink{Device: DefaultFBDevice, width: width, height: height}
}

func (s *FBSink) Len() int { return s.width * s.height }

func (s *FBSink) Start() error {
	log := loggerOrNoop(s.Logger)
	dev, err := fb.Open(s.Device)
	if err != nil {
		return err
	}
	bounds := dev.Bounds()
	log.Infof("fb", "framebuffer %s open, bounds=%dx%d", s.Device, bounds.Dx(), bounds.Dy())

	if !s.KeepConsole {
		_ = system.SetGraphicsModeWithLog(log)
		_ = system.HideCursorWithLog(log)
	}

	s.mu.Lock()
	s.fbDev = dev
	s.canvas = image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	s.mu.Unlock()
	s.running.Store(true)
	return nil
}

func (s *FBSink) Stop() error {
	s.running.Store(false)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fbDev != nil {
		s.fbDev.Close()
		s.fbDev = nil
	}
	if !s.KeepConsole {
		log := loggerOrNoop(s.Logger)
		_ = system.ShowCursorWithLog(log)
		_ = system.RestoreTextModeWithLog(log)
	}
	return nil
}

// Write draws frame onto the offscreen canvas and blits it. Writes before
// Start or after Stop are dropped.
func (s *FBSink) Write(frame []palette.RGB) error {
	if err := checkFrame(frame, s.width, s.height); err != nil {
		return err
	}
	if !s.running.Load() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fbDev == nil {
		return nil
	}
	DrawMatrix(s.canvas, s.canvas.Bounds(), frame, s.width, s.height, s.Style)
	blitToFB(s.fbDev, s.canvas)
	s.frames++
	if s.frames%300 == 0 {
		loggerOrNoop(s.Logger).Infof("fb", "heartbeat, %d frames", s.frames)
	}
	return nil
}

// blitToFB scales the logical canvas onto the device.
func blitToFB(dev *fb.Device, canvas *image.RGBA) {
	xdraw.NearestNeighbor.Scale(dev, dev.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
}
