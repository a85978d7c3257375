//go:build linux

package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Prefer /dev/tty (active VT), fall back to /dev/tty0.
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// SetGraphicsMode switches the active console to graphics mode so the text
// console and its cursor stop drawing over the framebuffer.
func SetGraphicsMode() error { return setConsoleMode(kdGraphics, "KD_GRAPHICS") }

// RestoreTextMode switches the active console back to text mode.
func RestoreTextMode() error { return setConsoleMode(kdText, "KD_TEXT") }

func setConsoleMode(mode int, name string) error {
	var lastErr error
	for _, p := range consolePaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("%s on %s: %w", name, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

// HideCursor writes the ANSI escape that hides the cursor to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }

func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	var lastErr error
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT: %w", lastErr)
}
