//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// WatchKeys watches Linux evdev devices under /dev/input/event* and calls
// the handler bound to a key code each time that key is pressed. Handlers
// may run concurrently from different devices.
//
// It is best-effort: if no input devices are available, it logs and returns.
func WatchKeys(ctx context.Context, l logger, handlers map[uint16]func()) {
	if len(handlers) == 0 {
		return
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found")
		}
		return
	}

	var mu sync.Mutex
	dispatch := func(code uint16) {
		mu.Lock()
		defer mu.Unlock()
		if fn, ok := handlers[code]; ok {
			if l != nil {
				l.Infof("input", "key %d pressed", code)
			}
			fn()
		}
	}

	for _, path := range paths {
		go watchDevice(ctx, path, tvSize, dispatch)
	}
}

func watchDevice(ctx context.Context, path string, tvSize int, dispatch func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, code := range keyPresses(buf[:n], tvSize) {
			dispatch(code)
		}
	}
}
