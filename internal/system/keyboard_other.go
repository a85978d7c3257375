//go:build !linux

package system

import "context"

// WatchKeys is a no-op without evdev.
func WatchKeys(ctx context.Context, l logger, handlers map[uint16]func()) {
	if l != nil && len(handlers) > 0 {
		l.Infof("input", "key watching requires linux")
	}
}
