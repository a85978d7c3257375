package main

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rook-computer/neomatrix/internal/app"
	"github.com/rook-computer/neomatrix/internal/canvas"
	"github.com/rook-computer/neomatrix/internal/palette"
)

var ErrInjectedFault = errors.New("simulated sink failure")

// SimFaults configures failures injected into the display sink.
type SimFaults struct {
	// FailAfterFrames makes every write after the first n frames fail;
	// zero disables the fault.
	FailAfterFrames int64
}

// sizedSink is a sink that reports how many LEDs it drives.
type sizedSink interface {
	canvas.Sink
	Len() int
}

// faultySink wraps a sink and fails writes according to SimFaults.
type faultySink struct {
	sizedSink
	written atomic.Int64

	mu     sync.RWMutex
	faults SimFaults
}

func newFaultySink(sink sizedSink, faults SimFaults) *faultySink {
	return &faultySink{sizedSink: sink, faults: faults}
}

func (s *faultySink) Write(frame []palette.RGB) error {
	s.mu.RLock()
	limit := s.faults.FailAfterFrames
	s.mu.RUnlock()
	if limit > 0 && s.written.Load() >= limit {
		return ErrInjectedFault
	}
	s.written.Add(1)
	return s.sizedSink.Write(frame)
}

func (s *faultySink) SetFaults(f SimFaults) {
	s.mu.Lock()
	s.faults = f
	s.mu.Unlock()
}

// cycleScenes advances the app to the next scene every interval until ctx
// is done.
func cycleScenes(ctx context.Context, a *app.App, interval time.Duration, logger app.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.NextScene(); err != nil {
				logger.Errorf("sim", "next scene: %v", err)
				continue
			}
			logger.Infof("sim", "scene %s", a.Scene())
		}
	}
}
