package render

import (
	"sync"

	"github.com/rook-computer/neomatrix/internal/palette"
)

// Recorder is an in-memory sink that keeps every frame written to it.
type Recorder struct {
	mu     sync.Mutex
	n      int
	frames [][]palette.RGB
	Err    error // returned by Write when set
}

// NewRecorder returns a recorder for a strip of n LEDs.
func NewRecorder(n int) *Recorder { return &Recorder{n: n} }

func (r *Recorder) Len() int { return r.n }

func (r *Recorder) Write(frame []palette.RGB) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.frames = append(r.frames, append([]palette.RGB(nil), frame...))
	return nil
}

// Writes reports how many frames were written.
func (r *Recorder) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Last returns the most recent frame, or nil.
func (r *Recorder) Last() []palette.RGB {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

// Frames returns every frame in write order.
func (r *Recorder) Frames() [][]palette.RGB {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]palette.RGB(nil), r.frames...)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.frames = nil
	r.mu.Unlock()
}
