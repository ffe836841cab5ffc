package gfx

import (
	"time"

	"github.com/chewxy/math32"
)

// FrameStats is a ring buffer of recent frame durations.
type FrameStats struct {
	d      []time.Duration
	i      int
	frames uint64
}

// NewFrameStats keeps the last n frame durations.
func NewFrameStats(n int) *FrameStats {
	if n <= 0 {
		n = 1
	}
	return &FrameStats{d: make([]time.Duration, 0, n)}
}

// Collect records one frame duration.
func (fs *FrameStats) Collect(d time.Duration) {
	fs.frames++
	if len(fs.d) < cap(fs.d) {
		fs.d = append(fs.d, d)
		return
	}
	fs.d[fs.i] = d
	fs.i = (fs.i + 1) % len(fs.d)
}

// Frames is the number of durations collected so far.
func (fs *FrameStats) Frames() uint64 {
	return fs.frames
}

func (fs *FrameStats) Average() time.Duration {
	if len(fs.d) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range fs.d {
		total += d
	}
	return total / time.Duration(len(fs.d))
}

// FPS derives frames per second from the average duration, rounded to one
// decimal.
func (fs *FrameStats) FPS() float32 {
	avg := fs.Average()
	if avg <= 0 {
		return 0
	}
	return math32.Floor(float32(time.Second)/float32(avg)*10+0.5) / 10
}
