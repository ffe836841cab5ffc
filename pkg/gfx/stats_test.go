package gfx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/raymarch/pkg/gfx"
)

func TestFrameStats_Empty(t *testing.T) {
	fs := gfx.NewFrameStats(8)
	assert.Equal(t, time.Duration(0), fs.Average())
	assert.Equal(t, float32(0), fs.FPS())
	assert.Equal(t, uint64(0), fs.Frames())
}

func TestFrameStats_RingKeepsLatest(t *testing.T) {
	fs := gfx.NewFrameStats(3)
	for _, ms := range []int{100, 100, 100, 10, 10, 10} {
		fs.Collect(time.Duration(ms) * time.Millisecond)
	}
	assert.Equal(t, uint64(6), fs.Frames())
	assert.Equal(t, 10*time.Millisecond, fs.Average())
	assert.Equal(t, float32(100), fs.FPS())
}

func TestFrameStats_FPSRounding(t *testing.T) {
	fs := gfx.NewFrameStats(1)
	fs.Collect(time.Second / 60)
	assert.InDelta(t, 60, fs.FPS(), 0.05)
}

func TestFrameStats_NonPositiveWindow(t *testing.T) {
	fs := gfx.NewFrameStats(0)
	fs.Collect(time.Second)
	fs.Collect(time.Second / 2)
	assert.Equal(t, time.Second/2, fs.Average())
}
