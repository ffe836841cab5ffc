package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_Elapsed(t *testing.T) {
	c := NewClock(1000)

	assert.Equal(t, time.Duration(0), c.Elapsed(1000))
	assert.Equal(t, 1500*time.Millisecond, c.Elapsed(2500))
	assert.Equal(t, 16*time.Millisecond+500*time.Microsecond, c.Elapsed(1016.5))
}

func TestClock_NeverNegative(t *testing.T) {
	c := NewClock(1000)
	assert.Equal(t, time.Duration(0), c.Elapsed(999.2))
}

func TestDefaultWindowConfig(t *testing.T) {
	conf := DefaultWindowConfig()
	assert.Equal(t, "canvas", conf.CanvasID)
	assert.Equal(t, 800, conf.Width)
	assert.Equal(t, 600, conf.Height)
	assert.True(t, conf.FullWindow)
	assert.Equal(t, 1, conf.SwapInterval)
}
