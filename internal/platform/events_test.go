package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	frames  []time.Duration
	resizes [][2]int
}

func (r *recorder) Frame(elapsed time.Duration) { r.frames = append(r.frames, elapsed) }
func (r *recorder) Resize(w, h int)             { r.resizes = append(r.resizes, [2]int{w, h}) }

func TestEventQueue_DrainEmpty(t *testing.T) {
	q := newEventQueue(4)
	rec := &recorder{}

	assert.True(t, q.drain(rec))
	assert.Empty(t, rec.resizes)
}

func TestEventQueue_CoalescesResizes(t *testing.T) {
	q := newEventQueue(8)
	rec := &recorder{}

	assert.True(t, q.emit(Resize{Width: 100, Height: 50}))
	assert.True(t, q.emit(Resize{Width: 200, Height: 80}))
	assert.True(t, q.emit(Resize{Width: 640, Height: 480}))

	assert.True(t, q.drain(rec))
	assert.Equal(t, [][2]int{{640, 480}}, rec.resizes)

	assert.True(t, q.drain(rec))
	assert.Len(t, rec.resizes, 1)
}

func TestEventQueue_Destroy(t *testing.T) {
	q := newEventQueue(8)
	rec := &recorder{}

	q.emit(Resize{Width: 300, Height: 200})
	q.emit(DestroyNotify{})

	assert.False(t, q.drain(rec))
	assert.Equal(t, [][2]int{{300, 200}}, rec.resizes)
}

func TestEventQueue_DropsWhenFull(t *testing.T) {
	q := newEventQueue(1)

	assert.True(t, q.emit(Resize{Width: 1, Height: 1}))
	assert.False(t, q.emit(Resize{Width: 2, Height: 2}))
	assert.False(t, q.emit(nil))

	var nilQueue *eventQueue
	assert.False(t, nilQueue.emit(DestroyNotify{}))
}

func TestNewEventQueue_DefaultSize(t *testing.T) {
	assert.Equal(t, defaultQueueSize, cap(newEventQueue(0).events))
}

func TestEventQueue_StepDrawsAfterResize(t *testing.T) {
	q := newEventQueue(4)
	rec := &recorder{}

	q.emit(Resize{Width: 640, Height: 480})
	assert.True(t, q.step(rec, 16*time.Millisecond))
	assert.True(t, q.step(rec, 32*time.Millisecond))

	assert.Equal(t, [][2]int{{640, 480}}, rec.resizes)
	assert.Equal(t, []time.Duration{16 * time.Millisecond, 32 * time.Millisecond}, rec.frames)
}

func TestEventQueue_StepStopsOnDestroy(t *testing.T) {
	q := newEventQueue(4)
	rec := &recorder{}

	assert.True(t, q.step(rec, 16*time.Millisecond))
	q.emit(DestroyNotify{})

	assert.False(t, q.step(rec, 32*time.Millisecond))
	assert.Equal(t, []time.Duration{16 * time.Millisecond}, rec.frames)
}
