package platform

import "time"

type Event interface{}

type Resize struct {
	Width, Height int
}

// DestroyNotify reports that the surface or its context is gone: the window
// was closed or the browser dropped the WebGL context.
type DestroyNotify struct{}

const defaultQueueSize = 64

// eventQueue buffers host callbacks until the next frame. Producers never
// block: events are dropped when the buffer is full.
type eventQueue struct {
	events chan Event
}

func newEventQueue(size int) *eventQueue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &eventQueue{events: make(chan Event, size)}
}

func (q *eventQueue) emit(event Event) bool {
	if q == nil || event == nil {
		return false
	}
	select {
	case q.events <- event:
		return true
	default:
		return false
	}
}

// drain hands the queued events to h without blocking. Consecutive resizes
// collapse into the last one. It reports false once a DestroyNotify was seen.
func (q *eventQueue) drain(h Handler) bool {
	var (
		resize  Resize
		resized bool
	)
	flush := func() {
		if resized {
			h.Resize(resize.Width, resize.Height)
			resized = false
		}
	}
	for {
		select {
		case event := <-q.events:
			switch e := event.(type) {
			case Resize:
				resize, resized = e, true
			case DestroyNotify:
				flush()
				return false
			}
		default:
			flush()
			return true
		}
	}
}

// step runs one loop iteration: queued events first, then the frame. It
// reports false, without drawing, once the surface is gone.
func (q *eventQueue) step(h Handler, elapsed time.Duration) bool {
	if !q.drain(h) {
		return false
	}
	h.Frame(elapsed)
	return true
}
