//go:build js && wasm

package platform

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"syscall/js"

	"github.com/kjkrol/raymarch/pkg/gfx"
)

// Canvas is a browser canvas with a WebGL context, redrawn from
// requestAnimationFrame.
type Canvas struct {
	canvas js.Value
	gl     js.Value
	conf   WindowConfig
	queue  *eventQueue

	width, height int

	funcs   []js.Func
	removes []struct {
		target js.Value
		typ    string
		fn     js.Func
	}

	lost      atomic.Bool
	running   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
}

func NewCanvas(conf WindowConfig) (*Canvas, error) {
	doc := js.Global().Get("document")
	if conf.Title != "" {
		doc.Set("title", conf.Title)
	}

	canvas := doc.Call("getElementById", conf.CanvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		canvas = doc.Call("createElement", "canvas")
		canvas.Set("id", conf.CanvasID)
		style := canvas.Get("style")
		style.Set("display", "block")
		doc.Get("body").Call("appendChild", canvas)
	}

	c := &Canvas{
		canvas: canvas,
		conf:   conf,
		queue:  newEventQueue(defaultQueueSize),
		done:   make(chan struct{}),
	}
	c.setSize(c.targetSize())

	gl := canvas.Call("getContext", "webgl")
	if gl.IsNull() || gl.IsUndefined() {
		return nil, gfx.ErrNoContext
	}
	c.gl = gl

	c.addEventListener(canvas, "webglcontextlost", func(js.Value) {
		c.lost.Store(true)
		c.queue.emit(DestroyNotify{})
	})
	if conf.FullWindow {
		c.addEventListener(js.Global(), "resize", func(js.Value) {
			w, h := c.targetSize()
			if w == c.width && h == c.height {
				return
			}
			c.setSize(w, h)
			c.queue.emit(Resize{Width: w, Height: h})
		})
	}
	return c, nil
}

// Context is the WebGLRenderingContext of the canvas.
func (c *Canvas) Context() js.Value {
	return c.gl
}

func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *Canvas) targetSize() (int, int) {
	if !c.conf.FullWindow {
		return c.conf.Width, c.conf.Height
	}
	win := js.Global()
	return win.Get("innerWidth").Int(), win.Get("innerHeight").Int()
}

func (c *Canvas) setSize(width, height int) {
	c.width, c.height = width, height
	c.canvas.Set("width", width)
	c.canvas.Set("height", height)
}

func (c *Canvas) addEventListener(target js.Value, event string, f func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		f(e)
		return nil
	})
	target.Call("addEventListener", event, fn)
	c.funcs = append(c.funcs, fn)
	c.removes = append(c.removes, struct {
		target js.Value
		typ    string
		fn     js.Func
	}{target: target, typ: event, fn: fn})
}

// Run draws on every animation frame until ctx is done or the canvas is
// closed. Queued resizes reach h before the frame they precede. Losing the
// WebGL context stops the loop with an error wrapping gfx.ErrNoContext.
func (c *Canvas) Run(ctx context.Context, h Handler) error {
	if !c.running.CompareAndSwap(false, true) {
		return nil
	}
	defer c.running.Store(false)

	global := js.Global()
	clock := NewClock(global.Get("performance").Call("now").Float())

	var (
		frameID int
		stopped atomic.Bool
		loop    js.Func
	)
	loop = js.FuncOf(func(this js.Value, args []js.Value) any {
		if stopped.Load() {
			return nil
		}
		if !c.queue.step(h, clock.Elapsed(args[0].Float())) {
			c.Close()
			return nil
		}
		frameID = global.Call("requestAnimationFrame", loop).Int()
		return nil
	})
	frameID = global.Call("requestAnimationFrame", loop).Int()

	select {
	case <-ctx.Done():
	case <-c.done:
	}
	stopped.Store(true)
	global.Call("cancelAnimationFrame", frameID)
	loop.Release()
	if c.lost.Load() {
		return fmt.Errorf("%w: webgl context lost", gfx.ErrNoContext)
	}
	return ctx.Err()
}

// Close detaches the listeners and stops a running loop.
func (c *Canvas) Close() {
	c.closeOnce.Do(func() {
		for _, r := range c.removes {
			r.target.Call("removeEventListener", r.typ, r.fn)
		}
		for i := range c.funcs {
			c.funcs[i].Release()
		}
		c.funcs = nil
		c.removes = nil
		close(c.done)
	})
}

// Alert shows msg in a blocking browser dialog.
func Alert(msg string) {
	js.Global().Call("alert", msg)
}
