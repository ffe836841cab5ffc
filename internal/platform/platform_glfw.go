//go:build !js

package platform

import (
	"context"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWWindow is a desktop window with a current OpenGL 3.3 core context.
// It must be created and run on the main OS thread.
type GLFWWindow struct {
	win   *glfw.Window
	queue *eventQueue

	width, height int
}

func NewGLFWWindow(conf WindowConfig) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(conf.SwapInterval)

	w := &GLFWWindow{
		win:   win,
		queue: newEventQueue(defaultQueueSize),
	}
	w.width, w.height = win.GetFramebufferSize()

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width == 0 || height == 0 {
			// minimized
			return
		}
		w.width, w.height = width, height
		w.queue.emit(Resize{Width: width, Height: height})
	})
	win.SetCloseCallback(func(*glfw.Window) {
		w.queue.emit(DestroyNotify{})
	})
	win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})
	return w, nil
}

// Size is the framebuffer size in pixels.
func (w *GLFWWindow) Size() (width, height int) {
	return w.width, w.height
}

// Run polls events, draws and swaps until the window is closed or ctx is
// done.
func (w *GLFWWindow) Run(ctx context.Context, h Handler) error {
	clock := NewClock(glfw.GetTime() * 1000)
	for !w.win.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		glfw.PollEvents()
		if !w.queue.step(h, clock.Elapsed(glfw.GetTime()*1000)) {
			return nil
		}
		w.win.SwapBuffers()
	}
	return nil
}

func (w *GLFWWindow) Close() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
