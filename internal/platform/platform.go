package platform

import "time"

type WindowConfig struct {
	// CanvasID names the canvas element to draw on in the browser. A canvas
	// with that id is created when the page has none.
	CanvasID string
	Width    int
	Height   int
	Title    string
	// FullWindow keeps the browser canvas at the window's inner size.
	FullWindow bool
	// SwapInterval is passed to glfwSwapInterval on the desktop.
	SwapInterval int
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		CanvasID:     "canvas",
		Width:        800,
		Height:       600,
		Title:        "raymarch",
		FullWindow:   true,
		SwapInterval: 1,
	}
}

// Handler is driven by a window's loop, always on the goroutine that owns
// the GL context.
type Handler interface {
	Frame(elapsed time.Duration)
	Resize(width, height int)
}
