//go:build js && wasm

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"syscall/js"

	"github.com/kjkrol/raymarch/internal/platform"
	"github.com/kjkrol/raymarch/internal/renderer"
	"github.com/kjkrol/raymarch/pkg/gfx"
	"github.com/kjkrol/raymarch/pkg/shader"
)

// cancel stops the program started last.
var (
	mu     sync.Mutex
	cancel context.CancelFunc
)

func main() {
	query := pageQuery()
	level, err := parseLevel(query.Get("log"))
	log := installLogger(os.Stderr, level)
	if err != nil {
		log.Warn("ignoring log parameter", "err", err)
	}

	js.Global().Set("runProgram", js.FuncOf(runProgram))

	if query.Get("autostart") != "0" {
		if err := autostart(query); err != nil {
			fail(log, err)
		}
	}
	select {}
}

// Page query parameters:
//
//	canvas     id of the canvas element (default "canvas")
//	vertex     URL of the vertex shader, fetched together with fragment
//	fragment   URL of the fragment shader
//	log        slog level name (default info)
//	autostart  "0" leaves starting to runProgram
func pageQuery() url.Values {
	search := js.Global().Get("location").Get("search").String()
	q, err := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if err != nil {
		return url.Values{}
	}
	return q
}

func autostart(query url.Values) error {
	wc := platform.DefaultWindowConfig()
	wc.Title = ""
	if id := query.Get("canvas"); id != "" {
		wc.CanvasID = id
	}

	rc := gfx.DefaultRendererConfig()
	vertex, fragment := query.Get("vertex"), query.Get("fragment")
	if vertex != "" || fragment != "" {
		src, err := fetchSources(vertex, fragment)
		if err != nil {
			return err
		}
		rc.Shaders = src
	}
	return start(wc, rc)
}

func fetchSources(vertex, fragment string) (shader.Sources, error) {
	if vertex == "" || fragment == "" {
		return shader.Sources{}, errors.New("both vertex and fragment shader URLs are required")
	}
	base := js.Global().Get("location").Get("href").String()
	vu, err := resolve(base, vertex)
	if err != nil {
		return shader.Sources{}, err
	}
	fu, err := resolve(base, fragment)
	if err != nil {
		return shader.Sources{}, err
	}
	return shader.Fetch(context.Background(), http.DefaultClient, vu, fu)
}

// runProgram(canvasId, [width, height], vertexSource, fragmentSource) is
// the entry point exported to the page. It returns null on success and the
// error message otherwise.
func runProgram(_ js.Value, args []js.Value) any {
	const usage = "runProgram: expected canvasId, [width, height], vertexSource, fragmentSource"
	if len(args) < 4 {
		return usage
	}
	for _, i := range []int{0, 2, 3} {
		if args[i].Type() != js.TypeString {
			return usage
		}
	}
	width, height, err := canvasSize(args[1])
	if err != nil {
		return "runProgram: " + err.Error()
	}

	wc := platform.DefaultWindowConfig()
	wc.Title = ""
	wc.CanvasID = args[0].String()
	wc.FullWindow = false
	wc.Width, wc.Height = width, height

	rc := gfx.DefaultRendererConfig()
	rc.Shaders = shader.Sources{Vertex: args[2].String(), Fragment: args[3].String()}

	if err := start(wc, rc); err != nil {
		gfx.Logger().Error("run program failed", "err", err)
		return err.Error()
	}
	return nil
}

// canvasSize reads a [width, height] pair without trusting the page.
func canvasSize(v js.Value) (width, height int, err error) {
	if !js.Global().Get("Array").Call("isArray", v).Bool() || v.Length() < 2 {
		return 0, 0, errors.New("canvas size must be a [width, height] array")
	}
	w, h := v.Index(0), v.Index(1)
	if w.Type() != js.TypeNumber || h.Type() != js.TypeNumber {
		return 0, 0, errors.New("canvas size must hold two numbers")
	}
	width, height = w.Int(), h.Int()
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	return width, height, nil
}

// start sets up a renderer on the canvas and schedules the frame loop,
// replacing any program started before.
func start(wc platform.WindowConfig, rc gfx.RendererConfig) error {
	log := gfx.Logger()

	canvas, err := platform.NewCanvas(wc)
	if err != nil {
		return fmt.Errorf("canvas %q: %w", wc.CanvasID, err)
	}
	dev, err := renderer.NewWebGL(canvas.Context())
	if err != nil {
		canvas.Close()
		return err
	}
	log.Info("webgl context acquired", "canvas", wc.CanvasID)

	r := gfx.NewRenderer(dev, rc)
	width, height := canvas.Size()
	if err := r.Start(width, height); err != nil {
		canvas.Close()
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	mu.Lock()
	if cancel != nil {
		cancel()
	}
	cancel = stop
	mu.Unlock()

	go func() {
		defer canvas.Close()
		log.Info("loop started", "width", width, "height", height)
		if err := finish(canvas.Run(ctx, r), r.Close); err != nil {
			log.Error("loop stopped", "err", err)
			return
		}
		log.Info("loop stopped")
	}()

	log.Info("Program completed.")
	return nil
}

func fail(log *slog.Logger, err error) {
	log.Error("fatal", "err", err)
	platform.Alert(err.Error())
}
