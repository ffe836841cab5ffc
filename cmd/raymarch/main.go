//go:build !js

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/kjkrol/raymarch/internal/platform"
	"github.com/kjkrol/raymarch/internal/renderer"
	"github.com/kjkrol/raymarch/pkg/gfx"
	"github.com/kjkrol/raymarch/pkg/shader"
)

func init() {
	// GLFW and the GL context belong to the main thread.
	runtime.LockOSThread()
}

func main() {
	wc := platform.DefaultWindowConfig()
	rc := gfx.DefaultRendererConfig()

	var (
		vertex   string
		fragment string
		logLevel string
	)
	flag.IntVar(&wc.Width, "width", wc.Width, "window width")
	flag.IntVar(&wc.Height, "height", wc.Height, "window height")
	flag.StringVar(&wc.Title, "title", wc.Title, "window title")
	flag.IntVar(&wc.SwapInterval, "swap-interval", wc.SwapInterval, "buffer swap interval, 0 disables vsync")
	flag.StringVar(&vertex, "vertex", "", "vertex shader file or http(s) URL (default embedded)")
	flag.StringVar(&fragment, "fragment", "", "fragment shader file or http(s) URL (default embedded)")
	flag.IntVar(&rc.StatsEvery, "stats-every", rc.StatsEvery, "log frame statistics every n frames, 0 disables")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	level, err := parseLevel(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := installLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if vertex != "" || fragment != "" {
		src, err := loadSources(ctx, vertex, fragment)
		if err != nil {
			log.Error("loading shaders", "err", err)
			os.Exit(1)
		}
		rc.Shaders = src
	}

	if err := run(ctx, wc, rc); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func loadSources(ctx context.Context, vertex, fragment string) (shader.Sources, error) {
	if vertex == "" || fragment == "" {
		return shader.Sources{}, errors.New("both -vertex and -fragment are required")
	}
	if isURL(vertex) && isURL(fragment) {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return shader.Fetch(ctx, nil, vertex, fragment)
	}
	vs, err := os.ReadFile(vertex)
	if err != nil {
		return shader.Sources{}, err
	}
	fs, err := os.ReadFile(fragment)
	if err != nil {
		return shader.Sources{}, err
	}
	return shader.Sources{Vertex: string(vs), Fragment: string(fs)}, nil
}

func run(ctx context.Context, wc platform.WindowConfig, rc gfx.RendererConfig) (err error) {
	log := gfx.Logger()

	win, err := platform.NewGLFWWindow(wc)
	if err != nil {
		return err
	}
	defer win.Close()

	dev, err := renderer.NewGL()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	log.Info("gl context acquired", "version", dev.Version())

	r := gfx.NewRenderer(dev, rc)
	width, height := win.Size()
	if err := r.Start(width, height); err != nil {
		return err
	}
	log.Info("Program completed.")

	log.Info("loop started", "width", width, "height", height)
	err = finish(win.Run(ctx, r), r.Close)
	log.Info("loop stopped")
	return err
}
