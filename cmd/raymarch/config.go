package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"go.uber.org/multierr"

	"github.com/kjkrol/raymarch/pkg/gfx"
)

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func installLogger(w io.Writer, level slog.Level) *slog.Logger {
	l := newLogger(w, level).With("app", "raymarch")
	gfx.SetLogger(l)
	return l
}

// isURL reports whether a shader location must be fetched over HTTP.
func isURL(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}

// resolve makes ref absolute against base, the page or working URL.
func resolve(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}

// finish combines the loop outcome with the error of releasing the
// renderer. A cancelled context is a normal stop.
func finish(runErr error, release func() error) error {
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	return multierr.Append(runErr, release())
}
