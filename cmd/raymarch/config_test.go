package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/kjkrol/raymarch/pkg/gfx"
)

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = parseLevel("loud")
	assert.ErrorContains(t, err, `log level "loud"`)
}

func TestInstallLogger(t *testing.T) {
	t.Cleanup(func() { gfx.SetLogger(nil) })

	var buf bytes.Buffer
	installLogger(&buf, slog.LevelWarn)

	gfx.Logger().Info("hidden")
	gfx.Logger().Warn("uniform not active in program", "name", "time")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "app=raymarch")
	assert.Contains(t, out, "name=time")
}

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("http://localhost:8080/vertex.glsl"))
	assert.True(t, isURL("https://example.com/fragment.glsl"))
	assert.False(t, isURL("web/vertex.glsl"))
	assert.False(t, isURL(""))
}

func TestResolve(t *testing.T) {
	got, err := resolve("http://localhost:8080/index.html?log=debug", "shaders/vertex.glsl")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/shaders/vertex.glsl", got)

	got, err = resolve("http://localhost:8080/", "https://cdn.example.com/fragment.glsl")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/fragment.glsl", got)
}

func TestFinish(t *testing.T) {
	released := 0
	release := func() error {
		released++
		return nil
	}
	assert.NoError(t, finish(nil, release))
	assert.NoError(t, finish(context.Canceled, release))
	assert.Equal(t, 2, released)

	lost := errors.New("webgl context lost")
	assert.Same(t, lost, finish(lost, release))
}

func TestFinish_KeepsReleaseError(t *testing.T) {
	lost := errors.New("webgl context lost")
	leaked := errors.New("gl: INVALID_OPERATION")
	release := func() error { return leaked }

	err := finish(lost, release)
	assert.ErrorIs(t, err, lost)
	assert.ErrorIs(t, err, leaked)
	assert.Len(t, multierr.Errors(err), 2)

	assert.Same(t, leaked, finish(context.Canceled, release))
}
