package gfx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/raymarch/pkg/gfx"
	"github.com/kjkrol/raymarch/pkg/shader"
)

func TestShaderError(t *testing.T) {
	err := &gfx.ShaderError{Stage: shader.Vertex, Log: "ERROR: 0:1: 'foo' : undeclared identifier"}
	assert.Equal(t, "compile vertex shader: ERROR: 0:1: 'foo' : undeclared identifier", err.Error())

	empty := &gfx.ShaderError{Stage: shader.Fragment}
	assert.Equal(t, "compile fragment shader: unknown error creating shader", empty.Error())
}

func TestLinkError(t *testing.T) {
	assert.Equal(t, "link program: unknown error linking program", (&gfx.LinkError{}).Error())
}

func TestGLError(t *testing.T) {
	assert.Equal(t, "gl: INVALID_ENUM", gfx.InvalidEnum.Error())
	assert.Equal(t, "gl: OUT_OF_MEMORY", gfx.OutOfMemory.Error())
	assert.Equal(t, "gl: error 0x1234", gfx.GLError(0x1234).Error())

	wrapped := fmt.Errorf("draw: %w", gfx.InvalidValue)
	assert.True(t, errors.Is(wrapped, gfx.InvalidValue))
}

func TestBufferTarget_String(t *testing.T) {
	assert.Equal(t, "ARRAY_BUFFER", gfx.ArrayBuffer.String())
	assert.Equal(t, "ELEMENT_ARRAY_BUFFER", gfx.ElementArrayBuffer.String())
}
