package gfx

import (
	"errors"
	"fmt"

	"github.com/kjkrol/raymarch/pkg/shader"
)

// ErrNoContext is returned by hosts that cannot provide a GL context.
var ErrNoContext = errors.New("gfx: unable to get a rendering context")

// ShaderError reports a failed shader compilation.
type ShaderError struct {
	Stage shader.Stage
	Log   string
}

func (e *ShaderError) Error() string {
	log := e.Log
	if log == "" {
		log = "unknown error creating shader"
	}
	return fmt.Sprintf("compile %v shader: %s", e.Stage, log)
}

// LinkError reports a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	log := e.Log
	if log == "" {
		log = "unknown error linking program"
	}
	return "link program: " + log
}

// GLError is a value reported by glGetError.
type GLError uint32

const (
	InvalidEnum                 GLError = 0x0500
	InvalidValue                GLError = 0x0501
	InvalidOperation            GLError = 0x0502
	OutOfMemory                 GLError = 0x0505
	InvalidFramebufferOperation GLError = 0x0506
	ContextLost                 GLError = 0x9242
)

func (e GLError) Error() string {
	switch e {
	case InvalidEnum:
		return "gl: INVALID_ENUM"
	case InvalidValue:
		return "gl: INVALID_VALUE"
	case InvalidOperation:
		return "gl: INVALID_OPERATION"
	case OutOfMemory:
		return "gl: OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "gl: INVALID_FRAMEBUFFER_OPERATION"
	case ContextLost:
		return "gl: CONTEXT_LOST_WEBGL"
	default:
		return fmt.Sprintf("gl: error 0x%04x", uint32(e))
	}
}
