// Package shader provides the GLSL sources of the raymarched scene and
// adapts them to the GLSL dialect of the device that compiles them.
//
// The embedded sources are written against a small set of macros rather than
// a fixed GLSL version:
//   - ATTRIBUTE: vertex input qualifier
//   - FRAG_COLOR: fragment output variable
//
// Build prepends the header that defines them for a Dialect.
package shader

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed glsl/vertex.glsl
var defaultVertex string

//go:embed glsl/fragment.glsl
var defaultFragment string

type Stage uint8

const (
	Vertex Stage = iota + 1
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// Sources pairs the vertex and fragment shader bodies of one program.
type Sources struct {
	Vertex   string
	Fragment string
}

// Default returns the embedded raymarching shaders.
func Default() Sources {
	return Sources{Vertex: defaultVertex, Fragment: defaultFragment}
}

// Source returns the body for the given stage.
func (s Sources) Source(stage Stage) string {
	if stage == Vertex {
		return s.Vertex
	}
	return s.Fragment
}

// Dialect is the GLSL flavour accepted by a device.
type Dialect uint8

const (
	// GLSL ES 1.00, as accepted by a WebGL 1 context.
	WebGL Dialect = iota
	// GLSL 3.30 core, as accepted by an OpenGL 3.3 core profile context.
	Desktop
)

func (d Dialect) String() string {
	switch d {
	case WebGL:
		return "webgl"
	case Desktop:
		return "desktop"
	default:
		return fmt.Sprintf("Dialect(%d)", uint8(d))
	}
}

// Header returns the preamble Build places ahead of a shader body.
func (d Dialect) Header(stage Stage) string {
	var sb strings.Builder
	switch d {
	case Desktop:
		sb.WriteString("#version 330 core\n")
		if stage == Vertex {
			sb.WriteString("#define ATTRIBUTE in\n")
		} else {
			sb.WriteString("out vec4 fragColor;\n")
			sb.WriteString("#define FRAG_COLOR fragColor\n")
		}
	default:
		sb.WriteString("precision highp float;\n")
		sb.WriteString("precision highp int;\n")
		sb.WriteString("#define ATTRIBUTE attribute\n")
		sb.WriteString("#define FRAG_COLOR gl_FragColor\n")
	}
	return sb.String()
}

// Build prepares body for compilation in dialect d. Sources that already
// declare a #version are complete programs and are returned untouched.
func Build(d Dialect, stage Stage, body string) string {
	if strings.HasPrefix(strings.TrimSpace(body), "#version") {
		return body
	}
	var sb strings.Builder
	sb.WriteString(d.Header(stage))
	sb.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}
