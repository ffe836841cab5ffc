//go:build !js

package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/raymarch/pkg/gfx"
	"github.com/kjkrol/raymarch/pkg/shader"
)

// GL implements gfx.Device on the current OpenGL 3.3 core context.
type GL struct {
	vao uint32
}

// NewGL loads the GL entry points for the context current on the calling
// thread. A core profile draws nothing without a bound vertex array object,
// so one is created and kept bound for the device's lifetime.
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", gfx.ErrNoContext, err)
	}
	d := &GL{}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d, nil
}

// Version reports the GL_VERSION string of the context.
func (d *GL) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Close deletes the vertex array object.
func (d *GL) Close() error {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	return d.Err()
}

func (d *GL) Dialect() shader.Dialect { return shader.Desktop }

func (d *GL) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *GL) CreateShader(stage shader.Stage, source string) (gfx.Object, error) {
	var shaderType uint32 = gl.VERTEX_SHADER
	if stage == shader.Fragment {
		shaderType = gl.FRAGMENT_SHADER
	}
	s := gl.CreateShader(shaderType)
	if s == 0 {
		return nil, &gfx.ShaderError{Stage: stage, Log: "unable to create shader object"}
	}
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(s, 1, csources, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(s, logLength, nil, gl.Str(log))
		gl.DeleteShader(s)
		return nil, &gfx.ShaderError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return s, nil
}

func (d *GL) DeleteShader(s gfx.Object) {
	gl.DeleteShader(s.(uint32))
}

func (d *GL) CreateProgram(shaders ...gfx.Object) (gfx.Object, error) {
	p := gl.CreateProgram()
	if p == 0 {
		return nil, &gfx.LinkError{Log: "unable to create program object"}
	}
	for _, s := range shaders {
		gl.AttachShader(p, s.(uint32))
	}
	gl.LinkProgram(p)

	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p, logLength, nil, gl.Str(log))
		gl.DeleteProgram(p)
		return nil, &gfx.LinkError{Log: strings.TrimRight(log, "\x00")}
	}
	return p, nil
}

func (d *GL) UseProgram(p gfx.Object) {
	gl.UseProgram(p.(uint32))
}

func (d *GL) DeleteProgram(p gfx.Object) {
	gl.DeleteProgram(p.(uint32))
}

func (d *GL) CreateBuffer() (gfx.Object, error) {
	var buf uint32
	gl.GenBuffers(1, &buf)
	if buf == 0 {
		return nil, fmt.Errorf("glGenBuffers returned no name")
	}
	return buf, nil
}

func target(t gfx.BufferTarget) uint32 {
	if t == gfx.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func (d *GL) BufferFloat32(t gfx.BufferTarget, buf gfx.Object, data []float32) {
	gl.BindBuffer(target(t), buf.(uint32))
	gl.BufferData(target(t), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *GL) BufferUint16(t gfx.BufferTarget, buf gfx.Object, data []uint16) {
	gl.BindBuffer(target(t), buf.(uint32))
	gl.BufferData(target(t), len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *GL) DeleteBuffer(buf gfx.Object) {
	b := buf.(uint32)
	gl.DeleteBuffers(1, &b)
}

func (d *GL) AttribLocation(p gfx.Object, name string) int {
	return int(gl.GetAttribLocation(p.(uint32), gl.Str(name+"\x00")))
}

func (d *GL) VertexAttribPointer(loc, size, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(loc), int32(size), gl.FLOAT, false, int32(stride), uintptr(offset))
}

func (d *GL) EnableVertexAttribArray(loc int) {
	gl.EnableVertexAttribArray(uint32(loc))
}

func (d *GL) UniformLocation(p gfx.Object, name string) (gfx.Location, bool) {
	loc := gl.GetUniformLocation(p.(uint32), gl.Str(name+"\x00"))
	if loc < 0 {
		return nil, false
	}
	return loc, true
}

func (d *GL) Uniform1f(l gfx.Location, v float32) {
	gl.Uniform1f(l.(int32), v)
}

func (d *GL) Uniform1i(l gfx.Location, v int32) {
	gl.Uniform1i(l.(int32), v)
}

func (d *GL) Uniform2f(l gfx.Location, v mgl32.Vec2) {
	gl.Uniform2f(l.(int32), v[0], v[1])
}

func (d *GL) Uniform3f(l gfx.Location, v mgl32.Vec3) {
	gl.Uniform3f(l.(int32), v[0], v[1], v[2])
}

func (d *GL) Uniform4f(l gfx.Location, v mgl32.Vec4) {
	gl.Uniform4f(l.(int32), v[0], v[1], v[2], v[3])
}

func (d *GL) UniformMatrix4(l gfx.Location, m mgl32.Mat4) {
	gl.UniformMatrix4fv(l.(int32), 1, false, &m[0])
}

func (d *GL) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (d *GL) Clear(mask gfx.ClearBit) {
	var bits uint32
	if mask&gfx.ColorBufferBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&gfx.DepthBufferBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (d *GL) DrawTriangles(count, offset int) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_SHORT, uintptr(offset))
}

func (d *GL) Err() error {
	return drainErrors(gl.GetError, gl.NO_ERROR)
}
