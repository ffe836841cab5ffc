package gfx

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/raymarch/pkg/shader"
)

// Object is a GL object owned by a Device: a js.Value under WebGL, a GL name
// under OpenGL.
type Object any

// Location is a uniform location returned by Device.UniformLocation.
type Location any

// BufferTarget specifies a buffer binding point.
type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

func (t BufferTarget) String() string {
	if t == ElementArrayBuffer {
		return "ELEMENT_ARRAY_BUFFER"
	}
	return "ARRAY_BUFFER"
}

type ClearBit uint8

const (
	ColorBufferBit ClearBit = 1 << iota
	DepthBufferBit
)

// Device is the slice of the GL API the renderer drives. Implementations
// wrap a current context and issue calls on it directly; none of the methods
// are safe for concurrent use.
type Device interface {
	// Dialect is the GLSL flavour CreateShader compiles.
	Dialect() shader.Dialect

	Viewport(x, y, width, height int)

	// CreateShader compiles source, returning a *ShaderError carrying the
	// info log on failure.
	CreateShader(stage shader.Stage, source string) (Object, error)
	DeleteShader(s Object)
	// CreateProgram attaches and links shaders, returning a *LinkError
	// carrying the info log on failure.
	CreateProgram(shaders ...Object) (Object, error)
	UseProgram(p Object)
	DeleteProgram(p Object)

	CreateBuffer() (Object, error)
	// BufferFloat32 and BufferUint16 bind buf to target and fill it with
	// STATIC_DRAW data. The buffer stays bound.
	BufferFloat32(target BufferTarget, buf Object, data []float32)
	BufferUint16(target BufferTarget, buf Object, data []uint16)
	DeleteBuffer(buf Object)

	// AttribLocation returns -1 when the program has no active attribute
	// of that name.
	AttribLocation(p Object, name string) int
	// VertexAttribPointer describes float, non-normalized attribute data in
	// the bound ARRAY_BUFFER. stride and offset are in bytes.
	VertexAttribPointer(loc, size, stride, offset int)
	EnableVertexAttribArray(loc int)

	// UniformLocation reports false when name is not an active uniform of
	// the program, e.g. after the driver optimized it away.
	UniformLocation(p Object, name string) (Location, bool)
	Uniform1f(l Location, v float32)
	Uniform1i(l Location, v int32)
	Uniform2f(l Location, v mgl32.Vec2)
	Uniform3f(l Location, v mgl32.Vec3)
	Uniform4f(l Location, v mgl32.Vec4)
	UniformMatrix4(l Location, m mgl32.Mat4)

	ClearColor(c mgl32.Vec4)
	Clear(mask ClearBit)
	// DrawTriangles issues an indexed draw of count UNSIGNED_SHORT indices
	// from the bound ELEMENT_ARRAY_BUFFER, starting at offset bytes.
	DrawTriangles(count, offset int)

	// Err drains the context's pending error flags. It returns nil when no
	// error was recorded since the previous call.
	Err() error
}
