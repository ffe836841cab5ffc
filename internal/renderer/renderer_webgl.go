//go:build js && wasm

package renderer

import (
	"syscall/js"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/raymarch/pkg/gfx"
	"github.com/kjkrol/raymarch/pkg/shader"
)

// WebGL implements gfx.Device on a WebGLRenderingContext.
type WebGL struct {
	gl     js.Value
	consts glConsts
}

type glConsts struct {
	arrayBuffer        int
	elementArrayBuffer int
	staticDraw         int
	floatType          int
	unsignedShort      int
	triangles          int
	colorBufferBit     int
	depthBufferBit     int
	compileStatus      int
	linkStatus         int
	vertexShader       int
	fragmentShader     int
	noError            int
}

// NewWebGL wraps a context obtained from canvas.getContext.
func NewWebGL(gl js.Value) (*WebGL, error) {
	if gl.IsUndefined() || gl.IsNull() {
		return nil, gfx.ErrNoContext
	}
	d := &WebGL{gl: gl}
	d.initConsts()
	return d, nil
}

func (d *WebGL) initConsts() {
	d.consts = glConsts{
		arrayBuffer:        d.gl.Get("ARRAY_BUFFER").Int(),
		elementArrayBuffer: d.gl.Get("ELEMENT_ARRAY_BUFFER").Int(),
		staticDraw:         d.gl.Get("STATIC_DRAW").Int(),
		floatType:          d.gl.Get("FLOAT").Int(),
		unsignedShort:      d.gl.Get("UNSIGNED_SHORT").Int(),
		triangles:          d.gl.Get("TRIANGLES").Int(),
		colorBufferBit:     d.gl.Get("COLOR_BUFFER_BIT").Int(),
		depthBufferBit:     d.gl.Get("DEPTH_BUFFER_BIT").Int(),
		compileStatus:      d.gl.Get("COMPILE_STATUS").Int(),
		linkStatus:         d.gl.Get("LINK_STATUS").Int(),
		vertexShader:       d.gl.Get("VERTEX_SHADER").Int(),
		fragmentShader:     d.gl.Get("FRAGMENT_SHADER").Int(),
		noError:            d.gl.Get("NO_ERROR").Int(),
	}
}

func (d *WebGL) Dialect() shader.Dialect { return shader.WebGL }

func (d *WebGL) Viewport(x, y, width, height int) {
	d.gl.Call("viewport", x, y, width, height)
}

func (d *WebGL) CreateShader(stage shader.Stage, source string) (gfx.Object, error) {
	shaderType := d.consts.vertexShader
	if stage == shader.Fragment {
		shaderType = d.consts.fragmentShader
	}
	s := d.gl.Call("createShader", shaderType)
	if !s.Truthy() {
		return nil, &gfx.ShaderError{Stage: stage, Log: "unable to create shader object"}
	}
	d.gl.Call("shaderSource", s, source)
	d.gl.Call("compileShader", s)
	if !d.gl.Call("getShaderParameter", s, d.consts.compileStatus).Truthy() {
		log := d.gl.Call("getShaderInfoLog", s)
		d.gl.Call("deleteShader", s)
		return nil, &gfx.ShaderError{Stage: stage, Log: jsString(log)}
	}
	return s, nil
}

func (d *WebGL) DeleteShader(s gfx.Object) {
	d.gl.Call("deleteShader", s.(js.Value))
}

func (d *WebGL) CreateProgram(shaders ...gfx.Object) (gfx.Object, error) {
	p := d.gl.Call("createProgram")
	if !p.Truthy() {
		return nil, &gfx.LinkError{Log: "unable to create program object"}
	}
	for _, s := range shaders {
		d.gl.Call("attachShader", p, s.(js.Value))
	}
	d.gl.Call("linkProgram", p)
	if !d.gl.Call("getProgramParameter", p, d.consts.linkStatus).Truthy() {
		log := d.gl.Call("getProgramInfoLog", p)
		d.gl.Call("deleteProgram", p)
		return nil, &gfx.LinkError{Log: jsString(log)}
	}
	return p, nil
}

func (d *WebGL) UseProgram(p gfx.Object) {
	d.gl.Call("useProgram", p.(js.Value))
}

func (d *WebGL) DeleteProgram(p gfx.Object) {
	d.gl.Call("deleteProgram", p.(js.Value))
}

func (d *WebGL) CreateBuffer() (gfx.Object, error) {
	buf := d.gl.Call("createBuffer")
	if !buf.Truthy() {
		return nil, gfx.ErrNoContext
	}
	return buf, nil
}

func (d *WebGL) target(t gfx.BufferTarget) int {
	if t == gfx.ElementArrayBuffer {
		return d.consts.elementArrayBuffer
	}
	return d.consts.arrayBuffer
}

func (d *WebGL) BufferFloat32(target gfx.BufferTarget, buf gfx.Object, data []float32) {
	t := d.target(target)
	d.gl.Call("bindBuffer", t, buf.(js.Value))
	d.gl.Call("bufferData", t, float32Array(data), d.consts.staticDraw)
}

func (d *WebGL) BufferUint16(target gfx.BufferTarget, buf gfx.Object, data []uint16) {
	t := d.target(target)
	d.gl.Call("bindBuffer", t, buf.(js.Value))
	d.gl.Call("bufferData", t, uint16Array(data), d.consts.staticDraw)
}

func (d *WebGL) DeleteBuffer(buf gfx.Object) {
	d.gl.Call("deleteBuffer", buf.(js.Value))
}

func (d *WebGL) AttribLocation(p gfx.Object, name string) int {
	return d.gl.Call("getAttribLocation", p.(js.Value), name).Int()
}

func (d *WebGL) VertexAttribPointer(loc, size, stride, offset int) {
	d.gl.Call("vertexAttribPointer", loc, size, d.consts.floatType, false, stride, offset)
}

func (d *WebGL) EnableVertexAttribArray(loc int) {
	d.gl.Call("enableVertexAttribArray", loc)
}

func (d *WebGL) UniformLocation(p gfx.Object, name string) (gfx.Location, bool) {
	loc := d.gl.Call("getUniformLocation", p.(js.Value), name)
	if loc.IsNull() || loc.IsUndefined() {
		return nil, false
	}
	return loc, true
}

func (d *WebGL) Uniform1f(l gfx.Location, v float32) {
	d.gl.Call("uniform1f", l.(js.Value), v)
}

func (d *WebGL) Uniform1i(l gfx.Location, v int32) {
	d.gl.Call("uniform1i", l.(js.Value), v)
}

func (d *WebGL) Uniform2f(l gfx.Location, v mgl32.Vec2) {
	d.gl.Call("uniform2f", l.(js.Value), v[0], v[1])
}

func (d *WebGL) Uniform3f(l gfx.Location, v mgl32.Vec3) {
	d.gl.Call("uniform3f", l.(js.Value), v[0], v[1], v[2])
}

func (d *WebGL) Uniform4f(l gfx.Location, v mgl32.Vec4) {
	d.gl.Call("uniform4f", l.(js.Value), v[0], v[1], v[2], v[3])
}

func (d *WebGL) UniformMatrix4(l gfx.Location, m mgl32.Mat4) {
	d.gl.Call("uniformMatrix4fv", l.(js.Value), false, float32Array(m[:]))
}

func (d *WebGL) ClearColor(c mgl32.Vec4) {
	d.gl.Call("clearColor", c[0], c[1], c[2], c[3])
}

func (d *WebGL) Clear(mask gfx.ClearBit) {
	var bits int
	if mask&gfx.ColorBufferBit != 0 {
		bits |= d.consts.colorBufferBit
	}
	if mask&gfx.DepthBufferBit != 0 {
		bits |= d.consts.depthBufferBit
	}
	d.gl.Call("clear", bits)
}

func (d *WebGL) DrawTriangles(count, offset int) {
	d.gl.Call("drawElements", d.consts.triangles, count, d.consts.unsignedShort, offset)
}

func (d *WebGL) Err() error {
	return drainErrors(func() uint32 {
		return uint32(d.gl.Call("getError").Int())
	}, uint32(d.consts.noError))
}

func jsString(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
