package gfx_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/raymarch/pkg/gfx"
	"github.com/kjkrol/raymarch/pkg/shader"
)

// fakeDevice records the GL calls made on it. Objects are small ints and
// uniform locations are the uniform names, so writes can be checked by name.
type fakeDevice struct {
	ops []string

	compileLog map[shader.Stage]string
	linkLog    string
	inactive   map[string]bool
	noAttrib   bool
	pending    []error

	next     int
	live     map[int]string
	sources  map[shader.Stage]string
	uniforms map[string]any
	lookups  map[string]int

	viewport  [4]int
	buffers   map[int][]any
	attrib    [3]int
	clear     gfx.ClearBit
	clearRGBA mgl32.Vec4
	draws     [][2]int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		compileLog: make(map[shader.Stage]string),
		inactive:   make(map[string]bool),
		live:       make(map[int]string),
		sources:    make(map[shader.Stage]string),
		uniforms:   make(map[string]any),
		lookups:    make(map[string]int),
		buffers:    make(map[int][]any),
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.ops = append(d.ops, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) object(kind string) int {
	d.next++
	d.live[d.next] = kind
	return d.next
}

func (d *fakeDevice) free(o gfx.Object) {
	delete(d.live, o.(int))
}

func (d *fakeDevice) Dialect() shader.Dialect { return shader.WebGL }

func (d *fakeDevice) Viewport(x, y, width, height int) {
	d.record("Viewport(%d,%d,%d,%d)", x, y, width, height)
	d.viewport = [4]int{x, y, width, height}
}

func (d *fakeDevice) CreateShader(stage shader.Stage, source string) (gfx.Object, error) {
	d.record("CreateShader(%v)", stage)
	d.sources[stage] = source
	if log, ok := d.compileLog[stage]; ok {
		return nil, &gfx.ShaderError{Stage: stage, Log: log}
	}
	return d.object("shader"), nil
}

func (d *fakeDevice) DeleteShader(s gfx.Object) {
	d.record("DeleteShader")
	d.free(s)
}

func (d *fakeDevice) CreateProgram(shaders ...gfx.Object) (gfx.Object, error) {
	d.record("CreateProgram(%d)", len(shaders))
	if d.linkLog != "" {
		return nil, &gfx.LinkError{Log: d.linkLog}
	}
	return d.object("program"), nil
}

func (d *fakeDevice) UseProgram(p gfx.Object) { d.record("UseProgram") }

func (d *fakeDevice) DeleteProgram(p gfx.Object) {
	d.record("DeleteProgram")
	d.free(p)
}

func (d *fakeDevice) CreateBuffer() (gfx.Object, error) {
	d.record("CreateBuffer")
	return d.object("buffer"), nil
}

func (d *fakeDevice) BufferFloat32(target gfx.BufferTarget, buf gfx.Object, data []float32) {
	d.record("BufferFloat32(%v)", target)
	vals := make([]any, len(data))
	for i, v := range data {
		vals[i] = v
	}
	d.buffers[buf.(int)] = vals
}

func (d *fakeDevice) BufferUint16(target gfx.BufferTarget, buf gfx.Object, data []uint16) {
	d.record("BufferUint16(%v)", target)
	vals := make([]any, len(data))
	for i, v := range data {
		vals[i] = v
	}
	d.buffers[buf.(int)] = vals
}

func (d *fakeDevice) DeleteBuffer(buf gfx.Object) {
	d.record("DeleteBuffer")
	d.free(buf)
}

func (d *fakeDevice) AttribLocation(p gfx.Object, name string) int {
	d.record("AttribLocation(%s)", name)
	if d.noAttrib {
		return -1
	}
	return 3
}

func (d *fakeDevice) VertexAttribPointer(loc, size, stride, offset int) {
	d.record("VertexAttribPointer")
	d.attrib = [3]int{size, stride, offset}
}

func (d *fakeDevice) EnableVertexAttribArray(loc int) {
	d.record("EnableVertexAttribArray(%d)", loc)
}

func (d *fakeDevice) UniformLocation(p gfx.Object, name string) (gfx.Location, bool) {
	d.lookups[name]++
	if d.inactive[name] {
		return nil, false
	}
	return name, true
}

func (d *fakeDevice) set(l gfx.Location, v any) {
	name := l.(string)
	d.record("Uniform(%s)", name)
	d.uniforms[name] = v
}

func (d *fakeDevice) Uniform1f(l gfx.Location, v float32)        { d.set(l, v) }
func (d *fakeDevice) Uniform1i(l gfx.Location, v int32)          { d.set(l, v) }
func (d *fakeDevice) Uniform2f(l gfx.Location, v mgl32.Vec2)     { d.set(l, v) }
func (d *fakeDevice) Uniform3f(l gfx.Location, v mgl32.Vec3)     { d.set(l, v) }
func (d *fakeDevice) Uniform4f(l gfx.Location, v mgl32.Vec4)     { d.set(l, v) }
func (d *fakeDevice) UniformMatrix4(l gfx.Location, m mgl32.Mat4) { d.set(l, m) }

func (d *fakeDevice) ClearColor(c mgl32.Vec4) {
	d.record("ClearColor")
	d.clearRGBA = c
}

func (d *fakeDevice) Clear(mask gfx.ClearBit) {
	d.record("Clear")
	d.clear = mask
}

func (d *fakeDevice) DrawTriangles(count, offset int) {
	d.record("DrawTriangles(%d,%d)", count, offset)
	d.draws = append(d.draws, [2]int{count, offset})
}

func (d *fakeDevice) Err() error {
	if len(d.pending) == 0 {
		return nil
	}
	err := d.pending[0]
	d.pending = d.pending[1:]
	return err
}

func (d *fakeDevice) index(op string) int {
	for i, o := range d.ops {
		if o == op {
			return i
		}
	}
	return -1
}

func (d *fakeDevice) liveKinds() []string {
	var kinds []string
	for _, k := range d.live {
		kinds = append(kinds, k)
	}
	return kinds
}
