package gfx

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/raymarch/pkg/scene"
	"github.com/kjkrol/raymarch/pkg/shader"
)

const float32Size = 4

// Renderer draws the raymarched scene on a Device. Setup issues the one-time
// GL call sequence; Frame is called once per animation frame afterwards.
type Renderer struct {
	dev  Device
	conf RendererConfig
	log  *slog.Logger

	program      Object
	vertexBuffer Object
	indexBuffer  Object
	indexCount   int

	width, height int

	locations map[string]Location
	inactive  map[string]struct{}

	stats *FrameStats
	last  time.Duration
	ready bool
	// waiting is set by Start until the surface reports a usable size.
	waiting bool
}

func NewRenderer(dev Device, conf RendererConfig) *Renderer {
	r := &Renderer{
		dev:       dev,
		conf:      conf,
		log:       Logger(),
		locations: make(map[string]Location),
		inactive:  make(map[string]struct{}),
	}
	if conf.StatsEvery > 0 {
		r.stats = NewFrameStats(conf.StatsWindow)
	}
	return r
}

// Setup sets the viewport, builds the program, uploads the quad and writes
// every uniform for a canvas of the given size. On failure the objects
// created so far are released.
func (r *Renderer) Setup(width, height int) error {
	if r.ready {
		return errors.New("gfx: renderer already set up")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gfx: invalid canvas size %dx%d", width, height)
	}
	if err := r.conf.Scene.Validate(); err != nil {
		return fmt.Errorf("gfx: invalid scene: %w", err)
	}
	r.width, r.height = width, height
	r.waiting = false

	r.dev.Viewport(0, 0, width, height)
	if err := r.setupShaders(); err != nil {
		r.release()
		return err
	}
	if err := r.setupVertices(); err != nil {
		r.release()
		return err
	}
	r.setupUniforms()
	r.setupShapes()
	r.setupTransforms()

	if err := r.dev.Err(); err != nil {
		r.release()
		return fmt.Errorf("gfx: setup: %w", err)
	}
	r.ready = true
	r.log.Info("renderer ready", "width", width, "height", height, "dialect", r.dev.Dialect())
	return nil
}

// Start is Setup for surfaces that may still be empty, such as a canvas in
// a hidden frame. With a zero size the setup is postponed to the first
// Resize reporting a usable one; the scene is still checked right away.
func (r *Renderer) Start(width, height int) error {
	if width > 0 && height > 0 {
		return r.Setup(width, height)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("gfx: invalid canvas size %dx%d", width, height)
	}
	if r.ready {
		return errors.New("gfx: renderer already set up")
	}
	if err := r.conf.Scene.Validate(); err != nil {
		return fmt.Errorf("gfx: invalid scene: %w", err)
	}
	r.waiting = true
	r.log.Info("renderer waiting for a non-empty surface", "width", width, "height", height)
	return nil
}

func (r *Renderer) setupShaders() error {
	dialect := r.dev.Dialect()
	shaders := make([]Object, 0, 2)
	defer func() {
		for _, s := range shaders {
			r.dev.DeleteShader(s)
		}
	}()
	for _, stage := range []shader.Stage{shader.Vertex, shader.Fragment} {
		s, err := r.dev.CreateShader(stage, shader.Build(dialect, stage, r.conf.Shaders.Source(stage)))
		if err != nil {
			return err
		}
		shaders = append(shaders, s)
	}

	prog, err := r.dev.CreateProgram(shaders...)
	if err != nil {
		return err
	}
	r.program = prog
	r.dev.UseProgram(prog)
	r.log.Debug("program linked", "dialect", dialect)
	return nil
}

func (r *Renderer) setupVertices() error {
	quad := scene.NewQuad(float32(r.width), float32(r.height))

	vb, err := r.dev.CreateBuffer()
	if err != nil {
		return fmt.Errorf("gfx: vertex buffer: %w", err)
	}
	r.vertexBuffer = vb
	r.dev.BufferFloat32(ArrayBuffer, vb, quad.Vertices[:])

	// The index buffer goes last so it stays bound for DrawTriangles.
	ib, err := r.dev.CreateBuffer()
	if err != nil {
		return fmt.Errorf("gfx: index buffer: %w", err)
	}
	r.indexBuffer = ib
	r.dev.BufferUint16(ElementArrayBuffer, ib, quad.Indices[:])
	r.indexCount = len(quad.Indices)

	loc := r.dev.AttribLocation(r.program, shader.AttribPosition)
	if loc < 0 {
		return fmt.Errorf("gfx: no active attribute %q", shader.AttribPosition)
	}
	r.dev.VertexAttribPointer(loc, scene.VertexComponents, scene.VertexComponents*float32Size, 0)
	r.dev.EnableVertexAttribArray(loc)
	r.log.Debug("quad uploaded", "vertices", len(quad.Vertices)/scene.VertexComponents, "indices", r.indexCount)
	return nil
}

func (r *Renderer) setupUniforms() {
	sc := &r.conf.Scene
	r.uniform2f(shader.UniformResolution, mgl32.Vec2{float32(r.width), float32(r.height)})
	r.uniform3f(shader.UniformBackground, sc.Background)
	r.uniform1f(shader.UniformFOV, sc.Camera.FOV)
	r.uniform3f(shader.UniformEye, sc.Camera.Eye)
	r.uniform3f(shader.UniformUp, sc.Camera.Up)
	r.uniform1f(shader.UniformNear, sc.Camera.Near)
	r.uniform1f(shader.UniformFar, sc.Camera.Far)
	r.uniform1f(shader.UniformTime, 0)
}

func (r *Renderer) setupShapes() {
	for i, s := range r.conf.Scene.Shapes {
		r.uniform3f(shader.ObjectUniform(i, shader.FieldPosition), s.Position)
		r.uniform3f(shader.ObjectUniform(i, shader.FieldSize), s.Size)
		r.uniform4f(shader.ObjectUniform(i, shader.FieldColor), s.Color)
		r.uniform1i(shader.ObjectUniform(i, shader.FieldShape), int32(s.Kind))
	}
}

func (r *Renderer) setupTransforms() {
	tr := r.conf.Scene.Transforms(float32(r.width), float32(r.height))
	r.uniformMatrix4(shader.UniformWorld, tr.World)
	r.uniformMatrix4(shader.UniformView, tr.View)
	r.uniformMatrix4(shader.UniformProj, tr.Proj)
}

// Frame draws one frame. elapsed is the time since the loop started.
func (r *Renderer) Frame(elapsed time.Duration) {
	if !r.ready {
		return
	}
	r.collect(elapsed)

	r.uniform1f(shader.UniformTime, float32(elapsed.Seconds()))
	r.dev.ClearColor(r.conf.Scene.ClearColor())
	r.dev.Clear(ColorBufferBit | DepthBufferBit)
	r.dev.DrawTriangles(r.indexCount, 0)
}

func (r *Renderer) collect(elapsed time.Duration) {
	if r.stats == nil {
		return
	}
	d := elapsed - r.last
	r.last = elapsed
	if d <= 0 {
		return
	}
	r.stats.Collect(d)
	if r.stats.Frames()%uint64(r.conf.StatsEvery) == 0 {
		r.log.Debug("frame stats", "frames", r.stats.Frames(), "fps", r.stats.FPS(), "avg", r.stats.Average())
	}
}

// Resize follows a canvas size change: viewport, quad, resolution and
// projection are updated in place.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.waiting {
		r.waiting = false
		if err := r.Setup(width, height); err != nil {
			r.log.Error("postponed setup failed", "err", err)
		}
		return
	}
	if !r.ready {
		return
	}
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height

	r.dev.Viewport(0, 0, width, height)
	quad := scene.NewQuad(float32(width), float32(height))
	r.dev.BufferFloat32(ArrayBuffer, r.vertexBuffer, quad.Vertices[:])
	r.uniform2f(shader.UniformResolution, mgl32.Vec2{float32(width), float32(height)})
	r.uniformMatrix4(shader.UniformProj, r.conf.Scene.Transforms(float32(width), float32(height)).Proj)
	r.log.Debug("renderer resized", "width", width, "height", height)
}

// Size is the canvas size the renderer currently draws for.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Stats returns the frame statistics, or nil when disabled.
func (r *Renderer) Stats() *FrameStats {
	return r.stats
}

// Close deletes the GL objects owned by the renderer and reports any error
// the context recorded meanwhile.
func (r *Renderer) Close() error {
	if !r.ready {
		return nil
	}
	r.release()
	r.ready = false
	if err := r.dev.Err(); err != nil {
		r.log.Warn("release failed", "err", err)
		return fmt.Errorf("gfx: release: %w", err)
	}
	return nil
}

func (r *Renderer) release() {
	if r.indexBuffer != nil {
		r.dev.DeleteBuffer(r.indexBuffer)
		r.indexBuffer = nil
	}
	if r.vertexBuffer != nil {
		r.dev.DeleteBuffer(r.vertexBuffer)
		r.vertexBuffer = nil
	}
	if r.program != nil {
		r.dev.DeleteProgram(r.program)
		r.program = nil
	}
	clear(r.locations)
	clear(r.inactive)
}

func (r *Renderer) location(name string) (Location, bool) {
	if loc, ok := r.locations[name]; ok {
		return loc, true
	}
	if _, ok := r.inactive[name]; ok {
		return nil, false
	}
	loc, ok := r.dev.UniformLocation(r.program, name)
	if !ok {
		r.inactive[name] = struct{}{}
		r.log.Warn("uniform not active in program", "name", name)
		return nil, false
	}
	r.locations[name] = loc
	return loc, true
}

func (r *Renderer) uniform1f(name string, v float32) {
	if loc, ok := r.location(name); ok {
		r.dev.Uniform1f(loc, v)
	}
}

func (r *Renderer) uniform1i(name string, v int32) {
	if loc, ok := r.location(name); ok {
		r.dev.Uniform1i(loc, v)
	}
}

func (r *Renderer) uniform2f(name string, v mgl32.Vec2) {
	if loc, ok := r.location(name); ok {
		r.dev.Uniform2f(loc, v)
	}
}

func (r *Renderer) uniform3f(name string, v mgl32.Vec3) {
	if loc, ok := r.location(name); ok {
		r.dev.Uniform3f(loc, v)
	}
}

func (r *Renderer) uniform4f(name string, v mgl32.Vec4) {
	if loc, ok := r.location(name); ok {
		r.dev.Uniform4f(loc, v)
	}
}

func (r *Renderer) uniformMatrix4(name string, m mgl32.Mat4) {
	if loc, ok := r.location(name); ok {
		r.dev.UniformMatrix4(loc, m)
	}
}
