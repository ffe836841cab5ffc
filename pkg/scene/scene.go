// Package scene holds the fixed inputs of the raymarched scene: the shapes the
// fragment shader marches against, the raymarch camera, the background, and
// the world/view/projection transforms applied to the screen quad.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeCount is the length of the objects array declared by the fragment
// shader.
const ShapeCount = 2

// Kind selects the distance function used for a shape.
type Kind int32

const (
	Cube Kind = iota
	Sphere
)

func (k Kind) String() string {
	switch k {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	default:
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
}

func (k Kind) valid() bool {
	return k == Cube || k == Sphere
}

// Shape is a single record of the shader's objects array.
type Shape struct {
	Position mgl32.Vec3
	Size     mgl32.Vec3
	Color    mgl32.Vec4
	Kind     Kind
}

// Camera is the raymarch camera read by the fragment shader. FOV is in
// degrees.
type Camera struct {
	Eye  mgl32.Vec3
	Up   mgl32.Vec3
	FOV  float32
	Near float32
	Far  float32
}

// Projection parameterizes the mWorld/mView/mProj matrices applied to the
// screen quad by the vertex shader. FOV is in degrees.
type Projection struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
	FOV    float32
	Near   float32
	Far    float32
}

type Scene struct {
	Background mgl32.Vec3
	Camera     Camera
	Projection Projection
	Shapes     [ShapeCount]Shape
}

// Default returns the cube and sphere scene.
func Default() Scene {
	return Scene{
		Background: mgl32.Vec3{0.8, 0.8, 0.8},
		Camera: Camera{
			Eye:  mgl32.Vec3{8, 5, 7},
			Up:   mgl32.Vec3{0, 1, 0},
			FOV:  45,
			Near: 0.1,
			Far:  100,
		},
		Projection: Projection{
			Eye:    mgl32.Vec3{0, 0, -8},
			Center: mgl32.Vec3{0, 0, 0},
			Up:     mgl32.Vec3{0, 1, 0},
			FOV:    45,
			Near:   0.1,
			Far:    1000,
		},
		Shapes: [ShapeCount]Shape{
			{
				Position: mgl32.Vec3{-1.5, 0, 0},
				Size:     mgl32.Vec3{1, 1, 1},
				Color:    mgl32.Vec4{1, 0.65, 0, 1},
				Kind:     Cube,
			},
			{
				Position: mgl32.Vec3{1.5, 0, 0},
				Size:     mgl32.Vec3{1, 1, 1},
				Color:    mgl32.Vec4{0, 1, 0, 1},
				Kind:     Sphere,
			},
		},
	}
}

// ClearColor returns the background as an opaque RGBA color.
func (s *Scene) ClearColor() mgl32.Vec4 {
	return s.Background.Vec4(1)
}
