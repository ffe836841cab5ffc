package shader

import "fmt"

// Names of the attributes and uniforms declared by the embedded shaders.
const (
	AttribPosition = "vertPosition"

	UniformResolution = "resolution"
	UniformBackground = "background_color"
	UniformFOV        = "fov"
	UniformEye        = "eye"
	UniformUp         = "up"
	UniformNear       = "near"
	UniformFar        = "far"
	UniformTime       = "time"

	UniformWorld = "mWorld"
	UniformView  = "mView"
	UniformProj  = "mProj"
)

// Fields of an element of the objects uniform array.
const (
	FieldPosition = "position"
	FieldSize     = "size"
	FieldColor    = "color"
	FieldShape    = "shape"
)

// ObjectUniform names field of the i-th element of the objects array.
func ObjectUniform(i int, field string) string {
	return fmt.Sprintf("objects[%d].%s", i, field)
}
