package scene

// Quad is the single rectangle the fragment shader is evaluated over. It is
// centered on the origin and spans the canvas size in both axes.
type Quad struct {
	// X, Y pairs.
	Vertices [8]float32
	// Two counter-clockwise triangles.
	Indices [6]uint16
}

// VertexComponents is the number of floats per quad vertex.
const VertexComponents = 2

// NewQuad builds the quad for a canvas of the given size.
func NewQuad(width, height float32) Quad {
	hw := width / 2
	hh := height / 2
	return Quad{
		Vertices: [8]float32{
			-hw, -hh,
			hw, -hh,
			hw, hh,
			-hw, hh,
		},
		Indices: [6]uint16{
			0, 1, 2,
			0, 2, 3,
		},
	}
}
