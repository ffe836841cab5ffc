package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transforms are the matrices uploaded as mWorld, mView and mProj.
type Transforms struct {
	World mgl32.Mat4
	View  mgl32.Mat4
	Proj  mgl32.Mat4
}

// Transforms computes the quad transforms for a canvas of the given size.
func (s *Scene) Transforms(width, height float32) Transforms {
	p := s.Projection
	return Transforms{
		World: mgl32.Ident4(),
		View:  mgl32.LookAtV(p.Eye, p.Center, p.Up),
		Proj:  mgl32.Perspective(mgl32.DegToRad(p.FOV), Aspect(width, height), p.Near, p.Far),
	}
}

// Aspect returns width/height, treating a collapsed height as one pixel so a
// minimized canvas never yields an infinite ratio.
func Aspect(width, height float32) float32 {
	return width / math32.Max(height, 1)
}
