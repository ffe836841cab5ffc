package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
)

// Validate reports every problem found in the scene, not only the first.
func (s *Scene) Validate() error {
	var err error
	err = multierr.Append(err, validateColor("background", s.Background.Vec4(1)))
	err = multierr.Append(err, validateCamera(s.Camera))
	err = multierr.Append(err, validateProjection(s.Projection))
	for i, shape := range s.Shapes {
		err = multierr.Append(err, validateShape(i, shape))
	}
	return err
}

func validateCamera(c Camera) error {
	var err error
	err = multierr.Append(err, validateFrustum("camera", c.FOV, c.Near, c.Far))
	if c.Up.Len() == 0 {
		err = multierr.Append(err, fmt.Errorf("camera: up vector is zero"))
	}
	return err
}

func validateProjection(p Projection) error {
	var err error
	err = multierr.Append(err, validateFrustum("projection", p.FOV, p.Near, p.Far))
	if p.Up.Len() == 0 {
		err = multierr.Append(err, fmt.Errorf("projection: up vector is zero"))
	}
	if p.Eye.ApproxEqual(p.Center) {
		err = multierr.Append(err, fmt.Errorf("projection: eye and center coincide at %v", p.Eye))
	}
	return err
}

func validateFrustum(what string, fov, near, far float32) error {
	var err error
	if fov <= 0 || fov >= 180 {
		err = multierr.Append(err, fmt.Errorf("%s: fov %v outside (0, 180) degrees", what, fov))
	}
	if near <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s: near plane %v must be positive", what, near))
	}
	if far <= near {
		err = multierr.Append(err, fmt.Errorf("%s: far plane %v must lie beyond near plane %v", what, far, near))
	}
	return err
}

func validateShape(i int, s Shape) error {
	var err error
	if !s.Kind.valid() {
		err = multierr.Append(err, fmt.Errorf("shape %d: unknown kind %v", i, s.Kind))
	}
	for axis, v := range s.Size {
		if v <= 0 {
			err = multierr.Append(err, fmt.Errorf("shape %d: size[%d] = %v must be positive", i, axis, v))
		}
	}
	err = multierr.Append(err, validateColor(fmt.Sprintf("shape %d", i), s.Color))
	return err
}

func validateColor(what string, c mgl32.Vec4) error {
	for ch, v := range c {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s: color channel %d = %v outside [0, 1]", what, ch, v)
		}
	}
	return nil
}
