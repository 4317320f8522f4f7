package geom

import "github.com/go-gl/mathgl/mgl64"

// Ray is a half-line in 4-space, starting at Origin and extending along
// the unit-length Direction. Immutable once built.
type Ray struct {
	Origin    mgl64.Vec4
	Direction mgl64.Vec4
}

// NewRay builds a ray from an origin and a direction. The direction is
// normalized here; passing a zero-length direction is caller misuse and
// is not checked.
func NewRay(origin, direction mgl64.Vec4) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// PointAt evaluates the position at parameter t along the ray.
func (r Ray) PointAt(t float64) mgl64.Vec4 {
	return r.Origin.Add(r.Direction.Mul(t))
}
