package geom

import "github.com/go-gl/mathgl/mgl64"

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeTypeSphere ShapeType = iota
	ShapeTypeBox
	ShapeTypeHyperplane
)

// Shape is implemented by all collision shapes. Shapes are structural
// value types in world coordinates, with no identity of their own.
type Shape interface {
	Type() ShapeType
	// Translated returns the shape moved by delta.
	Translated(delta mgl64.Vec4) Shape
}

// Center returns a representative point of a shape: the center for
// spheres and boxes, the projection of the origin for hyperplanes.
func Center(s Shape) mgl64.Vec4 {
	switch shape := s.(type) {
	case Sphere:
		return shape.Center
	case Box:
		return shape.Center()
	case Hyperplane:
		return shape.Normal.Mul(shape.Distance)
	}
	return mgl64.Vec4{}
}

// Sphere is a solid 4-ball defined by its center and radius.
type Sphere struct {
	Center mgl64.Vec4
	Radius float64
}

func (s Sphere) Type() ShapeType { return ShapeTypeSphere }

func (s Sphere) Translated(delta mgl64.Vec4) Shape {
	s.Center = s.Center.Add(delta)
	return s
}

// Box is an axis-aligned box given by its minimum and maximum corner on
// each of the four axes. Min must not exceed Max on any axis; inverted
// bounds are caller misuse and are not checked.
type Box struct {
	Min mgl64.Vec4
	Max mgl64.Vec4
}

func (b Box) Type() ShapeType { return ShapeTypeBox }

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec4 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// HalfExtents returns the half-size of the box on each axis.
func (b Box) HalfExtents() mgl64.Vec4 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

func (b Box) Translated(delta mgl64.Vec4) Shape {
	b.Min = b.Min.Add(delta)
	b.Max = b.Max.Add(delta)
	return b
}

// Overlaps checks if two boxes overlap, axis by axis.
func (b Box) Overlaps(other Box) bool {
	for i := 0; i < 4; i++ {
		if b.Max[i] < other.Min[i] || b.Min[i] > other.Max[i] {
			return false
		}
	}
	return true
}

// ContainsPoint checks if a point is inside the box.
func (b Box) ContainsPoint(point mgl64.Vec4) bool {
	for i := 0; i < 4; i++ {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Hyperplane is an infinite 3-flat defined by the equation
// Normal · p = Distance, where Normal must be unit length.
type Hyperplane struct {
	Normal   mgl64.Vec4
	Distance float64
}

func (p Hyperplane) Type() ShapeType { return ShapeTypeHyperplane }

func (p Hyperplane) Translated(delta mgl64.Vec4) Shape {
	p.Distance += p.Normal.Dot(delta)
	return p
}

// SignedDistance returns the signed distance from a point to the plane,
// positive on the side the normal points to.
func (p Hyperplane) SignedDistance(point mgl64.Vec4) float64 {
	return p.Normal.Dot(point) - p.Distance
}
