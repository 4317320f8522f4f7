package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Contact describes one geometric overlap between two shapes. The
// normal points from the first shape toward the second, Depth is the
// penetration along it.
type Contact struct {
	Point  mgl64.Vec4
	Normal mgl64.Vec4
	Depth  float64
}

func (c Contact) flip() Contact {
	c.Normal = c.Normal.Mul(-1)
	return c
}

// Overlap dispatches the overlap test matching the shape variants. Two
// hyperplanes never report a contact; that pairing carries no useful
// contact information here.
func Overlap(a, b Shape) (Contact, bool) {
	switch sa := a.(type) {
	case Sphere:
		switch sb := b.(type) {
		case Sphere:
			return sphereVsSphere(sa, sb)
		case Box:
			return sphereVsBox(sa, sb)
		case Hyperplane:
			return sphereVsHyperplane(sa, sb)
		}
	case Box:
		switch sb := b.(type) {
		case Sphere:
			contact, ok := sphereVsBox(sb, sa)
			return contact.flip(), ok
		case Box:
			return boxVsBox(sa, sb)
		case Hyperplane:
			return boxVsHyperplane(sa, sb)
		}
	case Hyperplane:
		switch sb := b.(type) {
		case Sphere:
			contact, ok := sphereVsHyperplane(sb, sa)
			return contact.flip(), ok
		case Box:
			contact, ok := boxVsHyperplane(sb, sa)
			return contact.flip(), ok
		}
	}
	return Contact{}, false
}

func sphereVsSphere(a, b Sphere) (Contact, bool) {
	delta := b.Center.Sub(a.Center)
	distance := delta.Len()
	sum := a.Radius + b.Radius

	if distance > sum {
		return Contact{}, false
	}

	normal := mgl64.Vec4{1, 0, 0, 0} // coincident centers, any direction works
	if distance > 0 {
		normal = delta.Mul(1 / distance)
	}
	depth := sum - distance

	return Contact{
		Point:  a.Center.Add(normal.Mul(a.Radius - depth*0.5)),
		Normal: normal,
		Depth:  depth,
	}, true
}

func sphereVsBox(s Sphere, b Box) (Contact, bool) {
	closest := ClampVec(s.Center, b.Min, b.Max)
	delta := closest.Sub(s.Center)
	distSqr := delta.LenSqr()

	if distSqr > s.Radius*s.Radius {
		return Contact{}, false
	}

	if distSqr > 0 {
		distance := math.Sqrt(distSqr)
		return Contact{
			Point:  closest,
			Normal: delta.Mul(1 / distance),
			Depth:  s.Radius - distance,
		}, true
	}

	// center inside the box: push along the axis of least penetration
	bestAxis := 0
	bestSign := 1.0
	bestDist := math.Inf(1)
	for i := 0; i < 4; i++ {
		if d := s.Center[i] - b.Min[i]; d < bestDist {
			bestDist = d
			bestAxis = i
			bestSign = 1
		}
		if d := b.Max[i] - s.Center[i]; d < bestDist {
			bestDist = d
			bestAxis = i
			bestSign = -1
		}
	}

	normal := mgl64.Vec4{}
	normal[bestAxis] = bestSign

	return Contact{
		Point:  s.Center,
		Normal: normal,
		Depth:  s.Radius + bestDist,
	}, true
}

func boxVsBox(a, b Box) (Contact, bool) {
	bestAxis := 0
	bestOverlap := math.Inf(1)

	for i := 0; i < 4; i++ {
		overlap := math.Min(a.Max[i], b.Max[i]) - math.Max(a.Min[i], b.Min[i])
		if overlap < 0 {
			return Contact{}, false
		}
		if overlap < bestOverlap {
			bestOverlap = overlap
			bestAxis = i
		}
	}

	normal := mgl64.Vec4{}
	if b.Center()[bestAxis] >= a.Center()[bestAxis] {
		normal[bestAxis] = 1
	} else {
		normal[bestAxis] = -1
	}

	// midpoint of the intersection region
	low := MaxVec(a.Min, b.Min)
	high := MinVec(a.Max, b.Max)

	return Contact{
		Point:  low.Add(high).Mul(0.5),
		Normal: normal,
		Depth:  bestOverlap,
	}, true
}

func sphereVsHyperplane(s Sphere, p Hyperplane) (Contact, bool) {
	signed := p.SignedDistance(s.Center)
	if math.Abs(signed) > s.Radius {
		return Contact{}, false
	}

	normal := p.Normal.Mul(-1)
	if signed < 0 {
		normal = p.Normal
	}

	return Contact{
		Point:  s.Center.Sub(p.Normal.Mul(signed)),
		Normal: normal,
		Depth:  s.Radius - math.Abs(signed),
	}, true
}

func boxVsHyperplane(b Box, p Hyperplane) (Contact, bool) {
	center := b.Center()
	half := b.HalfExtents()

	// radius of the box projected onto the plane normal
	extent := 0.0
	for i := 0; i < 4; i++ {
		extent += math.Abs(p.Normal[i]) * half[i]
	}

	signed := p.SignedDistance(center)
	if math.Abs(signed) > extent {
		return Contact{}, false
	}

	normal := p.Normal.Mul(-1)
	if signed < 0 {
		normal = p.Normal
	}

	return Contact{
		Point:  center.Sub(p.Normal.Mul(signed)),
		Normal: normal,
		Depth:  extent - math.Abs(signed),
	}, true
}
