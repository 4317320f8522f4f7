package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon is the denominator threshold below which a ray is
// treated as parallel to a hyperplane.
const parallelEpsilon = 1e-12

// Hit is the transient result of one ray/shape intersection test.
type Hit struct {
	Distance float64
	Point    mgl64.Vec4
	Normal   mgl64.Vec4
}

// RayIntersect dispatches the intersection test matching the shape
// variant. It reports false for a miss.
func RayIntersect(r Ray, s Shape) (Hit, bool) {
	switch shape := s.(type) {
	case Sphere:
		return RayVsSphere(r, shape)
	case Box:
		return RayVsBox(r, shape)
	case Hyperplane:
		return RayVsHyperplane(r, shape)
	}
	return Hit{}, false
}

// RayVsSphere solves the quadratic |origin + t·dir − center|² = r².
// Of the two roots the smallest non-negative t wins; a sphere entirely
// behind the ray is a miss.
func RayVsSphere(r Ray, s Sphere) (Hit, bool) {
	oc := r.Origin.Sub(s.Center)
	// dir is unit length, so the quadratic coefficient a is 1
	b := oc.Dot(r.Direction)
	c := oc.LenSqr() - s.Radius*s.Radius

	discriminant := b*b - c
	if discriminant < 0 {
		return Hit{}, false
	}

	sq := math.Sqrt(discriminant)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return Hit{}, false
	}

	point := r.PointAt(t)

	return Hit{
		Distance: t,
		Point:    point,
		Normal:   point.Sub(s.Center).Normalize(),
	}, true
}

// RayVsBox runs the slab method over all four axes. A ray parallel to
// an axis must originate inside that axis' slab. If the origin is
// inside the box the hit is reported at distance 0 by convention.
func RayVsBox(r Ray, b Box) (Hit, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	entryAxis := 0
	entrySign := -1.0

	for i := 0; i < 4; i++ {
		if r.Direction[i] == 0 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return Hit{}, false
			}
			continue
		}

		inv := 1.0 / r.Direction[i]
		t1 := (b.Min[i] - r.Origin[i]) * inv
		t2 := (b.Max[i] - r.Origin[i]) * inv
		// sign of the face normal depends on which bound is crossed first
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}

		if t1 > tMin {
			tMin = t1
			entryAxis = i
			entrySign = sign
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return Hit{}, false
		}
	}

	if tMax < 0 {
		return Hit{}, false
	}

	normal := mgl64.Vec4{}
	normal[entryAxis] = entrySign

	if tMin < 0 {
		// origin inside the box
		return Hit{Distance: 0, Point: r.Origin, Normal: normal}, true
	}

	return Hit{Distance: tMin, Point: r.PointAt(tMin), Normal: normal}, true
}

// RayVsHyperplane intersects the ray with an infinite hyperplane. The
// returned normal faces back toward the ray's origin side.
func RayVsHyperplane(r Ray, p Hyperplane) (Hit, bool) {
	denominator := r.Direction.Dot(p.Normal)
	if math.Abs(denominator) < parallelEpsilon {
		return Hit{}, false
	}

	t := (p.Distance - r.Origin.Dot(p.Normal)) / denominator
	if t < 0 {
		return Hit{}, false
	}

	normal := p.Normal
	if denominator > 0 {
		normal = normal.Mul(-1)
	}

	return Hit{Distance: t, Point: r.PointAt(t), Normal: normal}, true
}
