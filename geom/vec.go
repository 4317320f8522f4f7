package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Distance returns the euclidean distance between two points.
func Distance(a, b mgl64.Vec4) float64 {
	return b.Sub(a).Len()
}

// MinVec returns the component-wise minimum of two vectors.
func MinVec(a, b mgl64.Vec4) mgl64.Vec4 {
	return mgl64.Vec4{
		math.Min(a[0], b[0]),
		math.Min(a[1], b[1]),
		math.Min(a[2], b[2]),
		math.Min(a[3], b[3]),
	}
}

// MaxVec returns the component-wise maximum of two vectors.
func MaxVec(a, b mgl64.Vec4) mgl64.Vec4 {
	return mgl64.Vec4{
		math.Max(a[0], b[0]),
		math.Max(a[1], b[1]),
		math.Max(a[2], b[2]),
		math.Max(a[3], b[3]),
	}
}

// ClampVec clamps each component of v to the [min, max] range.
func ClampVec(v, min, max mgl64.Vec4) mgl64.Vec4 {
	return MinVec(MaxVec(v, min), max)
}
