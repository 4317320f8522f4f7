package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Sphere vs Sphere
// =============================================================================

func TestOverlap_SphereSphere(t *testing.T) {
	a := Sphere{Center: mgl64.Vec4{0, 0, 0, 0}, Radius: 1}
	b := Sphere{Center: mgl64.Vec4{1.5, 0, 0, 0}, Radius: 1}

	contact, ok := Overlap(a, b)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if !vecApprox(contact.Normal, mgl64.Vec4{1, 0, 0, 0}) {
		t.Errorf("normal = %v, want (1,0,0,0) pointing a→b", contact.Normal)
	}
	if math.Abs(contact.Depth-0.5) > testEpsilon {
		t.Errorf("depth = %v, want 0.5", contact.Depth)
	}
}

func TestOverlap_SphereSphere_Separated(t *testing.T) {
	a := Sphere{Center: mgl64.Vec4{0, 0, 0, 0}, Radius: 1}
	b := Sphere{Center: mgl64.Vec4{3, 0, 0, 0}, Radius: 1}

	if _, ok := Overlap(a, b); ok {
		t.Error("separated spheres should not overlap")
	}
}

func TestOverlap_SphereSphere_SeparatedOnFourthAxisOnly(t *testing.T) {
	// coincide in xyz, separated along w
	a := Sphere{Center: mgl64.Vec4{0, 0, 0, 0}, Radius: 1}
	b := Sphere{Center: mgl64.Vec4{0, 0, 0, 2.5}, Radius: 1}

	if _, ok := Overlap(a, b); ok {
		t.Error("spheres separated along w should not overlap")
	}
}

func TestOverlap_SphereSphere_CoincidentCenters(t *testing.T) {
	a := Sphere{Center: mgl64.Vec4{1, 1, 1, 1}, Radius: 1}
	b := Sphere{Center: mgl64.Vec4{1, 1, 1, 1}, Radius: 2}

	contact, ok := Overlap(a, b)
	if !ok {
		t.Fatal("coincident spheres must overlap")
	}
	if math.Abs(contact.Normal.Len()-1) > testEpsilon {
		t.Errorf("normal %v should still be unit length", contact.Normal)
	}
}

// =============================================================================
// Sphere vs Box
// =============================================================================

func TestOverlap_SphereBox(t *testing.T) {
	s := Sphere{Center: mgl64.Vec4{1.8, 0, 0, 0}, Radius: 1}
	b := unitBox()

	contact, ok := Overlap(s, b)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if !vecApprox(contact.Normal, mgl64.Vec4{-1, 0, 0, 0}) {
		t.Errorf("normal = %v, want (-1,0,0,0) pointing sphere→box", contact.Normal)
	}
	if math.Abs(contact.Depth-0.2) > testEpsilon {
		t.Errorf("depth = %v, want 0.2", contact.Depth)
	}
	if !vecApprox(contact.Point, mgl64.Vec4{1, 0, 0, 0}) {
		t.Errorf("point = %v, want (1,0,0,0)", contact.Point)
	}
}

func TestOverlap_SphereBox_CenterInside(t *testing.T) {
	s := Sphere{Center: mgl64.Vec4{0.5, 0, 0, 0}, Radius: 0.1}
	b := unitBox()

	contact, ok := Overlap(s, b)
	if !ok {
		t.Fatal("sphere centered inside the box must overlap")
	}
	if contact.Depth <= 0 {
		t.Errorf("depth = %v, want positive", contact.Depth)
	}
	// nearest face is Max on x, push is along -x
	if !vecApprox(contact.Normal, mgl64.Vec4{-1, 0, 0, 0}) {
		t.Errorf("normal = %v, want (-1,0,0,0)", contact.Normal)
	}
}

func TestOverlap_SphereBox_Separated(t *testing.T) {
	s := Sphere{Center: mgl64.Vec4{5, 5, 5, 5}, Radius: 1}

	if _, ok := Overlap(s, unitBox()); ok {
		t.Error("distant sphere should not overlap the box")
	}
}

func TestOverlap_BoxSphere_FlipsNormal(t *testing.T) {
	s := Sphere{Center: mgl64.Vec4{1.8, 0, 0, 0}, Radius: 1}
	b := unitBox()

	forward, _ := Overlap(s, b)
	reversed, ok := Overlap(b, s)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if !vecApprox(reversed.Normal, forward.Normal.Mul(-1)) {
		t.Errorf("reversed normal = %v, want %v", reversed.Normal, forward.Normal.Mul(-1))
	}
}

// =============================================================================
// Box vs Box
// =============================================================================

func TestOverlap_BoxBox(t *testing.T) {
	a := unitBox()
	b := Box{
		Min: mgl64.Vec4{0.5, -1, -1, -1},
		Max: mgl64.Vec4{2.5, 1, 1, 1},
	}

	contact, ok := Overlap(a, b)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if !vecApprox(contact.Normal, mgl64.Vec4{1, 0, 0, 0}) {
		t.Errorf("normal = %v, want (1,0,0,0) along the least-overlap axis", contact.Normal)
	}
	if math.Abs(contact.Depth-0.5) > testEpsilon {
		t.Errorf("depth = %v, want 0.5", contact.Depth)
	}
}

func TestOverlap_BoxBox_TouchingFaces(t *testing.T) {
	a := unitBox()
	b := Box{
		Min: mgl64.Vec4{1, -1, -1, -1},
		Max: mgl64.Vec4{3, 1, 1, 1},
	}

	contact, ok := Overlap(a, b)
	if !ok {
		t.Fatal("touching boxes count as overlapping")
	}
	if contact.Depth != 0 {
		t.Errorf("depth = %v, want 0 for touching faces", contact.Depth)
	}
}

func TestOverlap_BoxBox_SeparatedOnFourthAxis(t *testing.T) {
	a := unitBox()
	b := Box{
		Min: mgl64.Vec4{-1, -1, -1, 2},
		Max: mgl64.Vec4{1, 1, 1, 4},
	}

	if _, ok := Overlap(a, b); ok {
		t.Error("boxes separated along w should not overlap")
	}
}

// =============================================================================
// Hyperplane pairings
// =============================================================================

func TestOverlap_SphereHyperplane(t *testing.T) {
	s := Sphere{Center: mgl64.Vec4{0, 0.5, 0, 0}, Radius: 1}
	p := Hyperplane{Normal: mgl64.Vec4{0, 1, 0, 0}, Distance: 0}

	contact, ok := Overlap(s, p)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if math.Abs(contact.Depth-0.5) > testEpsilon {
		t.Errorf("depth = %v, want 0.5", contact.Depth)
	}
	if !vecApprox(contact.Normal, mgl64.Vec4{0, -1, 0, 0}) {
		t.Errorf("normal = %v, want (0,-1,0,0) toward the plane", contact.Normal)
	}
	if !vecApprox(contact.Point, mgl64.Vec4{0, 0, 0, 0}) {
		t.Errorf("point = %v, want the projection onto the plane", contact.Point)
	}
}

func TestOverlap_SphereHyperplane_Separated(t *testing.T) {
	s := Sphere{Center: mgl64.Vec4{0, 5, 0, 0}, Radius: 1}
	p := Hyperplane{Normal: mgl64.Vec4{0, 1, 0, 0}, Distance: 0}

	if _, ok := Overlap(s, p); ok {
		t.Error("sphere above the plane should not overlap")
	}
}

func TestOverlap_BoxHyperplane(t *testing.T) {
	b := unitBox()
	p := Hyperplane{Normal: mgl64.Vec4{0, 0, 0, 1}, Distance: 0.5}

	contact, ok := Overlap(b, p)
	if !ok {
		t.Fatal("expected an overlap")
	}
	// projected extent 1, center at signed distance -0.5
	if math.Abs(contact.Depth-0.5) > testEpsilon {
		t.Errorf("depth = %v, want 0.5", contact.Depth)
	}
	if !vecApprox(contact.Normal, mgl64.Vec4{0, 0, 0, 1}) {
		t.Errorf("normal = %v, want (0,0,0,1)", contact.Normal)
	}
}

func TestOverlap_HyperplaneHyperplane_NoContact(t *testing.T) {
	a := Hyperplane{Normal: mgl64.Vec4{1, 0, 0, 0}, Distance: 0}
	b := Hyperplane{Normal: mgl64.Vec4{0, 1, 0, 0}, Distance: 0}

	if _, ok := Overlap(a, b); ok {
		t.Error("hyperplane pairs report no contact")
	}
}

func TestOverlap_HyperplaneSphere_FlipsNormal(t *testing.T) {
	s := Sphere{Center: mgl64.Vec4{0, 0.5, 0, 0}, Radius: 1}
	p := Hyperplane{Normal: mgl64.Vec4{0, 1, 0, 0}, Distance: 0}

	forward, _ := Overlap(s, p)
	reversed, ok := Overlap(p, s)
	if !ok {
		t.Fatal("expected an overlap")
	}
	if !vecApprox(reversed.Normal, forward.Normal.Mul(-1)) {
		t.Errorf("reversed normal = %v, want %v", reversed.Normal, forward.Normal.Mul(-1))
	}
}
