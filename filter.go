package tesseract

// Filter pairs a collision layer bit with a detection mask. Layer says
// what the owner is, Mask says which layers the owner cares about.
type Filter struct {
	Layer uint32
	Mask  uint32
}

// NewFilter builds a filter from a layer bit and a detection mask.
func NewFilter(layer, mask uint32) Filter {
	return Filter{Layer: layer, Mask: mask}
}

// LayerBit returns the layer bit for layer index i (0–31).
func LayerBit(i int) uint32 {
	return 1 << uint(i)
}

// FilterAll detects every layer.
func FilterAll(layer uint32) Filter {
	return Filter{Layer: layer, Mask: ^uint32(0)}
}

// FilterNone detects nothing.
func FilterNone(layer uint32) Filter {
	return Filter{Layer: layer, Mask: 0}
}

// FilterAllExcept detects every layer but the listed ones.
func FilterAllExcept(layer uint32, except ...uint32) Filter {
	mask := ^uint32(0)
	for _, e := range except {
		mask &^= e
	}
	return Filter{Layer: layer, Mask: mask}
}

// CollidesWith reports whether both sides agree to collide: each mask
// must include the other side's layer. Used for the solid pass.
func (f Filter) CollidesWith(other Filter) bool {
	return f.Mask&other.Layer != 0 && other.Mask&f.Layer != 0
}

// Detects reports whether f's mask includes the other side's layer.
// Only the receiver's mask is consulted, so a sensor can observe a body
// whose own mask ignores the sensor. Used for the sensor pass.
func (f Filter) Detects(other Filter) bool {
	return f.Mask&other.Layer != 0
}
