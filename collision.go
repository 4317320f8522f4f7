package tesseract

import "github.com/akmonengine/tesseract/geom"

// solidPass detects symmetric collisions: every (body, body) pair and
// every (body, non-sensor static) pair whose filters mutually agree.
// Resolving the overlap physically is the caller's concern; only the
// detection events are produced here.
func (w *World) solidPass() {
	for i, a := range w.bodies {
		for _, b := range w.bodies[i+1:] {
			if !a.filter.CollidesWith(b.filter) {
				continue
			}
			if contact, ok := geom.Overlap(a.shape, b.shape); ok {
				w.events.emit(BodyCollisionEvent{
					BodyA:   a.id,
					BodyB:   b.id,
					Contact: contact,
				})
			}
		}
	}

	for _, b := range w.bodies {
		for index, s := range w.statics {
			if s == nil || s.sensor {
				continue
			}
			if !b.filter.CollidesWith(s.filter) {
				continue
			}
			if contact, ok := geom.Overlap(b.shape, s.shape); ok {
				w.events.emit(StaticCollisionEvent{
					Body:    b.id,
					Static:  index,
					Contact: contact,
				})
			}
		}
	}
}

// sensorPass records this step's sensor-overlap set. The check is
// asymmetric on purpose: only the sensor's mask is consulted, so a
// sensor observes bodies whose own mask ignores it.
func (w *World) sensorPass() {
	for _, b := range w.bodies {
		for index, s := range w.statics {
			if s == nil || !s.sensor {
				continue
			}
			if !s.filter.Detects(b.filter) {
				continue
			}
			if contact, ok := geom.Overlap(b.shape, s.shape); ok {
				w.events.recordOverlap(sensorPair{body: b.id, sensor: index}, contact)
			}
		}
	}
}
