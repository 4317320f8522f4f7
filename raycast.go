package tesseract

import (
	"sort"

	"github.com/akmonengine/tesseract/geom"
	"github.com/google/uuid"
)

// RayHit couples a geometric hit with its source. Exactly one of Body
// and Static identifies the source: Body is uuid.Nil for a static hit,
// Static is -1 for a body hit.
type RayHit struct {
	geom.Hit
	Body   uuid.UUID
	Static int
}

// Raycast scans every body and static collider whose layer intersects
// layerMask, keeps hits within maxDistance and returns them sorted
// ascending by distance. Tie-break order among exact ties is
// unspecified.
func (w *World) Raycast(ray geom.Ray, maxDistance float64, layerMask uint32) []RayHit {
	var hits []RayHit

	for _, b := range w.bodies {
		if b.filter.Layer&layerMask == 0 {
			continue
		}
		if hit, ok := geom.RayIntersect(ray, b.shape); ok && hit.Distance <= maxDistance {
			hits = append(hits, RayHit{Hit: hit, Body: b.id, Static: -1})
		}
	}

	for index, s := range w.statics {
		if s == nil || s.filter.Layer&layerMask == 0 {
			continue
		}
		if hit, ok := geom.RayIntersect(ray, s.shape); ok && hit.Distance <= maxDistance {
			hits = append(hits, RayHit{Hit: hit, Static: index})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	return hits
}

// RaycastNearest returns the closest hit under the same filtering as
// Raycast, or false when nothing qualifies.
func (w *World) RaycastNearest(ray geom.Ray, maxDistance float64, layerMask uint32) (RayHit, bool) {
	nearest := RayHit{Static: -1}
	found := false

	// the first-encountered hit wins on exact ties, matching the stable
	// sort in Raycast
	for _, b := range w.bodies {
		if b.filter.Layer&layerMask == 0 {
			continue
		}
		hit, ok := geom.RayIntersect(ray, b.shape)
		if ok && hit.Distance <= maxDistance && (!found || hit.Distance < nearest.Distance) {
			nearest = RayHit{Hit: hit, Body: b.id, Static: -1}
			found = true
		}
	}

	for index, s := range w.statics {
		if s == nil || s.filter.Layer&layerMask == 0 {
			continue
		}
		hit, ok := geom.RayIntersect(ray, s.shape)
		if ok && hit.Distance <= maxDistance && (!found || hit.Distance < nearest.Distance) {
			nearest = RayHit{Hit: hit, Body: uuid.Nil, Static: index}
			found = true
		}
	}

	if !found {
		return RayHit{Static: -1}, false
	}
	return nearest, true
}
