package tesseract

import (
	"github.com/akmonengine/tesseract/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BodyType represents the type of body
type BodyType int

const (
	// BodyTypeDynamic bodies move by their velocity during Step
	BodyTypeDynamic BodyType = iota

	// BodyTypeKinematic bodies only move when repositioned explicitly
	BodyTypeKinematic
)

type body struct {
	id       uuid.UUID
	shape    geom.Shape
	bodyType BodyType
	filter   Filter
	velocity mgl64.Vec4
}

type staticCollider struct {
	shape  geom.Shape
	filter Filter
	sensor bool
}

// World owns every body and static collider and is the only mutator of
// their storage. Callers hold opaque handles and indices, revalidated
// on each access; no raw reference ever leaves the world.
type World struct {
	bodies   []*body // insertion order, kept for deterministic scans
	byHandle map[uuid.UUID]*body
	statics  []*staticCollider // nil marks a removed slot

	events Events
	logger *zap.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger attaches a structured logger. The default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		byHandle: make(map[uuid.UUID]*body),
		events:   NewEvents(),
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// AddBody spawns a body with the given shape, type and filter, and
// returns its handle.
func (w *World) AddBody(shape geom.Shape, bodyType BodyType, filter Filter) uuid.UUID {
	b := &body{
		id:       uuid.New(),
		shape:    shape,
		bodyType: bodyType,
		filter:   filter,
	}

	w.bodies = append(w.bodies, b)
	w.byHandle[b.id] = b

	w.logger.Debug("body added",
		zap.String("handle", b.id.String()),
		zap.Uint32("layer", filter.Layer))

	return b.id
}

// RemoveBody despawns a body. Retained overlap pairs referencing it are
// dropped so no exit event is emitted for a body that no longer exists.
// Unknown handles are ignored.
func (w *World) RemoveBody(handle uuid.UUID) {
	b, ok := w.byHandle[handle]
	if !ok {
		w.logger.Warn("remove of unknown body handle", zap.String("handle", handle.String()))
		return
	}

	k := -1
	for i, candidate := range w.bodies {
		if candidate == b {
			k = i
			break
		}
	}
	if k != -1 {
		w.bodies = append(w.bodies[:k], w.bodies[k+1:]...)
	}
	delete(w.byHandle, handle)

	w.events.forgetBody(handle)

	w.logger.Debug("body removed", zap.String("handle", handle.String()))
}

// AddStatic adds an immovable collider and returns its index. A sensor
// collider detects overlaps without taking part in the solid pass.
func (w *World) AddStatic(shape geom.Shape, filter Filter, sensor bool) int {
	w.statics = append(w.statics, &staticCollider{
		shape:  shape,
		filter: filter,
		sensor: sensor,
	})

	index := len(w.statics) - 1
	w.logger.Debug("static collider added",
		zap.Int("index", index),
		zap.Bool("sensor", sensor))

	return index
}

// RemoveStatic tombstones the collider at index: the slot is cleared
// but never reused, so indices stay stable for the lifetime of the
// world and a stale index can never alias another collider.
func (w *World) RemoveStatic(index int) {
	if index < 0 || index >= len(w.statics) || w.statics[index] == nil {
		w.logger.Warn("remove of unknown static collider", zap.Int("index", index))
		return
	}

	w.statics[index] = nil
	w.events.forgetSensor(index)

	w.logger.Debug("static collider removed", zap.Int("index", index))
}

// BodyPosition returns the center of the body's shape, or false for a
// stale handle.
func (w *World) BodyPosition(handle uuid.UUID) (mgl64.Vec4, bool) {
	b, ok := w.byHandle[handle]
	if !ok {
		return mgl64.Vec4{}, false
	}
	return geom.Center(b.shape), true
}

// SetBodyPosition moves the body so its shape is centered on position.
// Stale handles are ignored.
func (w *World) SetBodyPosition(handle uuid.UUID, position mgl64.Vec4) {
	b, ok := w.byHandle[handle]
	if !ok {
		w.logger.Warn("move of unknown body handle", zap.String("handle", handle.String()))
		return
	}

	b.shape = b.shape.Translated(position.Sub(geom.Center(b.shape)))
}

// TranslateBody moves the body's shape by delta. Stale handles are
// ignored.
func (w *World) TranslateBody(handle uuid.UUID, delta mgl64.Vec4) {
	b, ok := w.byHandle[handle]
	if !ok {
		w.logger.Warn("move of unknown body handle", zap.String("handle", handle.String()))
		return
	}

	b.shape = b.shape.Translated(delta)
}

// SetBodyVelocity sets the velocity integrated for dynamic bodies each
// Step. Stale handles are ignored.
func (w *World) SetBodyVelocity(handle uuid.UUID, velocity mgl64.Vec4) {
	b, ok := w.byHandle[handle]
	if !ok {
		w.logger.Warn("velocity set on unknown body handle", zap.String("handle", handle.String()))
		return
	}

	b.velocity = velocity
}

// Step advances the world by dt: dynamic bodies integrate their
// velocity, the solid pass detects symmetric collisions, the sensor
// pass computes this step's overlap set, and the set is diffed against
// the previous step's to emit enter/stay/exit transitions. All events
// accumulate until DrainCollisionEvents.
func (w *World) Step(dt float64) {
	w.integrate(dt)
	w.solidPass()
	w.sensorPass()
	w.events.processSensorEvents()
}

// DrainCollisionEvents atomically empties the event buffer and returns
// its contents in emission order.
func (w *World) DrainCollisionEvents() []Event {
	return w.events.Drain()
}

func (w *World) integrate(dt float64) {
	for _, b := range w.bodies {
		if b.bodyType != BodyTypeDynamic || b.velocity.LenSqr() == 0 {
			continue
		}
		b.shape = b.shape.Translated(b.velocity.Mul(dt))
	}
}
