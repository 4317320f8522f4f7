package tesseract

import (
	"github.com/akmonengine/tesseract/geom"
	"github.com/google/uuid"
)

const (
	COLLISION_BODY EventType = iota
	COLLISION_STATIC
	TRIGGER_ENTER
	TRIGGER_STAY
	TRIGGER_EXIT
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// BodyCollisionEvent reports a symmetric overlap between two bodies.
type BodyCollisionEvent struct {
	BodyA   uuid.UUID
	BodyB   uuid.UUID
	Contact geom.Contact
}

func (e BodyCollisionEvent) Type() EventType { return COLLISION_BODY }

// StaticCollisionEvent reports a symmetric overlap between a body and a
// non-sensor static collider.
type StaticCollisionEvent struct {
	Body    uuid.UUID
	Static  int
	Contact geom.Contact
}

func (e StaticCollisionEvent) Type() EventType { return COLLISION_STATIC }

// Trigger events
type TriggerEnterEvent struct {
	Body    uuid.UUID
	Sensor  int
	Contact geom.Contact
}

func (e TriggerEnterEvent) Type() EventType { return TRIGGER_ENTER }

type TriggerStayEvent struct {
	Body    uuid.UUID
	Sensor  int
	Contact geom.Contact
}

func (e TriggerStayEvent) Type() EventType { return TRIGGER_STAY }

// TriggerExitEvent carries a zero Contact: the geometry no longer
// overlaps when the exit is observed.
type TriggerExitEvent struct {
	Body    uuid.UUID
	Sensor  int
	Contact geom.Contact
}

func (e TriggerExitEvent) Type() EventType { return TRIGGER_EXIT }

type sensorPair struct {
	body   uuid.UUID
	sensor int
}

// Events buffers everything one step produces and retains the active
// sensor-overlap set between steps to detect Enter/Stay/Exit. The pair
// order of each snapshot is the scan order of the sensor pass, so the
// exit sweep stays reproducible.
type Events struct {
	buffer []Event

	previousPairs map[sensorPair]geom.Contact
	previousOrder []sensorPair
	currentPairs  map[sensorPair]geom.Contact
	currentOrder  []sensorPair
}

func NewEvents() Events {
	return Events{
		buffer:        make([]Event, 0, 256),
		previousPairs: make(map[sensorPair]geom.Contact),
		currentPairs:  make(map[sensorPair]geom.Contact),
	}
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// recordOverlap is called by the sensor pass for each overlapping
// (body, sensor) pair of the current step.
func (e *Events) recordOverlap(pair sensorPair, contact geom.Contact) {
	if _, exists := e.currentPairs[pair]; !exists {
		e.currentOrder = append(e.currentOrder, pair)
	}
	e.currentPairs[pair] = contact
}

// processSensorEvents compares current and previous pairs to detect
// Enter/Stay/Exit, then swaps the snapshots wholesale. Within one step
// events group as all entered, then all staying, then all exited.
func (e *Events) processSensorEvents() {
	var entered, staying []Event

	for _, pair := range e.currentOrder {
		contact := e.currentPairs[pair]
		if _, wasActive := e.previousPairs[pair]; wasActive {
			staying = append(staying, TriggerStayEvent{
				Body:    pair.body,
				Sensor:  pair.sensor,
				Contact: contact,
			})
		} else {
			entered = append(entered, TriggerEnterEvent{
				Body:    pair.body,
				Sensor:  pair.sensor,
				Contact: contact,
			})
		}
	}

	e.buffer = append(e.buffer, entered...)
	e.buffer = append(e.buffer, staying...)

	for _, pair := range e.previousOrder {
		if _, stillActive := e.currentPairs[pair]; !stillActive {
			e.buffer = append(e.buffer, TriggerExitEvent{
				Body:   pair.body,
				Sensor: pair.sensor,
			})
		}
	}

	// Swap for next step and clear current
	e.previousPairs, e.currentPairs = e.currentPairs, e.previousPairs
	e.previousOrder, e.currentOrder = e.currentOrder, e.previousOrder
	clear(e.currentPairs)
	e.currentOrder = e.currentOrder[:0]
}

// Drain empties the buffer and returns its contents.
func (e *Events) Drain() []Event {
	drained := e.buffer
	e.buffer = make([]Event, 0, cap(drained))
	return drained
}

// forgetBody drops retained pairs referencing a removed body, so no
// exit is emitted for a handle that no longer resolves.
func (e *Events) forgetBody(handle uuid.UUID) {
	e.previousOrder = e.dropPairs(e.previousPairs, e.previousOrder, func(p sensorPair) bool {
		return p.body == handle
	})
	e.currentOrder = e.dropPairs(e.currentPairs, e.currentOrder, func(p sensorPair) bool {
		return p.body == handle
	})
}

// forgetSensor drops retained pairs referencing a removed sensor slot.
func (e *Events) forgetSensor(index int) {
	e.previousOrder = e.dropPairs(e.previousPairs, e.previousOrder, func(p sensorPair) bool {
		return p.sensor == index
	})
	e.currentOrder = e.dropPairs(e.currentPairs, e.currentOrder, func(p sensorPair) bool {
		return p.sensor == index
	})
}

func (e *Events) dropPairs(pairs map[sensorPair]geom.Contact, order []sensorPair, match func(sensorPair) bool) []sensorPair {
	n := 0
	for _, pair := range order {
		if match(pair) {
			delete(pairs, pair)
			continue
		}
		order[n] = pair
		n++
	}
	return order[:n]
}
