package main

import (
	"fmt"
	"strings"

	"github.com/akmonengine/tesseract"
	"github.com/akmonengine/tesseract/geom"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

const layerConfig = `
layers: [player, wall, zone]
detects:
  player: [wall]
  zone: [player]
`

// Handler reacts to one drained event. Handlers run outside the world;
// a panicking handler is logged and skipped, never fatal.
type Handler func(event tesseract.Event)

// Dispatcher is a minimal scripting bridge: it drains the world once
// per step and fans events out to the handlers registered per type.
type Dispatcher struct {
	handlers map[tesseract.EventType][]Handler
	logger   *zap.Logger
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[tesseract.EventType][]Handler),
		logger:   logger,
	}
}

func (d *Dispatcher) Subscribe(eventType tesseract.EventType, handler Handler) {
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

func (d *Dispatcher) Dispatch(events []tesseract.Event) {
	for _, event := range events {
		for _, handler := range d.handlers[event.Type()] {
			d.call(handler, event)
		}
	}
}

func (d *Dispatcher) call(handler Handler, event tesseract.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("event handler panicked", zap.Any("panic", r))
		}
	}()
	handler(event)
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config, err := tesseract.LoadLayerConfig(strings.NewReader(layerConfig))
	if err != nil {
		logger.Fatal("loading layer config", zap.Error(err))
	}

	playerFilter, _ := config.Filter("player")
	wallFilter, _ := config.Filter("wall")
	zoneFilter, _ := config.Filter("zone")

	world := tesseract.NewWorld(tesseract.WithLogger(logger))

	// A wall behind the zone and a trigger volume in between
	wall := world.AddStatic(geom.Box{
		Min: mgl64.Vec4{9, -5, -5, -5},
		Max: mgl64.Vec4{10, 5, 5, 5},
	}, wallFilter, false)

	zone := world.AddStatic(geom.Box{
		Min: mgl64.Vec4{4, -2, -2, -2},
		Max: mgl64.Vec4{6, 2, 2, 2},
	}, zoneFilter, true)

	player := world.AddBody(geom.Sphere{
		Center: mgl64.Vec4{0, 0, 0, 0},
		Radius: 0.5,
	}, tesseract.BodyTypeDynamic, playerFilter)

	world.SetBodyVelocity(player, mgl64.Vec4{1, 0, 0, 0})

	dispatcher := NewDispatcher(logger)
	dispatcher.Subscribe(tesseract.TRIGGER_ENTER, func(event tesseract.Event) {
		e := event.(tesseract.TriggerEnterEvent)
		fmt.Printf("body %s entered zone %d at %v\n", e.Body, e.Sensor, e.Contact.Point)
	})
	dispatcher.Subscribe(tesseract.TRIGGER_EXIT, func(event tesseract.Event) {
		e := event.(tesseract.TriggerExitEvent)
		fmt.Printf("body %s left zone %d\n", e.Body, e.Sensor)
	})
	dispatcher.Subscribe(tesseract.COLLISION_STATIC, func(event tesseract.Event) {
		e := event.(tesseract.StaticCollisionEvent)
		fmt.Printf("body %s hit static %d, depth %.3f\n", e.Body, e.Static, e.Contact.Depth)
	})

	// What would the player see looking down +x?
	ray := geom.NewRay(mgl64.Vec4{0, 0, 0, 0}, mgl64.Vec4{1, 0, 0, 0})
	for _, hit := range world.Raycast(ray, 100, wallFilter.Layer|zoneFilter.Layer) {
		switch hit.Static {
		case zone:
			fmt.Printf("zone boundary at distance %.2f\n", hit.Distance)
		case wall:
			fmt.Printf("wall at distance %.2f\n", hit.Distance)
		}
	}

	const dt = 0.5
	for step := 0; step < 24; step++ {
		world.Step(dt)
		dispatcher.Dispatch(world.DrainCollisionEvents())
	}
}
