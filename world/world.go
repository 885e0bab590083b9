// Package world runs one office simulation: a single avatar moving through
// a static arena, opening doors and taking seats.
package world

import (
	"time"

	"example.com/office/geom"
	"example.com/office/input"
	"example.com/office/world/collision"
	"example.com/office/world/entities"
	"example.com/office/world/interact"
	"example.com/office/world/layout"
	"example.com/office/world/player"
	"go.uber.org/zap"
)

type World struct {
	arena    *entities.Arena
	registry *collision.Registry
	player   *player.Player
	bus      *Bus

	edges input.EdgeDetector
	doors interact.DoorResolver
	seats interact.SeatResolver

	params   Params
	tick     uint64
	torn     bool
	logger   *zap.Logger
	recorder Recorder
}

// New builds the standard office layout and spawns the avatar in it.
func New(params Params, opts ...Option) *World {
	return NewWithArena(layout.Build(), params, opts...)
}

// NewWithArena runs the simulation over a caller supplied arena inside the
// standard world bounds. Unusable options fall back to their defaults.
func NewWithArena(arena *entities.Arena, params Params, opts ...Option) *World {
	o := options{
		speed:       player.DefaultSpeed,
		doorRadius:  interact.DefaultDoorRadius,
		chairRadius: interact.DefaultChairRadius,
		sprite:      player.DefaultSprite,
		spawn:       player.DefaultSpawn,
		logger:      zap.NewNop(),
		recorder:    noopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if arena == nil {
		arena = entities.NewArena()
	}

	bounds := layout.Bounds()
	avatar := player.NewPlayer(o.spawn, o.sprite, o.speed)
	avatar.PlaceWithin(bounds)

	w := &World{
		arena:    arena,
		registry: collision.NewRegistry(arena, bounds),
		player:   avatar,
		bus:      NewBus(o.logger),
		doors:    interact.DoorResolver{Radius: o.doorRadius},
		seats:    interact.SeatResolver{Radius: o.chairRadius},
		params:   params,
		logger:   o.logger,
		recorder: o.recorder,
	}

	w.logger.Info("office ready",
		zap.Int("walls", len(arena.Walls)),
		zap.Int("furniture", len(arena.Furniture)),
		zap.Int("doors", len(arena.Doors)),
		zap.Int("chairs", len(arena.Chairs)),
		zap.Float64("x", w.player.Position.X),
		zap.Float64("y", w.player.Position.Y))

	return w
}

// Step advances the simulation by dt seconds under the held input. Movement
// runs first, then the door action, then the seat action. The events the
// step produced are returned and published on the bus.
func (w *World) Step(state input.State, dt float64) []entities.Event {
	if w == nil || w.torn || w.player == nil {
		return nil
	}

	start := time.Now()
	defer func() { w.recorder.ObserveStep(time.Since(start)) }()

	w.tick++
	edges := w.edges.Detect(state)

	var events []entities.Event

	// a seated avatar only reacts to standing up
	if w.player.Sitting {
		w.player.Steer(input.State{})
		if edges.Sit {
			events = w.pressSeat(events)
		}
		return w.publish(events)
	}

	w.player.Steer(state)
	w.player.Integrate(dt, w.registry)

	if edges.Interact {
		w.pressDoor()
	}
	if edges.Sit {
		events = w.pressSeat(events)
	}

	return w.publish(events)
}

func (w *World) pressDoor() {
	door := w.doors.Press(w.player, w.registry.Toggleable())
	if door == nil {
		return
	}

	w.recorder.DoorToggled(door.Open())
	w.logger.Debug("door toggled",
		zap.Int("door", door.Index),
		zap.String("room", door.RoomId),
		zap.Bool("open", door.Open()))

	// a door can close on the avatar
	w.player.Integrate(0, w.registry)
}

func (w *World) pressSeat(events []entities.Event) []entities.Event {
	var seat *entities.Entity
	if w.player.Sitting {
		seat = w.player.Seat
	}

	ev, ok := w.seats.Press(w.player, w.registry.Interactable(), w.registry)
	if !ok {
		return events
	}

	if ev.IsSitting {
		seat = w.player.Seat
	} else {
		// standing up can leave the body inside the furniture next to the chair
		w.player.Integrate(0, w.registry)
	}

	w.recorder.SeatChanged(ev.IsSitting)
	if seat != nil {
		w.logger.Debug("seat changed",
			zap.Bool("sitting", ev.IsSitting),
			zap.Int("chair", seat.Index),
			zap.String("room", seat.RoomId))
	}

	return append(events, ev)
}

func (w *World) publish(events []entities.Event) []entities.Event {
	for _, ev := range events {
		w.bus.Publish(ev)
	}
	return events
}

// Subscribe hands every future event to inbox. The inbox is closed on Teardown.
func (w *World) Subscribe(inbox chan entities.Event) {
	if w == nil || w.bus == nil {
		return
	}
	w.bus.Subscribe(inbox)
}

func (w *World) Unsubscribe(inbox chan entities.Event) {
	if w == nil || w.bus == nil {
		return
	}
	w.bus.Unsubscribe(inbox)
}

// Teardown releases the collision bodies and detaches every subscriber.
// It is safe to call more than once, and on a nil or zero World.
func (w *World) Teardown() {
	if w == nil || w.torn {
		return
	}
	w.torn = true

	w.registry.Release()

	subscribers := 0
	if w.bus != nil {
		subscribers = w.bus.Len()
		w.bus.Close()
	}
	if w.logger != nil {
		w.logger.Info("office torn down",
			zap.Uint64("ticks", w.tick),
			zap.Int("subscribers", subscribers))
	}
}

// Dropped is the number of event deliveries lost to full subscriber inboxes.
func (w *World) Dropped() uint64 {
	if w == nil || w.bus == nil {
		return 0
	}
	return w.bus.Dropped()
}

func (w *World) SpawnTarget() string {
	if w == nil {
		return ""
	}
	return w.params.SpawnTarget
}

func (w *World) Tick() uint64 { return w.tick }

func (w *World) Arena() *entities.Arena { return w.arena }

func (w *World) Bounds() geom.Rect { return layout.Bounds() }

// SeatState reports whether the avatar is standing or sitting.
func (w *World) SeatState() interact.SeatState {
	if w == nil || w.player == nil {
		return interact.Standing
	}
	return interact.StateOf(w.player)
}
