package world

import (
	"time"

	"example.com/office/geom"
	"go.uber.org/zap"
)

// Params are the construction parameters a host passes in.
type Params struct {
	// SpawnTarget names where the avatar should appear. It is kept for hosts
	// that want it back but never moves the spawn point.
	SpawnTarget string
}

// Recorder receives step timings and state transitions. The metrics package
// provides a prometheus backed one.
type Recorder interface {
	ObserveStep(d time.Duration)
	DoorToggled(open bool)
	SeatChanged(sitting bool)
}

type noopRecorder struct{}

func (noopRecorder) ObserveStep(time.Duration) {}
func (noopRecorder) DoorToggled(bool)          {}
func (noopRecorder) SeatChanged(bool)          {}

type options struct {
	speed       float64
	doorRadius  float64
	chairRadius float64
	sprite      geom.Vec
	spawn       geom.Vec
	logger      *zap.Logger
	recorder    Recorder
}

type Option func(*options)

func WithSpeed(speed float64) Option {
	return func(o *options) { o.speed = speed }
}

func WithDoorRadius(radius float64) Option {
	return func(o *options) {
		if radius > 0 {
			o.doorRadius = radius
		}
	}
}

func WithChairRadius(radius float64) Option {
	return func(o *options) {
		if radius > 0 {
			o.chairRadius = radius
		}
	}
}

// WithSprite sets the avatar's sprite extent. The body is sized from it.
func WithSprite(w, h float64) Option {
	return func(o *options) { o.sprite = geom.Vec{X: w, Y: h} }
}

// WithSpawn moves the spawn point. Non-finite points are ignored, and points
// off the world are pulled back inside it.
func WithSpawn(spawn geom.Vec) Option {
	return func(o *options) {
		if spawn.Finite() {
			o.spawn = spawn
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}
