package player

import (
	"math"

	"example.com/office/geom"
	"example.com/office/input"
	"example.com/office/world/entities"
)

const (
	DefaultSpeed = 200.0

	// the collision body covers the middle 40% of the sprite on each axis
	BodyScale = 0.4

	// bounded so a body wedged between obstacles cannot spin forever
	depenetrationPasses = 4
)

var (
	DefaultSpawn  = geom.Vec{X: 900, Y: 500}
	DefaultSprite = geom.Vec{X: 80, Y: 80}
)

// World is what the player needs from the collision registry.
type World interface {
	Candidates(area geom.Rect) []*entities.Entity
	Colliding(body geom.Rect) []*entities.Entity
	Settle(body geom.Rect)
	Bounds() geom.Rect
}

type Player struct {
	Position geom.Vec
	Velocity geom.Vec
	Sitting  bool
	Seat     *entities.Entity

	body        geom.Vec
	bodyEnabled bool
	speed       float64
}

// NewPlayer places an avatar at spawn with a body sized from the sprite extent.
// Non-finite spawns and unusable sprites fall back to the defaults.
func NewPlayer(spawn, sprite geom.Vec, speed float64) *Player {
	if !spawn.Finite() {
		spawn = DefaultSpawn
	}
	if !sprite.Finite() || sprite.X <= 0 || sprite.Y <= 0 {
		sprite = DefaultSprite
	}
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		speed = DefaultSpeed
	}

	return &Player{
		Position:    spawn,
		body:        sprite.Mul(BodyScale),
		bodyEnabled: true,
		speed:       speed,
	}
}

func (p *Player) Speed() float64 { return p.speed }

// PlaceWithin moves the avatar the least distance that puts its whole body
// inside bounds.
func (p *Player) PlaceWithin(bounds geom.Rect) {
	p.Position = p.clampToBounds(p.Position, bounds)
}

func (p *Player) BodyEnabled() bool { return p.bodyEnabled }

// Body is the collision box, centered on the avatar's position.
func (p *Player) Body() geom.Rect {
	return geom.Rect{Center: p.Position, W: p.body.X, H: p.body.Y}
}

func (p *Player) bodyAt(pos geom.Vec) geom.Rect {
	return geom.Rect{Center: pos, W: p.body.X, H: p.body.Y}
}

// Steer derives the velocity from the held direction keys. Left beats right
// and up beats down; the axes are independent and never normalized, so a
// diagonal moves at speed*sqrt(2).
func (p *Player) Steer(s input.State) {
	p.Velocity = geom.Vec{}
	if p.Sitting {
		return
	}

	switch {
	case s.Left:
		p.Velocity.X = -p.speed
	case s.Right:
		p.Velocity.X = p.speed
	}

	switch {
	case s.Up:
		p.Velocity.Y = -p.speed
	case s.Down:
		p.Velocity.Y = p.speed
	}
}

// SitOn snaps the avatar onto the chair and disables its body.
func (p *Player) SitOn(chair *entities.Entity) {
	p.Position = chair.Position()
	p.Velocity = geom.Vec{}
	p.Sitting = true
	p.Seat = chair
	p.bodyEnabled = false
}

// Stand re-enables the body where the avatar sits. It returns the chair left behind.
func (p *Player) Stand() *entities.Entity {
	seat := p.Seat
	p.Sitting = false
	p.Seat = nil
	p.bodyEnabled = true
	return seat
}
