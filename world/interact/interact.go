// Package interact holds the two proximity state machines driven by button
// presses: toggling the nearest door and sitting on the nearest chair.
package interact

import (
	"example.com/office/geom"
	"example.com/office/world/entities"
	"example.com/office/world/player"
)

const (
	DefaultDoorRadius  = 120.0
	DefaultChairRadius = 60.0
)

// Nearest returns the candidate whose center is closest to from, provided it
// is strictly closer than radius. Ties go to the earliest candidate.
func Nearest(from geom.Vec, candidates []*entities.Entity, radius float64) *entities.Entity {
	var closest *entities.Entity
	minDist := radius

	for _, c := range candidates {
		dist := from.DistanceTo(c.Position())
		if dist < minDist {
			minDist = dist
			closest = c
		}
	}

	return closest
}

type DoorResolver struct {
	Radius float64
}

// Press toggles the door nearest to the avatar. It returns the toggled door,
// or nil when none is in reach.
func (d DoorResolver) Press(p *player.Player, doors []*entities.Entity) *entities.Entity {
	door := Nearest(p.Position, doors, d.Radius)
	if door == nil {
		return nil
	}

	if _, err := door.ToggleDoor(); err != nil {
		return nil
	}
	return door
}
