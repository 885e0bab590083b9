package interact

import (
	"example.com/office/geom"
	"example.com/office/world/entities"
	"example.com/office/world/player"
)

type SeatState int

const (
	Standing SeatState = iota
	Sitting
)

func (s SeatState) String() string {
	if s == Sitting {
		return "SITTING"
	}
	return "STANDING"
}

func StateOf(p *player.Player) SeatState {
	if p.Sitting {
		return Sitting
	}
	return Standing
}

// Seating is the part of the collision registry the seat machine touches.
type Seating interface {
	Exempt(chair *entities.Entity)
	Settle(body geom.Rect)
}

type SeatResolver struct {
	Radius float64
}

// Press runs one transition of the seat machine. Standing up always
// succeeds; sitting down needs a chair within reach. The returned event is
// only valid when ok is true.
func (s SeatResolver) Press(p *player.Player, chairs []*entities.Entity, reg Seating) (ev entities.Event, ok bool) {
	if StateOf(p) == Sitting {
		if seat := p.Stand(); seat != nil {
			reg.Exempt(seat)
			reg.Settle(p.Body())
		}
		return entities.StoodUp(), true
	}

	chair := Nearest(p.Position, chairs, s.Radius)
	if chair == nil {
		return entities.Event{}, false
	}

	reg.Exempt(nil)
	p.SitOn(chair)
	return entities.SatDown(chair.RoomId), true
}
