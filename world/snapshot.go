package world

import (
	"slices"

	"example.com/office/geom"
	"example.com/office/input"
	"example.com/office/world/entities"
	"example.com/office/world/interact"
)

type PlayerView struct {
	Position    geom.Vec
	Velocity    geom.Vec
	Body        geom.Rect
	BodyEnabled bool
	State       interact.SeatState
	// SeatIndex is the chair's index in the chair collection, -1 when standing.
	SeatIndex int
}

type EntityView struct {
	Id         string
	Index      int
	Kind       entities.Kind
	Rect       geom.Rect
	RoomId     string
	Collidable bool
	Fill       entities.Fill
	Tags       []string
}

// Snapshot is a copy of everything a renderer needs for one frame. Changing
// it never affects the simulation.
type Snapshot struct {
	Tick      uint64
	Player    PlayerView
	Walls     []EntityView
	Furniture []EntityView
	Doors     []EntityView
	Chairs    []EntityView
	Rooms     []entities.Room
	Help      string
}

func (w *World) Snapshot() Snapshot {
	if w == nil || w.player == nil || w.arena == nil {
		return Snapshot{Player: PlayerView{SeatIndex: -1}, Help: input.HelpText}
	}

	p := w.player
	pv := PlayerView{
		Position:    p.Position,
		Velocity:    p.Velocity,
		Body:        p.Body(),
		BodyEnabled: p.BodyEnabled(),
		State:       interact.StateOf(p),
		SeatIndex:   -1,
	}
	if p.Seat != nil {
		pv.SeatIndex = p.Seat.Index
	}

	return Snapshot{
		Tick:      w.tick,
		Player:    pv,
		Walls:     viewsOf(w.arena.Walls),
		Furniture: viewsOf(w.arena.Furniture),
		Doors:     viewsOf(w.arena.Doors),
		Chairs:    viewsOf(w.arena.Chairs),
		Rooms:     slices.Clone(w.arena.Rooms),
		Help:      input.HelpText,
	}
}

func viewsOf(collection []*entities.Entity) []EntityView {
	views := make([]EntityView, len(collection))
	for i, e := range collection {
		views[i] = EntityView{
			Id:         e.Id,
			Index:      e.Index,
			Kind:       e.Kind,
			Rect:       e.Rect,
			RoomId:     e.RoomId,
			Collidable: e.Collidable(),
			Fill:       e.Fill,
			Tags:       slices.Clone(e.Tags),
		}
	}
	return views
}
