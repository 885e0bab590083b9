package entities

import "example.com/office/geom"

// Label is the text annotation drawn at a room's corner.
type Label struct {
	Text     string
	Position geom.Vec
}

// Room is a logical region used for annotation and for tagging the chairs it
// owns. It is not a collision entity.
type Room struct {
	Id     string
	Name   string
	Bounds geom.Rect
	Label  Label
}

// Arena holds every static entity of one office, grouped in four disjoint
// collections. Indices inside a collection are stable for the lifetime of
// the arena.
type Arena struct {
	Walls     []*Entity
	Furniture []*Entity
	Doors     []*Entity
	Chairs    []*Entity
	Rooms     []Room
}

func NewArena() *Arena {
	return &Arena{}
}

// Add appends an entity to the collection for its kind and assigns its index.
func (a *Arena) Add(e *Entity) *Entity {
	collection := a.collection(e.Kind)
	e.Index = len(*collection)
	*collection = append(*collection, e)
	return e
}

func (a *Arena) AddRoom(r Room) {
	a.Rooms = append(a.Rooms, r)
}

func (a *Arena) collection(kind Kind) *[]*Entity {
	switch kind {
	case KindWall:
		return &a.Walls
	case KindDoor:
		return &a.Doors
	case KindChair:
		return &a.Chairs
	default:
		return &a.Furniture
	}
}

func (a *Arena) All() []*Entity {
	all := make([]*Entity, 0, len(a.Walls)+len(a.Furniture)+len(a.Doors)+len(a.Chairs))
	all = append(all, a.Walls...)
	all = append(all, a.Furniture...)
	all = append(all, a.Doors...)
	all = append(all, a.Chairs...)
	return all
}

func (a *Arena) Room(id string) (Room, bool) {
	for _, r := range a.Rooms {
		if r.Id == id {
			return r, true
		}
	}
	return Room{}, false
}
