package entities

import (
	"fmt"
	"slices"

	"example.com/office/geom"
	"github.com/google/uuid"
)

type Kind int

const (
	KindWall Kind = iota
	KindFurniture
	KindDoor
	KindChair
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFurniture:
		return "furniture"
	case KindDoor:
		return "door"
	case KindChair:
		return "chair"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const TagManager = "manager"

// palette of the office view
const (
	ColorFloor        uint32 = 0x808080
	ColorWall         uint32 = 0x333333
	ColorDoor         uint32 = 0xA0522D
	ColorDoorOpen     uint32 = 0xCD853F
	ColorTable        uint32 = 0x8B4513
	ColorChair        uint32 = 0x4169E1
	ColorManagerChair uint32 = 0x800000
	ColorPlayer       uint32 = 0x00FF00
)

// Fill is the tint a rendering adapter paints an entity with.
type Fill struct {
	Color uint32
	Alpha float64
}

var (
	closedDoorFill = Fill{Color: ColorDoor, Alpha: 1}
	openDoorFill   = Fill{Color: ColorDoorOpen, Alpha: 0.5}
)

type Entity struct {
	Id     string
	Index  int
	Kind   Kind
	Rect   geom.Rect
	RoomId string
	Fill   Fill
	Tags   []string

	collidable bool
}

func NewEntity(kind Kind, rect geom.Rect, roomId string, fill Fill, tags ...string) *Entity {
	return &Entity{
		Id:         uuid.NewString(),
		Kind:       kind,
		Rect:       rect,
		RoomId:     roomId,
		Fill:       fill,
		Tags:       tags,
		collidable: true,
	}
}

// NewDoor creates a closed door.
func NewDoor(rect geom.Rect, roomId string) *Entity {
	return NewEntity(KindDoor, rect, roomId, closedDoorFill)
}

func (e *Entity) Collidable() bool { return e.collidable }

func (e *Entity) HasTag(tag string) bool { return slices.Contains(e.Tags, tag) }

func (e *Entity) Position() geom.Vec { return e.Rect.Center }

// Open reports whether a door lets bodies through.
func (e *Entity) Open() bool { return e.Kind == KindDoor && !e.collidable }

// ToggleDoor flips a door between closed and open, keeping its collision flag
// and fill in step. It returns the new open state.
func (e *Entity) ToggleDoor() (bool, error) {
	if e.Kind != KindDoor {
		return false, fmt.Errorf("toggle door: entity %s is a %s", e.Id, e.Kind)
	}

	e.setDoorOpen(e.collidable)
	return e.Open(), nil
}

func (e *Entity) setDoorOpen(open bool) {
	e.collidable = !open
	if open {
		e.Fill = openDoorFill
	} else {
		e.Fill = closedDoorFill
	}
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s#%d(%.1f,%.1f)", e.Kind, e.Index, e.Rect.Center.X, e.Rect.Center.Y)
}
