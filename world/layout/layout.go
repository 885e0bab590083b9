// Package layout builds the static office: three rooms with their walls,
// doors and furniture. The result is plain data; nothing here moves.
package layout

import (
	"example.com/office/geom"
	"example.com/office/world/entities"
)

const (
	WorldWidth  = 2000.0
	WorldHeight = 2000.0

	WallThickness = 10.0
	DoorWidth     = 120.0
	DoorThickness = 10.0

	RoomMeeting   = "meeting-room"
	RoomManager   = "manager-office"
	RoomWorkspace = "workspace"
)

// DoorSide picks which wall of a room carries the door gap and where.
type DoorSide int

const (
	DoorBottom DoorSide = iota
	DoorBottomLeft
	DoorTop
)

// bottom-left gaps are centered this far from the room's left edge
const offsetGapCenter = 100.0

type roomPlan struct {
	id, name   string
	x, y, w, h float64
	door       DoorSide
	furnish    func(a *entities.Arena, id string, x, y float64)
}

var plans = []roomPlan{
	// 300 units of corridor separate every pair of rooms
	{id: RoomMeeting, name: "Meeting Room", x: 50, y: 50, w: 700, h: 400, door: DoorBottom, furnish: furnishMeetingRoom},
	{id: RoomManager, name: "Manager Office", x: 1050, y: 50, w: 700, h: 400, door: DoorBottomLeft, furnish: furnishManagerOffice},
	{id: RoomWorkspace, name: "Workspace", x: 50, y: 750, w: 1700, h: 1100, door: DoorTop, furnish: furnishWorkspace},
}

// Bounds is the rectangle avatars are kept inside.
func Bounds() geom.Rect {
	return geom.RectFromBounds(0, 0, WorldWidth, WorldHeight)
}

// Build constructs a fresh office arena.
func Build() *entities.Arena {
	a := entities.NewArena()

	for _, p := range plans {
		for _, wall := range WallsWithDoor(p.x, p.y, p.w, p.h, p.door) {
			a.Add(entities.NewEntity(entities.KindWall, wall, p.id, entities.Fill{Color: entities.ColorWall, Alpha: 1}))
		}
		a.Add(entities.NewDoor(DoorRect(p.x, p.y, p.w, p.h, p.door), p.id))

		p.furnish(a, p.id, p.x, p.y)

		a.AddRoom(entities.Room{
			Id:     p.id,
			Name:   p.name,
			Bounds: geom.RectFromBounds(p.x, p.y, p.x+p.w, p.y+p.h),
			Label: entities.Label{
				Text:     p.name,
				Position: geom.Vec{X: p.x + 20, Y: p.y + 20},
			},
		})
	}

	return a
}

// gapCenter is the distance from the room's left edge to the middle of its door gap.
func gapCenter(w float64, side DoorSide) float64 {
	if side == DoorBottomLeft {
		return offsetGapCenter
	}
	return w / 2
}

// WallsWithDoor returns the four walls of a room whose top-left corner is at
// (x, y). The two walls without a door are full length, the door wall is
// split in two segments flanking a DoorWidth gap.
func WallsWithDoor(x, y, w, h float64, side DoorSide) []geom.Rect {
	t := WallThickness

	walls := []geom.Rect{
		geom.NewRect(x, y+h/2, t, h),   // left
		geom.NewRect(x+w, y+h/2, t, h), // right
	}

	doorY, fullY := y+h, y
	if side == DoorTop {
		doorY, fullY = y, y+h
	}
	walls = append(walls, geom.NewRect(x+w/2, fullY, w, t))

	gc := gapCenter(w, side)
	leftW := gc - DoorWidth/2
	rightW := w - gc - DoorWidth/2
	walls = append(walls,
		geom.NewRect(x+leftW/2, doorY, leftW, t),
		geom.NewRect(x+w-rightW/2, doorY, rightW, t),
	)

	return walls
}

// DoorRect is the door placed exactly at the center of a room's gap.
func DoorRect(x, y, w, h float64, side DoorSide) geom.Rect {
	doorY := y + h
	if side == DoorTop {
		doorY = y
	}
	return geom.NewRect(x+gapCenter(w, side), doorY, DoorWidth, DoorThickness)
}
