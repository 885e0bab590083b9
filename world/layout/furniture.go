package layout

import (
	"example.com/office/geom"
	"example.com/office/world/entities"
)

const (
	chairSize        = 45.0
	managerChairSize = 50.0

	meetingChairs = 10
	meetingPitch  = 50.0

	workspaceRows     = 5
	workspaceCols     = 6
	workspacePitchX   = 200.0
	workspacePitchY   = 180.0
	workspaceChairGap = 40.0
)

var (
	tableFill        = entities.Fill{Color: entities.ColorTable, Alpha: 1}
	chairFill        = entities.Fill{Color: entities.ColorChair, Alpha: 1}
	managerChairFill = entities.Fill{Color: entities.ColorManagerChair, Alpha: 1}
)

func addTable(a *entities.Arena, roomId string, x, y, w, h float64) {
	a.Add(entities.NewEntity(entities.KindFurniture, geom.NewRect(x, y, w, h), roomId, tableFill))
}

func addChair(a *entities.Arena, roomId string, x, y float64) {
	a.Add(entities.NewEntity(entities.KindChair, geom.NewRect(x, y, chairSize, chairSize), roomId, chairFill))
}

// one long table with a row of chairs on each side
func furnishMeetingRoom(a *entities.Arena, roomId string, x, y float64) {
	addTable(a, roomId, x+350, y+200, 500, 100)

	startX := x + 125
	for i := 0; i < meetingChairs; i++ {
		cx := startX + float64(i)*meetingPitch
		addChair(a, roomId, cx, y+140)
		addChair(a, roomId, cx, y+260)
	}
}

// a desk, the manager's chair behind it and two visitor chairs in front
func furnishManagerOffice(a *entities.Arena, roomId string, x, y float64) {
	deskX, deskY := x+350, y+100
	addTable(a, roomId, deskX, deskY, 200, 80)

	a.Add(entities.NewEntity(
		entities.KindChair,
		geom.NewRect(deskX, deskY-60, managerChairSize, managerChairSize),
		roomId,
		managerChairFill,
		entities.TagManager,
	))
	addChair(a, roomId, deskX-50, deskY+60)
	addChair(a, roomId, deskX+50, deskY+60)
}

// a grid of desks, each with its chair just below
func furnishWorkspace(a *entities.Arena, roomId string, x, y float64) {
	startX, startY := x+150, y+100

	for r := 0; r < workspaceRows; r++ {
		for c := 0; c < workspaceCols; c++ {
			deskX := startX + float64(c)*workspacePitchX
			deskY := startY + float64(r)*workspacePitchY
			addTable(a, roomId, deskX, deskY, 100, 60)
			addChair(a, roomId, deskX, deskY+workspaceChairGap)
		}
	}
}
