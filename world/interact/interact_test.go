package interact

import (
	"testing"

	"example.com/office/geom"
	"example.com/office/world/entities"
	"example.com/office/world/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeating struct {
	exempt *entities.Entity
}

func (f *fakeSeating) Exempt(chair *entities.Entity) { f.exempt = chair }

func (f *fakeSeating) Settle(body geom.Rect) {
	if f.exempt != nil && !f.exempt.Rect.Overlaps(body) {
		f.exempt = nil
	}
}

func door(x, y float64) *entities.Entity {
	return entities.NewDoor(geom.NewRect(x, y, 120, 10), "room")
}

func chair(x, y float64, room string) *entities.Entity {
	return entities.NewEntity(entities.KindChair, geom.NewRect(x, y, 45, 45), room, entities.Fill{})
}

func TestNearestPicksClosestWithinRadius(t *testing.T) {
	from := geom.Vec{X: 0, Y: 0}
	far := door(100, 0)
	near := door(0, 50)
	outside := door(0, -10)
	outside.Rect.Center = geom.Vec{X: 200, Y: 200}

	assert.Equal(t, near, Nearest(from, []*entities.Entity{far, near, outside}, 120))
	assert.Equal(t, far, Nearest(from, []*entities.Entity{far, outside}, 120))
	assert.Nil(t, Nearest(from, []*entities.Entity{outside}, 120))
	assert.Nil(t, Nearest(from, nil, 120))
}

func TestNearestRadiusIsExclusive(t *testing.T) {
	from := geom.Vec{X: 0, Y: 0}
	edge := door(120, 0)

	assert.Nil(t, Nearest(from, []*entities.Entity{edge}, 120))
}

func TestNearestTieGoesToFirst(t *testing.T) {
	from := geom.Vec{X: 0, Y: 0}
	a, b := door(50, 0), door(-50, 0)

	assert.Equal(t, a, Nearest(from, []*entities.Entity{a, b}, 120))
	assert.Equal(t, b, Nearest(from, []*entities.Entity{b, a}, 120))
}

func TestDoorPressTogglesNearest(t *testing.T) {
	p := player.NewPlayer(geom.Vec{X: 400, Y: 400}, player.DefaultSprite, player.DefaultSpeed)
	near, other := door(400, 450), door(520, 450)
	doors := []*entities.Entity{other, near}
	resolver := DoorResolver{Radius: DefaultDoorRadius}

	assert.Equal(t, near, resolver.Press(p, doors))
	assert.True(t, near.Open())
	assert.False(t, other.Open())

	// a second press puts it back exactly as it was
	assert.Equal(t, near, resolver.Press(p, doors))
	assert.False(t, near.Open())
	assert.True(t, near.Collidable())
	assert.Equal(t, entities.Fill{Color: entities.ColorDoor, Alpha: 1}, near.Fill)
}

func TestDoorPressOutOfRange(t *testing.T) {
	p := player.NewPlayer(geom.Vec{X: 900, Y: 500}, player.DefaultSprite, player.DefaultSpeed)
	doors := []*entities.Entity{door(900, 700), door(700, 500), door(1100, 500)}

	assert.Nil(t, DoorResolver{Radius: DefaultDoorRadius}.Press(p, doors))
	for _, d := range doors {
		assert.False(t, d.Open())
	}
}

func TestSitAndStand(t *testing.T) {
	reg := &fakeSeating{}
	p := player.NewPlayer(geom.Vec{X: 900, Y: 500}, player.DefaultSprite, player.DefaultSpeed)
	seat := chair(900, 460, "meeting-room")
	resolver := SeatResolver{Radius: DefaultChairRadius}

	ev, ok := resolver.Press(p, []*entities.Entity{seat}, reg)
	require.True(t, ok)
	assert.Equal(t, entities.SatDown("meeting-room"), ev)
	assert.Equal(t, Sitting, StateOf(p))
	assert.Equal(t, geom.Vec{X: 900, Y: 460}, p.Position)
	assert.False(t, p.BodyEnabled())

	ev, ok = resolver.Press(p, []*entities.Entity{seat}, reg)
	require.True(t, ok)
	assert.Equal(t, entities.StoodUp(), ev)
	assert.Equal(t, Standing, StateOf(p))
	assert.Equal(t, geom.Vec{X: 900, Y: 460}, p.Position)
	assert.True(t, p.BodyEnabled())
	assert.Equal(t, seat, reg.exempt, "the vacated chair stays passable until the avatar leaves it")
}

func TestSitOutOfRangeIsNoop(t *testing.T) {
	reg := &fakeSeating{}
	p := player.NewPlayer(geom.Vec{X: 900, Y: 500}, player.DefaultSprite, player.DefaultSpeed)
	seat := chair(900, 440, "meeting-room")

	_, ok := SeatResolver{Radius: DefaultChairRadius}.Press(p, []*entities.Entity{seat}, reg)
	assert.False(t, ok)
	assert.Equal(t, Standing, StateOf(p))
	assert.Equal(t, geom.Vec{X: 900, Y: 500}, p.Position)
}

func TestSitPicksNearestChair(t *testing.T) {
	reg := &fakeSeating{}
	p := player.NewPlayer(geom.Vec{X: 0, Y: 0}, player.DefaultSprite, player.DefaultSpeed)
	a, b, c := chair(50, 0, "a"), chair(0, 30, "b"), chair(-40, 0, "c")

	ev, ok := SeatResolver{Radius: DefaultChairRadius}.Press(p, []*entities.Entity{a, b, c}, reg)
	require.True(t, ok)
	assert.Equal(t, "b", ev.RoomId)
	assert.Equal(t, b, p.Seat)
}

func TestSeatStateString(t *testing.T) {
	assert.Equal(t, "STANDING", Standing.String())
	assert.Equal(t, "SITTING", Sitting.String())
}
