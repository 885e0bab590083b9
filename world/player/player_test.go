package player

import (
	"math"
	"testing"

	"example.com/office/geom"
	"example.com/office/input"
	"example.com/office/world/collision"
	"example.com/office/world/entities"
	"example.com/office/world/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld(t *testing.T, rects ...geom.Rect) *collision.Registry {
	t.Helper()

	a := entities.NewArena()
	for _, r := range rects {
		a.Add(entities.NewEntity(entities.KindWall, r, "", entities.Fill{}))
	}

	reg := collision.NewRegistry(a, layout.Bounds())
	t.Cleanup(reg.Release)
	return reg
}

func TestNewPlayerBody(t *testing.T) {
	p := NewPlayer(DefaultSpawn, DefaultSprite, DefaultSpeed)

	assert.Equal(t, geom.NewRect(900, 500, 32, 32), p.Body())
	assert.True(t, p.BodyEnabled())
	assert.False(t, p.Sitting)

	fallback := NewPlayer(DefaultSpawn, geom.Vec{}, math.NaN())
	assert.Equal(t, DefaultSpeed, fallback.Speed())
	assert.Equal(t, 32.0, fallback.Body().W)

	nan := NewPlayer(geom.Vec{X: math.NaN(), Y: 500}, geom.Vec{X: math.Inf(1), Y: 80}, DefaultSpeed)
	assert.Equal(t, DefaultSpawn, nan.Position)
	assert.Equal(t, geom.NewRect(900, 500, 32, 32), nan.Body())
}

func TestPlaceWithin(t *testing.T) {
	p := NewPlayer(geom.Vec{X: -5000, Y: 1990}, DefaultSprite, DefaultSpeed)
	p.PlaceWithin(layout.Bounds())

	assert.Equal(t, geom.Vec{X: 16, Y: 1984}, p.Position)
	assert.True(t, p.Body().Within(layout.Bounds()))
}

func TestSteer(t *testing.T) {
	p := NewPlayer(DefaultSpawn, DefaultSprite, 200)

	p.Steer(input.State{Left: true, Right: true})
	assert.Equal(t, geom.Vec{X: -200}, p.Velocity, "left wins over right")

	p.Steer(input.State{Up: true, Down: true})
	assert.Equal(t, geom.Vec{Y: -200}, p.Velocity, "up wins over down")

	p.Steer(input.State{Right: true, Down: true})
	assert.Equal(t, geom.Vec{X: 200, Y: 200}, p.Velocity)
	assert.InDelta(t, 200*math.Sqrt2, p.Velocity.Length(), 1e-9, "diagonals are not normalized")

	p.Steer(input.State{})
	assert.Equal(t, geom.Vec{}, p.Velocity)
}

func TestIntegrateFreeMovement(t *testing.T) {
	w := newWorld(t)
	p := NewPlayer(geom.Vec{X: 500, Y: 500}, DefaultSprite, 200)

	p.Steer(input.State{Right: true, Up: true})
	p.Integrate(0.5, w)

	assert.Equal(t, geom.Vec{X: 600, Y: 400}, p.Position)
}

func TestIntegrateStopsAtWall(t *testing.T) {
	w := newWorld(t, geom.NewRect(200, 500, 10, 400))
	p := NewPlayer(geom.Vec{X: 150, Y: 500}, DefaultSprite, 200)

	p.Steer(input.State{Right: true})
	p.Integrate(1, w)

	assert.Equal(t, 179.0, p.Position.X, "flush against the wall's left face")
	assert.Empty(t, w.Colliding(p.Body()))

	// sliding along the wall still works
	p.Steer(input.State{Right: true, Down: true})
	p.Integrate(0.1, w)
	assert.Equal(t, 179.0, p.Position.X)
	assert.Equal(t, 520.0, p.Position.Y)
}

func TestIntegrateDoesNotTunnel(t *testing.T) {
	w := newWorld(t, geom.NewRect(200, 500, 10, 400))
	p := NewPlayer(geom.Vec{X: 150, Y: 500}, DefaultSprite, 200)

	p.Steer(input.State{Right: true})
	p.Integrate(10, w)

	assert.Equal(t, 179.0, p.Position.X)
}

func TestIntegrateKeepsBodyInBounds(t *testing.T) {
	w := newWorld(t)
	p := NewPlayer(geom.Vec{X: 20, Y: 1990}, DefaultSprite, 200)

	p.Steer(input.State{Left: true, Down: true})
	p.Integrate(5, w)

	assert.Equal(t, geom.Vec{X: 16, Y: 1984}, p.Position)
	assert.True(t, p.Body().Within(layout.Bounds()))
}

func TestIntegrateIgnoresBadDelta(t *testing.T) {
	w := newWorld(t)
	p := NewPlayer(geom.Vec{X: 500, Y: 500}, DefaultSprite, 200)

	p.Steer(input.State{Right: true})
	for _, dt := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		p.Integrate(dt, w)
		assert.Equal(t, geom.Vec{X: 500, Y: 500}, p.Position)
	}
}

func TestSittingFreezesMovement(t *testing.T) {
	w := newWorld(t)
	chair := entities.NewEntity(entities.KindChair, geom.NewRect(520, 480, 45, 45), "room", entities.Fill{})
	p := NewPlayer(geom.Vec{X: 500, Y: 500}, DefaultSprite, 200)

	p.SitOn(chair)
	require.Equal(t, geom.Vec{X: 520, Y: 480}, p.Position)
	require.False(t, p.BodyEnabled())

	for i := 0; i < 10; i++ {
		p.Steer(input.State{Left: true, Down: true})
		p.Integrate(0.1, w)
	}
	assert.Equal(t, geom.Vec{X: 520, Y: 480}, p.Position)
	assert.Equal(t, geom.Vec{}, p.Velocity)

	assert.Equal(t, chair, p.Stand())
	assert.True(t, p.BodyEnabled())
	assert.Nil(t, p.Seat)
}

func TestIntegratePushesOutOfOverlap(t *testing.T) {
	// a door closed on top of the avatar: 10 units thick, body 32
	w := newWorld(t, geom.NewRect(500, 505, 120, 10))
	p := NewPlayer(geom.Vec{X: 500, Y: 500}, DefaultSprite, 200)
	require.NotEmpty(t, w.Colliding(p.Body()))

	p.Integrate(0, w)

	assert.Equal(t, geom.Vec{X: 500, Y: 484}, p.Position)
	assert.Empty(t, w.Colliding(p.Body()))
}
