package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectBounds(t *testing.T) {
	r := NewRect(100, 50, 40, 20)

	assert.Equal(t, 80.0, r.MinX())
	assert.Equal(t, 120.0, r.MaxX())
	assert.Equal(t, 40.0, r.MinY())
	assert.Equal(t, 60.0, r.MaxY())

	assert.Equal(t, r, RectFromBounds(80, 40, 120, 60))
}

func TestOverlapIsStrict(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	assert.True(t, a.Overlaps(NewRect(9, 0, 10, 10)))
	assert.False(t, a.Overlaps(NewRect(10, 0, 10, 10)), "shared edge is not an overlap")
	assert.True(t, a.Touches(NewRect(10, 0, 10, 10)))
	assert.False(t, a.Touches(NewRect(10.5, 0, 10, 10)))
}

func TestPenetration(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(8, 1, 10, 10)

	x, y := a.Penetration(b)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 9.0, y)

	x, _ = a.Penetration(NewRect(30, 0, 10, 10))
	assert.Less(t, x, 0.0)
}

func TestUnionAndWithin(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 0, 10, 10)

	u := a.Union(b)
	assert.Equal(t, -5.0, u.MinX())
	assert.Equal(t, 25.0, u.MaxX())
	assert.True(t, a.Within(u))
	assert.True(t, b.Within(u))
	assert.False(t, u.Within(a))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Vec{X: 0, Y: 0}.DistanceTo(Vec{X: 3, Y: 4}))
	assert.InDelta(t, 200*math.Sqrt2, Vec{X: 200, Y: 200}.Length(), 1e-9)
	assert.Equal(t, 3.0, Clamp(5, 0, 3))
	assert.Equal(t, 0.0, Clamp(-1, 0, 3))
}

func TestVecFinite(t *testing.T) {
	assert.True(t, Vec{X: 900, Y: -5000}.Finite())
	assert.False(t, Vec{X: math.NaN(), Y: 500}.Finite())
	assert.False(t, Vec{X: 0, Y: math.Inf(-1)}.Finite())
}
