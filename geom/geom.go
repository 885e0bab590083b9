// Package geom holds the 2D primitives shared by the office simulation.
// Rectangles are positioned by their center, the same origin every layout
// constant is expressed in.
package geom

import "math"

type Vec struct {
	X, Y float64
}

func (v Vec) Add(other Vec) Vec { return Vec{X: v.X + other.X, Y: v.Y + other.Y} }

func (v Vec) Sub(other Vec) Vec { return Vec{X: v.X - other.X, Y: v.Y - other.Y} }

func (v Vec) Mul(scalar float64) Vec { return Vec{X: v.X * scalar, Y: v.Y * scalar} }

func (v Vec) Length() float64 { return math.Hypot(v.X, v.Y) }

// Finite reports whether neither coordinate is NaN or infinite.
func (v Vec) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// DistanceTo is the euclidean distance between two points.
func (v Vec) DistanceTo(other Vec) float64 { return v.Sub(other).Length() }

// Rect is an axis-aligned bounding box centered on Center.
type Rect struct {
	Center Vec
	W, H   float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{Center: Vec{X: x, Y: y}, W: w, H: h}
}

// RectFromBounds builds a rect from its min/max corners.
func RectFromBounds(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		Center: Vec{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		W:      maxX - minX,
		H:      maxY - minY,
	}
}

func (r Rect) MinX() float64 { return r.Center.X - r.W/2 }
func (r Rect) MaxX() float64 { return r.Center.X + r.W/2 }
func (r Rect) MinY() float64 { return r.Center.Y - r.H/2 }
func (r Rect) MaxY() float64 { return r.Center.Y + r.H/2 }

// Overlaps reports a strict intersection; rects sharing only an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX() < o.MaxX() && r.MaxX() > o.MinX() &&
		r.MinY() < o.MaxY() && r.MaxY() > o.MinY()
}

// Touches is like Overlaps but also true for rects sharing an edge.
func (r Rect) Touches(o Rect) bool {
	return r.MinX() <= o.MaxX() && r.MaxX() >= o.MinX() &&
		r.MinY() <= o.MaxY() && r.MaxY() >= o.MinY()
}

// Within reports whether r lies entirely inside o.
func (r Rect) Within(o Rect) bool {
	return r.MinX() >= o.MinX() && r.MaxX() <= o.MaxX() &&
		r.MinY() >= o.MinY() && r.MaxY() <= o.MaxY()
}

func (r Rect) Union(o Rect) Rect {
	return RectFromBounds(
		math.Min(r.MinX(), o.MinX()),
		math.Min(r.MinY(), o.MinY()),
		math.Max(r.MaxX(), o.MaxX()),
		math.Max(r.MaxY(), o.MaxY()),
	)
}

// Inflate grows the rect by pad on every side.
func (r Rect) Inflate(pad float64) Rect {
	return Rect{Center: r.Center, W: r.W + 2*pad, H: r.H + 2*pad}
}

func (r Rect) MoveTo(center Vec) Rect {
	return Rect{Center: center, W: r.W, H: r.H}
}

// Penetration returns how far r reaches into o along each axis. Both values
// are positive only when the rects overlap.
func (r Rect) Penetration(o Rect) (x, y float64) {
	x = math.Min(r.MaxX(), o.MaxX()) - math.Max(r.MinX(), o.MinX())
	y = math.Min(r.MaxY(), o.MaxY()) - math.Max(r.MinY(), o.MinY())
	return x, y
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
