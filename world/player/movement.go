package player

import (
	"math"

	"example.com/office/geom"
)

// Integrate advances the avatar by its velocity over dt seconds and resolves
// the move against everything that blocks it. A seated avatar does not move.
func (p *Player) Integrate(dt float64, w World) {
	if p.Sitting || !p.bodyEnabled {
		p.Velocity = geom.Vec{}
		return
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	p.depenetrate(w)
	start := p.Position

	target := p.clampToBounds(start.Add(p.Velocity.Mul(dt)), w.Bounds())
	p.Position.X = p.sweepX(target.X, w)
	p.Position.Y = p.sweepY(target.Y, w)

	if len(w.Colliding(p.Body())) > 0 && len(w.Colliding(p.bodyAt(start))) == 0 {
		p.Position = start
	}

	w.Settle(p.Body())
}

// sweepX moves along X up to target, stopping flush against the first
// obstacle ahead. Obstacles are searched over the whole swept span, so no
// step length can tunnel through a wall.
func (p *Player) sweepX(target float64, w World) float64 {
	body := p.Body()
	dx := target - p.Position.X
	if dx == 0 {
		return target
	}

	half := p.body.X / 2
	swept := body.Union(p.bodyAt(geom.Vec{X: target, Y: p.Position.Y}))

	for _, e := range w.Candidates(swept) {
		r := e.Rect
		if body.MaxY() <= r.MinY() || body.MinY() >= r.MaxY() {
			continue
		}
		if dx > 0 && r.MinX() >= body.MaxX() {
			target = math.Min(target, r.MinX()-half)
		} else if dx < 0 && r.MaxX() <= body.MinX() {
			target = math.Max(target, r.MaxX()+half)
		}
	}
	return target
}

func (p *Player) sweepY(target float64, w World) float64 {
	body := p.Body()
	dy := target - p.Position.Y
	if dy == 0 {
		return target
	}

	half := p.body.Y / 2
	swept := body.Union(p.bodyAt(geom.Vec{X: p.Position.X, Y: target}))

	for _, e := range w.Candidates(swept) {
		r := e.Rect
		if body.MaxX() <= r.MinX() || body.MinX() >= r.MaxX() {
			continue
		}
		if dy > 0 && r.MinY() >= body.MaxY() {
			target = math.Min(target, r.MinY()-half)
		} else if dy < 0 && r.MaxY() <= body.MinY() {
			target = math.Max(target, r.MaxY()+half)
		}
	}
	return target
}

// depenetrate pushes the avatar out of anything it already overlaps, along
// the axis of least penetration. This happens after a door closes on the
// avatar.
func (p *Player) depenetrate(w World) {
	for pass := 0; pass < depenetrationPasses; pass++ {
		hits := w.Colliding(p.Body())
		if len(hits) == 0 {
			return
		}

		for _, e := range hits {
			body := p.Body()
			if !body.Overlaps(e.Rect) {
				continue
			}

			r := e.Rect
			px, py := body.Penetration(r)
			if px <= py {
				if p.Position.X < r.Center.X {
					p.Position.X = r.MinX() - p.body.X/2
				} else {
					p.Position.X = r.MaxX() + p.body.X/2
				}
			} else {
				if p.Position.Y < r.Center.Y {
					p.Position.Y = r.MinY() - p.body.Y/2
				} else {
					p.Position.Y = r.MaxY() + p.body.Y/2
				}
			}
		}

		p.Position = p.clampToBounds(p.Position, w.Bounds())
	}
}

// clampToBounds keeps the whole body inside the world.
func (p *Player) clampToBounds(pos geom.Vec, bounds geom.Rect) geom.Vec {
	hw, hh := p.body.X/2, p.body.Y/2
	return geom.Vec{
		X: geom.Clamp(pos.X, bounds.MinX()+hw, bounds.MaxX()-hw),
		Y: geom.Clamp(pos.Y, bounds.MinY()+hh, bounds.MaxY()-hh),
	}
}
