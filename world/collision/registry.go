// Package collision groups the office geometry for movement resolution. A
// resolv space does the broad phase, exact AABB tests decide the rest.
package collision

import (
	"math"

	"example.com/office/geom"
	"example.com/office/world/entities"
	"github.com/solarlune/resolv"
)

type Category int

const (
	CategoryImpassable Category = iota
	CategoryToggleable
	CategoryInteractable
)

func (c Category) Tag() string {
	switch c {
	case CategoryToggleable:
		return "toggleable"
	case CategoryInteractable:
		return "interactable"
	default:
		return "impassable"
	}
}

// CategoryOf maps an entity kind onto the collision category it belongs to.
func CategoryOf(kind entities.Kind) Category {
	switch kind {
	case entities.KindDoor:
		return CategoryToggleable
	case entities.KindChair:
		return CategoryInteractable
	default:
		return CategoryImpassable
	}
}

const (
	cellSize = 20

	// resolv maps bounds onto cells with a one unit inset on the far edge,
	// so probes are grown past it to never miss a touching body
	probePadding = 2.0
)

type Registry struct {
	space  *resolv.Space
	probe  *resolv.Object
	bodies []*resolv.Object
	bounds geom.Rect

	impassable   []*entities.Entity
	toggleable   []*entities.Entity
	interactable []*entities.Entity

	exempt *entities.Entity
}

func NewRegistry(arena *entities.Arena, bounds geom.Rect) *Registry {
	r := &Registry{
		space:  resolv.NewSpace(int(math.Ceil(bounds.W)), int(math.Ceil(bounds.H)), cellSize, cellSize),
		probe:  resolv.NewObject(0, 0, 1, 1, "probe"),
		bounds: bounds,
	}

	for _, e := range arena.All() {
		category := CategoryOf(e.Kind)
		switch category {
		case CategoryToggleable:
			r.toggleable = append(r.toggleable, e)
		case CategoryInteractable:
			r.interactable = append(r.interactable, e)
		default:
			r.impassable = append(r.impassable, e)
		}

		body := resolv.NewObject(
			e.Rect.MinX()-bounds.MinX(),
			e.Rect.MinY()-bounds.MinY(),
			e.Rect.W,
			e.Rect.H,
			category.Tag(),
		)
		body.Data = e
		r.bodies = append(r.bodies, body)
	}

	r.space.Add(r.bodies...)
	r.space.Add(r.probe)

	return r
}

func (r *Registry) Impassable() []*entities.Entity   { return r.impassable }
func (r *Registry) Toggleable() []*entities.Entity   { return r.toggleable }
func (r *Registry) Interactable() []*entities.Entity { return r.interactable }

func (r *Registry) Bounds() geom.Rect { return r.bounds }

// Candidates returns every entity currently blocking the avatar whose box
// overlaps or touches area.
func (r *Registry) Candidates(area geom.Rect) []*entities.Entity {
	if r == nil || r.space == nil {
		return nil
	}

	padded := area.Inflate(probePadding)
	r.probe.X = padded.MinX() - r.bounds.MinX()
	r.probe.Y = padded.MinY() - r.bounds.MinY()
	r.probe.W = padded.W
	r.probe.H = padded.H
	r.probe.Update()

	collision := r.probe.Check(0, 0)
	if collision == nil {
		return nil
	}

	var out []*entities.Entity
	for _, obj := range collision.Objects {
		e, ok := obj.Data.(*entities.Entity)
		if !ok || !r.blocks(e) {
			continue
		}
		if e.Rect.Touches(area) {
			out = append(out, e)
		}
	}
	return out
}

// Colliding returns the blocking entities strictly overlapping body.
func (r *Registry) Colliding(body geom.Rect) []*entities.Entity {
	var out []*entities.Entity
	for _, e := range r.Candidates(body) {
		if e.Rect.Overlaps(body) {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) blocks(e *entities.Entity) bool {
	return e.Collidable() && e != r.exempt
}

// Exempt lets the avatar walk out of the chair it just stood up from. The
// exemption lasts until Settle sees the avatar clear of the chair.
func (r *Registry) Exempt(chair *entities.Entity) {
	r.exempt = chair
}

func (r *Registry) Exempted() *entities.Entity { return r.exempt }

// Settle drops the seat exemption once body no longer overlaps the chair.
func (r *Registry) Settle(body geom.Rect) {
	if r.exempt != nil && !r.exempt.Rect.Overlaps(body) {
		r.exempt = nil
	}
}

// Release removes every body from the space. Calling it again is a no-op.
func (r *Registry) Release() {
	if r == nil || r.space == nil {
		return
	}

	r.space.Remove(r.bodies...)
	r.space.Remove(r.probe)

	r.space = nil
	r.bodies = nil
	r.exempt = nil
}

func (r *Registry) Released() bool { return r == nil || r.space == nil }
