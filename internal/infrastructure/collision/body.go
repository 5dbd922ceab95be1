package collision

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/younwookim/pirate/internal/domain/entity"
)

// Body is a dynamic box collider moved by the integrator.
// Velocity is y-up (positive = ascending), positions are y-down world coordinates.
type Body struct {
	obj      *resolv.Object
	collider entity.Collider
	velocity entity.Vec2

	OnWallLeft  bool
	OnWallRight bool
	OnFloor     bool
	OnCeiling   bool
}

// AddBody adds a dynamic body at pos (sprite top-left) with the given collider
func (w *World) AddBody(pos entity.Vec2, collider entity.Collider, tags ...string) *Body {
	r := collider.GetWorldRect(pos)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	w.space.Add(obj)
	return &Body{obj: obj, collider: collider}
}

// RemoveBody removes the body from the world
func (w *World) RemoveBody(b *Body) {
	w.space.Remove(b.obj)
}

// Collider returns the world-space collider rect
func (b *Body) Collider() entity.Rect {
	return rectOf(b.obj)
}

// Position returns the sprite top-left position
func (b *Body) Position() entity.Vec2 {
	return entity.Vec2{X: b.obj.X - b.collider.OffsetX, Y: b.obj.Y - b.collider.OffsetY}
}

// Feet returns the bottom-center of the collider
func (b *Body) Feet() entity.Vec2 {
	return b.collider.Feet(b.Position())
}

// Teleport moves the body without collision and clears its velocity
func (b *Body) Teleport(pos entity.Vec2) {
	r := b.collider.GetWorldRect(pos)
	b.obj.X, b.obj.Y = r.X, r.Y
	b.obj.Update()
	b.velocity = entity.Vec2{}
}

// Velocity returns the velocity the integrator will apply
func (b *Body) Velocity() entity.Vec2 {
	return b.velocity
}

// SetVelocity sets the velocity applied on the next Integrate
func (b *Body) SetVelocity(v entity.Vec2) {
	b.velocity = v
}

// Integrate moves b by its velocity over dt, X axis first, then Y.
// Movement stops at the first solid on each axis and the blocked velocity component is zeroed.
func (w *World) Integrate(b *Body, dt float64) {
	b.OnWallLeft, b.OnWallRight = false, false
	b.OnFloor, b.OnCeiling = false, false

	dx := b.velocity.X * dt
	dy := -b.velocity.Y * dt

	if dx != 0 {
		w.moveX(b, dx)
	}
	if dy != 0 {
		w.moveY(b, dy)
	}
}

// moveX moves the body horizontally with collision
func (w *World) moveX(b *Body, dx float64) {
	r := b.Collider()
	swept := r
	if dx > 0 {
		swept.W += dx
	} else {
		swept.X += dx
		swept.W -= dx
	}

	allowed := math.Abs(dx)
	var stop *resolv.Object
	for _, obj := range w.candidates(swept, TagSolid) {
		other := rectOf(obj)
		if overlapLen(r.Y, r.Y+r.H, other.Y, other.Y+other.H) <= contactEpsilon {
			continue
		}
		var gap float64
		if dx > 0 {
			gap = other.X - (r.X + r.W)
		} else {
			gap = r.X - (other.X + other.W)
		}
		if gap < -contactEpsilon {
			continue // already overlapping or behind
		}
		gap = math.Max(gap, 0)
		if gap < allowed {
			allowed = gap
			stop = obj
		}
	}

	if stop == nil {
		b.obj.X += dx
	} else if dx > 0 {
		b.obj.X = stop.X - b.obj.W
		b.OnWallRight = true
		b.velocity.X = 0
	} else {
		b.obj.X = stop.X + stop.W
		b.OnWallLeft = true
		b.velocity.X = 0
	}
	b.obj.Update()
}

// moveY moves the body vertically with collision (dy > 0 is downward)
func (w *World) moveY(b *Body, dy float64) {
	r := b.Collider()
	swept := r
	if dy > 0 {
		swept.H += dy
	} else {
		swept.Y += dy
		swept.H -= dy
	}

	allowed := math.Abs(dy)
	var stop *resolv.Object
	for _, obj := range w.candidates(swept, TagSolid) {
		other := rectOf(obj)
		if overlapLen(r.X, r.X+r.W, other.X, other.X+other.W) <= contactEpsilon {
			continue
		}
		var gap float64
		if dy > 0 {
			gap = other.Y - (r.Y + r.H)
		} else {
			gap = r.Y - (other.Y + other.H)
		}
		if gap < -contactEpsilon {
			continue
		}
		gap = math.Max(gap, 0)
		if gap < allowed {
			allowed = gap
			stop = obj
		}
	}

	if stop == nil {
		b.obj.Y += dy
	} else if dy > 0 {
		b.obj.Y = stop.Y - b.obj.H
		b.OnFloor = true
		b.velocity.Y = 0
	} else {
		b.obj.Y = stop.Y + stop.H
		b.OnCeiling = true
		b.velocity.Y = 0
	}
	b.obj.Update()
}
