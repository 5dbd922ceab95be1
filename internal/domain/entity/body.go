package entity

// Collider is the character's box collider relative to its position.
// Position is the top-left of the sprite, offsets are in world units.
type Collider struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// GetWorldRect returns the collider rect in world coordinates
func (c Collider) GetWorldRect(pos Vec2) Rect {
	return Rect{
		X: pos.X + c.OffsetX,
		Y: pos.Y + c.OffsetY,
		W: c.Width,
		H: c.Height,
	}
}

// Feet returns the bottom-center point of the collider in world coordinates
func (c Collider) Feet(pos Vec2) Vec2 {
	r := c.GetWorldRect(pos)
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H}
}
