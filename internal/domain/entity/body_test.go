package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollider_GetWorldRect(t *testing.T) {
	tests := []struct {
		name string
		c    Collider
		pos  Vec2
		want Rect
	}{
		{
			name: "offset collider",
			c:    Collider{OffsetX: 2, OffsetY: 4, Width: 12, Height: 20},
			pos:  Vec2{X: 100, Y: 200},
			want: Rect{X: 102, Y: 204, W: 12, H: 20},
		},
		{
			name: "zero offset",
			c:    Collider{Width: 16, Height: 16},
			pos:  Vec2{X: 50, Y: 50},
			want: Rect{X: 50, Y: 50, W: 16, H: 16},
		},
		{
			name: "sub-pixel position",
			c:    Collider{OffsetX: 2, OffsetY: 2, Width: 12, Height: 22},
			pos:  Vec2{X: 10.5, Y: -3.25},
			want: Rect{X: 12.5, Y: -1.25, W: 12, H: 22},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.GetWorldRect(tt.pos))
		})
	}
}

func TestCollider_Feet(t *testing.T) {
	c := Collider{OffsetX: 2, OffsetY: 2, Width: 12, Height: 22}
	assert.Equal(t, Vec2{X: 40, Y: 144}, c.Feet(Vec2{X: 32, Y: 120}))
}

func TestVec2(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	assert.Equal(t, Vec2{X: 4, Y: 2}, a.Add(b))
	assert.Equal(t, Vec2{X: 2, Y: 6}, a.Sub(b))
	assert.Equal(t, Vec2{X: 1.5, Y: 2}, a.Scale(0.5))
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, 5.0, Distance(Vec2{}, a))
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	assert.Equal(t, Vec2{X: 10, Y: 20}, r.Min())
	assert.Equal(t, Vec2{X: 40, Y: 60}, r.Max())
	assert.Equal(t, Vec2{X: 25, Y: 40}, r.Center())
	assert.Equal(t, Rect{X: 11, Y: 18, W: 30, H: 40}, r.Offset(1, -2))
}

func TestRect_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"valid", Rect{W: 1, H: 1}, false},
		{"zero width", Rect{W: 0, H: 1}, true},
		{"negative height", Rect{W: 1, H: -1}, true},
		{"NaN position", Rect{X: math.NaN(), W: 1, H: 1}, true},
		{"infinite size", Rect{W: math.Inf(1), H: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Degenerate())
		})
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}), "touching edges do not overlap")
	assert.True(t, a.OverlapsX(Rect{X: 5, Y: 50, W: 1, H: 1}))
	assert.False(t, a.OverlapsY(Rect{X: 5, Y: 50, W: 1, H: 1}))
}

func TestCastDirection_String(t *testing.T) {
	assert.Equal(t, "down", CastDown.String())
	assert.Equal(t, "up", CastUp.String())
	assert.Equal(t, "unknown", CastDirection(9).String())
}
