package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIntent(t *testing.T) {
	tests := []struct {
		name      string
		grounded  bool
		velocityY float64
		axisX     float64
		want      MotionIntent
	}{
		{"grounded idle", true, -24, 0, MotionIntent{}},
		{"grounded running", true, -24, 1, MotionIntent{Running: true}},
		{"grounded with upward velocity", true, 100, 0, MotionIntent{}},
		{"rising", false, 100, 0, MotionIntent{Vertical: VerticalJumping}},
		{"apex counts as jumping", false, 0, -1, MotionIntent{Running: true, Vertical: VerticalJumping}},
		{"falling", false, -5, 0, MotionIntent{Vertical: VerticalFalling}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveIntent(tt.grounded, tt.velocityY, tt.axisX)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMotionIntent_String(t *testing.T) {
	assert.Equal(t, "idle", MotionIntent{}.String())
	assert.Equal(t, "running", MotionIntent{Running: true}.String())
	assert.Equal(t, "idle+falling", MotionIntent{Vertical: VerticalFalling}.String())
	assert.Equal(t, "running+jumping", MotionIntent{Running: true, Vertical: VerticalJumping}.String())

	assert.True(t, MotionIntent{Vertical: VerticalJumping}.Jumping())
	assert.False(t, MotionIntent{Vertical: VerticalJumping}.Falling())
}
