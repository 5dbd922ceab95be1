package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointCounter(t *testing.T) {
	c := NewPointCounter(0.5)
	var awarded []int
	c.OnPoints = func(p int) { awarded = append(awarded, p) }
	assert.Equal(t, 0, c.Points)

	c.Update(0.25)
	assert.Equal(t, 1, c.Points, "first point when the voyage starts")

	c.Update(0.25)
	assert.Equal(t, 2, c.Points)

	c.Update(1.25) // long step awards every interval it covers
	assert.Equal(t, 4, c.Points)
	assert.Equal(t, []int{1, 2, 3, 4}, awarded)

	c.Reset()
	assert.Equal(t, 0, c.Points)
	c.Update(0.25)
	assert.Equal(t, 1, c.Points, "partial interval is cleared by Reset")
	c.Update(0.25)
	assert.Equal(t, 2, c.Points)
}

func TestPointCounter_DefaultInterval(t *testing.T) {
	c := NewPointCounter(0)
	assert.Equal(t, 1.0, c.Interval)
}

func TestMenu(t *testing.T) {
	var m Menu
	assert.False(t, m.Visible())

	m.Update(false)
	assert.False(t, m.Visible())

	m.Update(true)
	assert.True(t, m.Visible())

	m.Update(false)
	assert.True(t, m.Visible(), "only a release toggles")

	m.Update(true)
	assert.False(t, m.Visible())
}

func TestProgressFill(t *testing.T) {
	var p ProgressFill
	assert.Equal(t, 0.0, p.Amount())

	p.Set(0.4)
	assert.Equal(t, 0.4, p.Amount())

	p.Set(2)
	assert.Equal(t, 1.0, p.Amount())

	p.Set(-1)
	assert.Equal(t, 0.0, p.Amount())
}
