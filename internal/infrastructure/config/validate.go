package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a config value breaks an invariant
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the controller invariants: every value is non-negative and finite,
// fall speed and fall acceleration are positive so downward velocity stays bounded,
// and the early release modifier never weakens gravity.
func (c *ControllerConfig) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"maxSpeed", c.MaxSpeed},
		{"acceleration", c.Acceleration},
		{"groundDeceleration", c.GroundDeceleration},
		{"airDeceleration", c.AirDeceleration},
		{"jumpPower", c.JumpPower},
		{"fallAcceleration", c.FallAcceleration},
		{"maxFallSpeed", c.MaxFallSpeed},
		{"groundingForce", c.GroundingForce},
		{"jumpEndEarlyGravityModifier", c.JumpEndEarlyGravityModifier},
		{"coyoteTime", c.CoyoteTime},
		{"jumpBufferTime", c.JumpBufferTime},
		{"grounderDistance", c.GrounderDistance},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	if c.MaxFallSpeed == 0 {
		return fmt.Errorf("%w: maxFallSpeed must be positive", ErrInvalidConfig)
	}
	if c.FallAcceleration == 0 {
		return fmt.Errorf("%w: fallAcceleration must be positive", ErrInvalidConfig)
	}
	if c.JumpEndEarlyGravityModifier < 1 {
		return fmt.Errorf("%w: jumpEndEarlyGravityModifier must be at least 1, got %v",
			ErrInvalidConfig, c.JumpEndEarlyGravityModifier)
	}
	return nil
}

// Validate checks the whole game config
func (c *GameConfig) Validate() error {
	if err := c.Controller.Validate(); err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	if c.Simulation.FixedDT <= 0 {
		return fmt.Errorf("%w: simulation.fixedDt must be positive", ErrInvalidConfig)
	}
	if c.Player.Collider.Width <= 0 || c.Player.Collider.Height <= 0 {
		return fmt.Errorf("%w: player.collider must have a positive size", ErrInvalidConfig)
	}
	if c.Boat.Leaks.MaxLeaks < 0 {
		return fmt.Errorf("%w: boat.leaks.maxLeaks must be non-negative", ErrInvalidConfig)
	}
	return nil
}
