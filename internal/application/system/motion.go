package system

import "math"

// MoveTowards moves current toward target by at most maxDelta and never past it
func MoveTowards(current, target, maxDelta float64) float64 {
	if maxDelta <= 0 {
		return current
	}
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, target-current)
}

// handleDirection approaches axis*maxSpeed. Acceleration applies while there is
// input, ground or air deceleration while there is none.
func (c *CharacterController) handleDirection(dt float64) {
	axis := c.input.Move.X
	rate := c.cfg.Acceleration
	if axis == 0 {
		rate = c.cfg.AirDeceleration
		if c.grounded {
			rate = c.cfg.GroundDeceleration
		}
	}
	c.velocity.X = MoveTowards(c.velocity.X, axis*c.cfg.MaxSpeed, rate*dt)

	if axis > 0 {
		c.facingRight = true
	} else if axis < 0 {
		c.facingRight = false
	}
}

// handleGravity pins a grounded character to the floor or pulls an airborne one down
func (c *CharacterController) handleGravity(dt float64) {
	if c.grounded && c.velocity.Y <= 0 {
		c.velocity.Y = -c.cfg.GroundingForce
		return
	}

	gravity := c.cfg.FallAcceleration
	if c.endedJumpEarly && c.velocity.Y > 0 {
		gravity *= c.cfg.JumpEndEarlyGravityModifier
	}
	c.velocity.Y = MoveTowards(c.velocity.Y, -c.cfg.MaxFallSpeed, gravity*dt)
}
