package system

import "math"

// never is the timestamp sentinel for "has not happened"
var never = math.Inf(-1)

// hasBufferedJump reports a press that is still inside the buffer window
func (c *CharacterController) hasBufferedJump() bool {
	return c.bufferedJumpAvailable && c.elapsedTime < c.jumpWasPressedAt+c.cfg.JumpBufferTime
}

// canUseCoyote reports an airborne character still inside the coyote window
func (c *CharacterController) canUseCoyote() bool {
	return c.coyoteAvailable && !c.grounded && c.elapsedTime < c.frameLeftGroundedAt+c.cfg.CoyoteTime
}

// handleJump flags early release and fires a pending jump when it is allowed
func (c *CharacterController) handleJump() {
	if !c.endedJumpEarly && !c.grounded && !c.input.JumpHeld && c.velocity.Y > 0 {
		c.endedJumpEarly = true
	}

	if !c.jumpRequested && !c.hasBufferedJump() {
		return
	}

	if c.grounded || c.canUseCoyote() {
		c.executeJump()
	}

	c.jumpRequested = false
}

func (c *CharacterController) executeJump() {
	c.endedJumpEarly = false
	c.jumpWasPressedAt = never
	c.bufferedJumpAvailable = false
	c.coyoteAvailable = false
	c.velocity.Y = c.cfg.JumpPower

	c.logger.Debug("jump", "t", c.elapsedTime, "grounded", c.grounded)
	c.events.emitJumped()
}
