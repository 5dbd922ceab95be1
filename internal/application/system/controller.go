package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/younwookim/pirate/internal/domain/entity"
	"github.com/younwookim/pirate/internal/infrastructure/config"
)

// FrameInput is one snapshot of the logical input actions.
// Move axes are quantized to -1, 0 or 1; Y is up.
type FrameInput struct {
	JumpDown bool // pressed this frame
	JumpHeld bool
	Move     entity.Vec2
}

// Rigidbody receives the controller's velocity every fixed step
type Rigidbody interface {
	Collider() entity.Rect
	SetVelocity(v entity.Vec2)
}

// ControllerState is a read-only snapshot of the controller, for debug overlays and tests
type ControllerState struct {
	Grounded              bool
	CeilingContact        bool
	FrameLeftGroundedAt   float64
	Velocity              entity.Vec2
	JumpRequested         bool
	JumpWasPressedAt      float64
	CoyoteAvailable       bool
	BufferedJumpAvailable bool
	EndedJumpEarly        bool
	ElapsedTime           float64
}

// CharacterController turns input into velocity for a platformer character.
// Update runs once per rendered frame, FixedUpdate once per physics step.
type CharacterController struct {
	cfg     config.ControllerConfig
	querier CollisionQuerier
	body    Rigidbody
	logger  *log.Logger
	events  eventBus

	input    FrameInput
	velocity entity.Vec2
	intent   MotionIntent

	grounded            bool
	ceilingContact      bool
	frameLeftGroundedAt float64

	jumpRequested         bool
	jumpWasPressedAt      float64
	coyoteAvailable       bool
	bufferedJumpAvailable bool
	endedJumpEarly        bool

	elapsedTime float64
	facingRight bool
	stepping    bool
}

// NewCharacterController creates a controller bound to a collision world and a body.
// The config is copied. If cfg, querier or body is nil the controller is still
// returned, degraded, together with an error wrapping ErrConfigMissing.
func NewCharacterController(cfg *config.ControllerConfig, querier CollisionQuerier, body Rigidbody, logger *log.Logger) (*CharacterController, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &CharacterController{
		querier:             querier,
		body:                body,
		logger:              logger,
		frameLeftGroundedAt: never,
		jumpWasPressedAt:    never,
		facingRight:         true,
	}

	var missing []string
	if cfg == nil {
		missing = append(missing, "config")
	} else {
		c.cfg = *cfg
		c.cfg.ExcludeLayers = append([]string(nil), cfg.ExcludeLayers...)
	}
	if querier == nil {
		missing = append(missing, "collision querier")
		c.querier = &nopQuerier{}
	}
	if body == nil {
		missing = append(missing, "rigidbody")
		c.body = nopBody{}
		c.querier = &nopQuerier{} // no collider to probe with
	}

	if len(missing) > 0 {
		err := fmt.Errorf("%w: %s", ErrConfigMissing, strings.Join(missing, ", "))
		logger.Warn("character controller degraded", "missing", strings.Join(missing, ", "))
		return c, err
	}
	return c, nil
}

// Update advances the clock by frameDt and records the jump edge.
// It never moves the character.
func (c *CharacterController) Update(input FrameInput, frameDt float64) error {
	if c.stepping {
		return ErrReentrantStep
	}
	if !validDelta(frameDt) && frameDt != 0 {
		return fmt.Errorf("frame dt %v: %w", frameDt, ErrInvalidDelta)
	}

	c.elapsedTime += frameDt
	c.input = FrameInput{
		JumpDown: input.JumpDown,
		JumpHeld: input.JumpHeld,
		Move:     entity.Vec2{X: quantize(input.Move.X), Y: quantize(input.Move.Y)},
	}

	if c.input.JumpDown {
		c.jumpRequested = true
		c.jumpWasPressedAt = c.elapsedTime
	}
	return nil
}

// FixedUpdate runs one physics step: probe, jump, horizontal, vertical, then
// applies the velocity to the body and derives the motion intent.
// A failed probe keeps the previous contact state; the step still completes and
// the error is returned.
func (c *CharacterController) FixedUpdate(fixedDt float64) error {
	if c.stepping {
		return ErrReentrantStep
	}
	if !validDelta(fixedDt) {
		return fmt.Errorf("fixed dt %v: %w", fixedDt, ErrInvalidDelta)
	}
	c.stepping = true
	defer func() { c.stepping = false }()

	probeErr := c.checkCollisions()

	c.handleJump()
	c.handleDirection(fixedDt)
	c.handleGravity(fixedDt)

	c.body.SetVelocity(c.velocity)
	c.intent = deriveIntent(c.grounded, c.velocity.Y, c.input.Move.X)

	return probeErr
}

// MoveInput returns the last quantized move axes
func (c *CharacterController) MoveInput() entity.Vec2 { return c.input.Move }

// Velocity returns the velocity applied on the last step (y-up)
func (c *CharacterController) Velocity() entity.Vec2 { return c.velocity }

func (c *CharacterController) Grounded() bool { return c.grounded }

func (c *CharacterController) CeilingContact() bool { return c.ceilingContact }

func (c *CharacterController) FacingRight() bool { return c.facingRight }

// Intent returns the motion intent derived on the last step
func (c *CharacterController) Intent() MotionIntent { return c.intent }

func (c *CharacterController) ElapsedTime() float64 { return c.elapsedTime }

// Config returns a copy of the tuning in use
func (c *CharacterController) Config() config.ControllerConfig { return c.cfg }

// State returns a snapshot of the internal state
func (c *CharacterController) State() ControllerState {
	return ControllerState{
		Grounded:              c.grounded,
		CeilingContact:        c.ceilingContact,
		FrameLeftGroundedAt:   c.frameLeftGroundedAt,
		Velocity:              c.velocity,
		JumpRequested:         c.jumpRequested,
		JumpWasPressedAt:      c.jumpWasPressedAt,
		CoyoteAvailable:       c.coyoteAvailable,
		BufferedJumpAvailable: c.bufferedJumpAvailable,
		EndedJumpEarly:        c.endedJumpEarly,
		ElapsedTime:           c.elapsedTime,
	}
}

func validDelta(dt float64) bool {
	return dt > 0 && !math.IsInf(dt, 0)
}

func quantize(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

type nopBody struct{}

func (nopBody) Collider() entity.Rect { return entity.Rect{} }
func (nopBody) SetVelocity(entity.Vec2) {}
