package system

import (
	"fmt"
	"math"

	"github.com/younwookim/pirate/internal/domain/entity"
)

// CollisionQuerier is the world query capability the probe needs
type CollisionQuerier interface {
	CastBox(box entity.Rect, dir entity.CastDirection, distance float64, exclude []string) (entity.Hit, error)
	QueriesStartInColliders() bool
	SetQueriesStartInColliders(v bool)
}

// checkCollisions probes for ground and ceiling and handles landing / leaving.
// A ceiling stops an ascent before the jump is evaluated, so a jump fired under a
// low ceiling keeps its impulse until the next probe.
// On error the previous contact state is kept.
func (c *CharacterController) checkCollisions() error {
	prev := c.querier.QueriesStartInColliders()
	c.querier.SetQueriesStartInColliders(false)
	defer c.querier.SetQueriesStartInColliders(prev)

	box := c.body.Collider()
	groundHit, err := c.querier.CastBox(box, entity.CastDown, c.cfg.GrounderDistance, c.cfg.ExcludeLayers)
	if err != nil {
		return fmt.Errorf("%w: ground probe: %w", ErrCollisionQueryFailed, err)
	}
	ceilingHit, err := c.querier.CastBox(box, entity.CastUp, c.cfg.GrounderDistance, c.cfg.ExcludeLayers)
	if err != nil {
		return fmt.Errorf("%w: ceiling probe: %w", ErrCollisionQueryFailed, err)
	}

	c.ceilingContact = ceilingHit.Hit
	if c.ceilingContact && c.velocity.Y > 0 {
		// Head bonk
		c.velocity.Y = 0
	}

	switch {
	case !c.grounded && groundHit.Hit:
		// Landed
		c.grounded = true
		c.coyoteAvailable = true
		c.bufferedJumpAvailable = true
		c.endedJumpEarly = false
		c.events.emitGrounded(true, math.Abs(c.velocity.Y))
	case c.grounded && !groundHit.Hit:
		// Left the ground
		c.grounded = false
		c.frameLeftGroundedAt = c.elapsedTime
		c.events.emitGrounded(false, 0)
	}
	return nil
}

// nopQuerier stands in for a missing world: nothing is ever hit
type nopQuerier struct {
	startInColliders bool
}

func (q *nopQuerier) CastBox(entity.Rect, entity.CastDirection, float64, []string) (entity.Hit, error) {
	return entity.Hit{}, nil
}

func (q *nopQuerier) QueriesStartInColliders() bool { return q.startInColliders }
func (q *nopQuerier) SetQueriesStartInColliders(v bool) { q.startInColliders = v }
