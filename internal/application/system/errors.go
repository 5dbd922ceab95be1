package system

import "errors"

var (
	// ErrConfigMissing is returned by NewCharacterController when a required collaborator is nil.
	// The returned controller still runs, with zero tuning for a missing config.
	ErrConfigMissing = errors.New("controller config missing")

	// ErrCollisionQueryFailed wraps errors from the ground/ceiling probe
	ErrCollisionQueryFailed = errors.New("collision query failed")

	// ErrReentrantStep is returned when a listener calls back into Update or FixedUpdate
	ErrReentrantStep = errors.New("re-entrant controller step")

	// ErrInvalidDelta is returned for non-positive or non-finite time steps
	ErrInvalidDelta = errors.New("invalid time delta")
)
