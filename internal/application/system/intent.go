package system

// VerticalIntent is the airborne phase reported to the animation layer
type VerticalIntent int

const (
	VerticalNone VerticalIntent = iota
	VerticalJumping
	VerticalFalling
)

func (v VerticalIntent) String() string {
	switch v {
	case VerticalJumping:
		return "jumping"
	case VerticalFalling:
		return "falling"
	default:
		return "none"
	}
}

// MotionIntent is what the character is doing this step, for animation.
// It is derived from the final velocity and grounded state, never stored between steps.
type MotionIntent struct {
	Running  bool
	Vertical VerticalIntent
}

// Jumping reports whether the character is airborne and not descending
func (i MotionIntent) Jumping() bool { return i.Vertical == VerticalJumping }

// Falling reports whether the character is airborne and descending
func (i MotionIntent) Falling() bool { return i.Vertical == VerticalFalling }

func (i MotionIntent) String() string {
	base := "idle"
	if i.Running {
		base = "running"
	}
	if i.Vertical == VerticalNone {
		return base
	}
	return base + "+" + i.Vertical.String()
}

// deriveIntent maps the step's outcome to an animation intent
func deriveIntent(grounded bool, velocityY, axisX float64) MotionIntent {
	intent := MotionIntent{Running: axisX != 0}
	switch {
	case grounded:
		intent.Vertical = VerticalNone
	case velocityY < 0:
		intent.Vertical = VerticalFalling
	default:
		intent.Vertical = VerticalJumping
	}
	return intent
}
