package entity

// HealthListener receives the normalized health value in [0, 1] after every change.
type HealthListener func(normalized float64)

// Health represents the boat's health
type Health struct {
	Current int
	Max     int

	onChanged []HealthListener
}

// NewHealth creates a full health pool
func NewHealth(max int) *Health {
	if max < 0 {
		max = 0
	}
	return &Health{Current: max, Max: max}
}

// OnChanged registers a listener for health changes
func (h *Health) OnChanged(fn HealthListener) {
	h.onChanged = append(h.onChanged, fn)
}

// TakeDamage applies damage, returns true if dead
func (h *Health) TakeDamage(amount int) bool {
	if amount <= 0 || h.Current <= 0 {
		return h.Current <= 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.notify()
	return h.Current <= 0
}

// Heal restores health up to max
func (h *Health) Heal(amount int) {
	if amount <= 0 || h.Current >= h.Max {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	h.notify()
}

// SetMax resets the pool to a new maximum at full health
func (h *Health) SetMax(max int) {
	if max < 0 {
		max = 0
	}
	h.Max = max
	h.Current = max
	h.notify()
}

// IsAlive returns true if health > 0
func (h *Health) IsAlive() bool {
	return h.Current > 0
}

// Normalized returns Current/Max clamped to [0, 1]
func (h *Health) Normalized() float64 {
	if h.Max <= 0 {
		return 0
	}
	return Clamp01(float64(h.Current) / float64(h.Max))
}

func (h *Health) notify() {
	n := h.Normalized()
	for _, fn := range h.onChanged {
		fn(n)
	}
}

// Clamp01 clamps v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
