package entity

// PointCounter awards a point when the voyage starts and one more for every Interval seconds survived
type PointCounter struct {
	Points   int
	Interval float64

	acc     float64
	started bool

	OnPoints func(points int)
}

// NewPointCounter creates a counter, interval defaults to one second
func NewPointCounter(interval float64) *PointCounter {
	if interval <= 0 {
		interval = 1
	}
	return &PointCounter{Interval: interval}
}

// Update advances simulated time by dt
func (c *PointCounter) Update(dt float64) {
	if !c.started {
		c.started = true
		c.award()
	}
	c.acc += dt
	for c.acc >= c.Interval {
		c.acc -= c.Interval
		c.award()
	}
}

func (c *PointCounter) award() {
	c.Points++
	if c.OnPoints != nil {
		c.OnPoints(c.Points)
	}
}

// Reset clears points and the partial interval; the next Update starts a new count
func (c *PointCounter) Reset() {
	c.Points = 0
	c.acc = 0
	c.started = false
}
