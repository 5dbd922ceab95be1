package entity

import "math/rand"

// DefaultLeakSpawnInterval is used when the configured interval is not positive.
const DefaultLeakSpawnInterval = 5.0

// LeakID is a stable handle into a LeakField.
// The low 32 bits are the slot index, the high 32 bits the slot generation,
// so a handle to a repaired leak never aliases a newer leak in the same slot.
type LeakID uint64

// NoLeak is the zero handle
const NoLeak LeakID = 0

func newLeakID(index int, gen uint32) LeakID {
	return LeakID(uint64(gen)<<32 | uint64(uint32(index)))
}

// Index returns the slot index of the handle
func (id LeakID) Index() int { return int(uint32(id)) }

// Generation returns the slot generation of the handle
func (id LeakID) Generation() uint32 { return uint32(id >> 32) }

// Leak is a hole in the boat waiting to be repaired
type Leak struct {
	ID       LeakID
	Pos      Vec2
	Progress float64 // repair hold progress in [0, 1]
}

// LeakFieldConfig configures leak spawning and repairing
type LeakFieldConfig struct {
	SpawnInterval    float64
	MinSpawnInterval float64
	MaxSpawnInterval float64
	MaxLeaks         int
	AreaMin          Vec2
	AreaMax          Vec2
	RepairRadius     float64
	RepairTime       float64 // seconds of holding to repair one leak
}

type leakSlot struct {
	gen   uint32
	alive bool
	leak  Leak
}

// LeakField owns all leaks in an arena of fixed slots addressed by LeakID.
type LeakField struct {
	cfg      LeakFieldConfig
	interval float64
	timer    float64
	slots    []leakSlot
	rng      *rand.Rand
	target   LeakID

	OnSpawned      func(Leak)
	OnHoldProgress func(id LeakID, progress float64)
	OnRepaired     func(id LeakID)
}

// NewLeakField creates an empty field. The rng drives spawn positions.
func NewLeakField(cfg LeakFieldConfig, rng *rand.Rand) *LeakField {
	if cfg.MaxLeaks < 0 {
		cfg.MaxLeaks = 0
	}
	interval := cfg.SpawnInterval
	if cfg.MaxSpawnInterval > 0 {
		interval = clamp(interval, cfg.MinSpawnInterval, cfg.MaxSpawnInterval)
	}
	if interval <= 0 {
		interval = DefaultLeakSpawnInterval
	}
	return &LeakField{
		cfg:      cfg,
		interval: interval,
		timer:    interval,
		slots:    make([]leakSlot, cfg.MaxLeaks),
		rng:      rng,
	}
}

// SpawnInterval returns the effective (clamped) spawn interval
func (f *LeakField) SpawnInterval() float64 {
	return f.interval
}

// Update advances the spawn timer by dt and spawns a leak when it expires
func (f *LeakField) Update(dt float64) {
	f.timer -= dt
	if f.timer <= 0 {
		f.Spawn()
		f.timer = f.interval
	}
}

// Spawn places a leak at a random point of the spawn area.
// Returns NoLeak when every slot is taken.
func (f *LeakField) Spawn() LeakID {
	for i := range f.slots {
		if f.slots[i].alive {
			continue
		}
		pos := Vec2{
			X: f.randRange(f.cfg.AreaMin.X, f.cfg.AreaMax.X),
			Y: f.randRange(f.cfg.AreaMin.Y, f.cfg.AreaMax.Y),
		}
		return f.spawnAt(i, pos)
	}
	return NoLeak
}

func (f *LeakField) spawnAt(i int, pos Vec2) LeakID {
	s := &f.slots[i]
	s.gen++
	s.alive = true
	s.leak = Leak{ID: newLeakID(i, s.gen), Pos: pos}
	if f.OnSpawned != nil {
		f.OnSpawned(s.leak)
	}
	return s.leak.ID
}

// Get returns the leak for a handle, false if it was repaired or never existed
func (f *LeakField) Get(id LeakID) (Leak, bool) {
	s := f.slot(id)
	if s == nil {
		return Leak{}, false
	}
	return s.leak, true
}

// Count returns the number of active leaks
func (f *LeakField) Count() int {
	n := 0
	for i := range f.slots {
		if f.slots[i].alive {
			n++
		}
	}
	return n
}

// Active returns the active leaks in slot order
func (f *LeakField) Active() []Leak {
	leaks := make([]Leak, 0, len(f.slots))
	for i := range f.slots {
		if f.slots[i].alive {
			leaks = append(leaks, f.slots[i].leak)
		}
	}
	return leaks
}

// Repair advances the hold-to-repair interaction.
// While held, the leak nearest to any of the repairers within RepairRadius gains progress.
// Releasing, walking away or switching target resets the progress of the previous target.
func (f *LeakField) Repair(repairers []Vec2, held bool, dt float64) {
	next := NoLeak
	if held {
		next = f.nearest(repairers)
	}
	if f.target != NoLeak && f.target != next {
		f.resetProgress(f.target)
	}
	f.target = next
	if next == NoLeak {
		return
	}

	s := f.slot(next)
	if f.cfg.RepairTime <= 0 {
		s.leak.Progress = 1
	} else {
		s.leak.Progress = clamp(s.leak.Progress+dt/f.cfg.RepairTime, 0, 1)
	}
	if f.OnHoldProgress != nil {
		f.OnHoldProgress(next, s.leak.Progress)
	}
	if s.leak.Progress >= 1 {
		f.remove(next)
	}
}

// Remove deletes a leak immediately. Returns false for stale handles.
func (f *LeakField) Remove(id LeakID) bool {
	if f.slot(id) == nil {
		return false
	}
	f.remove(id)
	return true
}

func (f *LeakField) remove(id LeakID) {
	s := f.slot(id)
	s.alive = false
	s.leak = Leak{}
	if f.target == id {
		f.target = NoLeak
	}
	if f.OnRepaired != nil {
		f.OnRepaired(id)
	}
}

func (f *LeakField) resetProgress(id LeakID) {
	s := f.slot(id)
	if s == nil || s.leak.Progress == 0 {
		return
	}
	s.leak.Progress = 0
	if f.OnHoldProgress != nil {
		f.OnHoldProgress(id, 0)
	}
}

func (f *LeakField) nearest(repairers []Vec2) LeakID {
	best := NoLeak
	bestDist := f.cfg.RepairRadius
	for i := range f.slots {
		s := &f.slots[i]
		if !s.alive {
			continue
		}
		for _, p := range repairers {
			if d := Distance(p, s.leak.Pos); d <= bestDist {
				best = s.leak.ID
				bestDist = d
			}
		}
	}
	return best
}

func (f *LeakField) slot(id LeakID) *leakSlot {
	if id == NoLeak {
		return nil
	}
	i := id.Index()
	if i < 0 || i >= len(f.slots) {
		return nil
	}
	s := &f.slots[i]
	if !s.alive || s.gen != id.Generation() {
		return nil
	}
	return s
}

func (f *LeakField) randRange(lo, hi float64) float64 {
	if hi <= lo || f.rng == nil {
		return lo
	}
	return lo + f.rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
