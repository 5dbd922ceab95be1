// Package simulation runs the two-rate game loop: one variable-rate controller
// update per rendered frame, then as many fixed physics steps as the frame time covers.
package simulation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/younwookim/pirate/internal/application/system"
	"github.com/younwookim/pirate/internal/domain/entity"
	"github.com/younwookim/pirate/internal/infrastructure/collision"
	"github.com/younwookim/pirate/internal/infrastructure/config"
)

// hardLandingSpeed is the impact speed logged as a hard landing
const hardLandingSpeed = 400.0

// Simulation owns the collision world, the player and the boat around it
type Simulation struct {
	cfg    config.GameConfig
	stage  *entity.Stage
	world  *collision.World
	body   *collision.Body
	player *system.CharacterController
	logger *log.Logger

	leaks      *entity.LeakField
	health     *entity.Health
	points     *entity.PointCounter
	menu       entity.Menu
	repairFill entity.ProgressFill

	seed        int64
	accumulator float64
	drainTimer  float64
	frame       int
	steps       int
	dropped     int
	sunk        bool
}

// New builds a simulation for stage. A zero cfg.Simulation.Seed picks a time based seed.
func New(cfg *config.GameConfig, stage *entity.Stage, logger *log.Logger) (*Simulation, error) {
	if cfg == nil || stage == nil {
		return nil, fmt.Errorf("simulation: %w", system.ErrConfigMissing)
	}
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		cfg:    *cfg,
		stage:  stage,
		world:  collision.NewStageWorld(stage),
		logger: logger,
		seed:   seed,
	}

	pc := cfg.Player.Collider
	collider := entity.Collider{OffsetX: pc.OffsetX, OffsetY: pc.OffsetY, Width: pc.Width, Height: pc.Height}
	s.body = s.world.AddBody(stage.Spawn(), collider, cfg.Player.Layer)

	player, err := system.NewCharacterController(&s.cfg.Controller, s.world, s.body, logger.WithPrefix("controller"))
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	s.player = player
	s.player.SubscribeGrounded(s.onGroundedChanged)

	boat := cfg.Boat
	s.health = entity.NewHealth(boat.MaxHealth)
	s.points = entity.NewPointCounter(boat.PointInterval)
	s.leaks = entity.NewLeakField(entity.LeakFieldConfig{
		SpawnInterval:    boat.Leaks.SpawnInterval,
		MinSpawnInterval: boat.Leaks.MinSpawnInterval,
		MaxSpawnInterval: boat.Leaks.MaxSpawnInterval,
		MaxLeaks:         boat.Leaks.MaxLeaks,
		AreaMin:          entity.Vec2{X: boat.SpawnArea.MinX, Y: boat.SpawnArea.MinY},
		AreaMax:          entity.Vec2{X: boat.SpawnArea.MaxX, Y: boat.SpawnArea.MaxY},
		RepairRadius:     boat.Leaks.RepairRadius,
		RepairTime:       boat.Leaks.RepairTime,
	}, rand.New(rand.NewSource(seed)))
	s.leaks.OnHoldProgress = func(_ entity.LeakID, p float64) { s.repairFill.Set(p) }
	s.leaks.OnRepaired = func(id entity.LeakID) {
		s.repairFill.Set(0)
		logger.Debug("leak repaired", "leak", id.Index(), "remaining", s.leaks.Count())
	}
	s.leaks.OnSpawned = func(l entity.Leak) {
		logger.Debug("leak spawned", "leak", l.ID.Index(), "x", l.Pos.X, "y", l.Pos.Y)
	}

	logger.Info("simulation ready",
		"stage", fmt.Sprintf("%dx%d", stage.Width, stage.Height),
		"seed", seed,
		"fixedDt", cfg.Simulation.FixedDT,
		"leakInterval", s.leaks.SpawnInterval())
	return s, nil
}

// Advance runs one rendered frame: the controller's variable-rate update, then
// fixed steps while the accumulator holds a full fixedDt. At most
// MaxStepsPerFrame steps run; the remaining backlog is dropped.
func (s *Simulation) Advance(in system.InputState, frameDt float64) error {
	s.frame++
	s.menu.Update(in.MenuReleased)
	if s.sunk {
		return nil
	}

	if err := s.player.Update(in.Frame(), frameDt); err != nil {
		return fmt.Errorf("frame %d: %w", s.frame, err)
	}

	fixedDt := s.cfg.Simulation.FixedDT
	maxSteps := s.cfg.Simulation.MaxStepsPerFrame
	s.accumulator += frameDt

	ran := 0
	for s.accumulator >= fixedDt {
		if maxSteps > 0 && ran >= maxSteps {
			dropped := int(s.accumulator / fixedDt)
			s.dropped += dropped
			s.accumulator = math.Mod(s.accumulator, fixedDt)
			s.logger.Warn("simulation falling behind, dropping steps", "frame", s.frame, "dropped", dropped)
			break
		}
		if err := s.fixedStep(in, fixedDt); err != nil {
			return fmt.Errorf("frame %d step %d: %w", s.frame, s.steps, err)
		}
		s.accumulator -= fixedDt
		ran++
		if s.sunk {
			break
		}
	}
	return nil
}

func (s *Simulation) fixedStep(in system.InputState, dt float64) error {
	s.steps++

	if err := s.player.FixedUpdate(dt); err != nil {
		if !errors.Is(err, system.ErrCollisionQueryFailed) {
			return err
		}
		s.logger.Warn("probe failed, keeping contact state", "step", s.steps, "err", err)
	}
	s.world.Integrate(s.body, dt)

	if s.outOfStage() {
		s.logger.Info("player left the stage, respawning", "x", s.body.Position().X, "y", s.body.Position().Y)
		s.body.Teleport(s.stage.Spawn())
	}

	s.leaks.Update(dt)
	s.leaks.Repair([]entity.Vec2{s.body.Feet()}, in.Repair, dt)
	s.points.Update(dt)
	s.drain(dt)
	return nil
}

// drain removes DamagePerLeak health per open leak every DrainInterval seconds
func (s *Simulation) drain(dt float64) {
	interval := s.cfg.Boat.DrainInterval
	if interval <= 0 {
		return
	}
	s.drainTimer += dt
	for s.drainTimer >= interval {
		s.drainTimer -= interval
		open := s.leaks.Count()
		if open == 0 {
			continue
		}
		if dead := s.health.TakeDamage(open * s.cfg.Boat.DamagePerLeak); dead {
			s.sunk = true
			s.logger.Info("boat sunk", "points", s.points.Points, "step", s.steps)
			return
		}
	}
}

func (s *Simulation) outOfStage() bool {
	w, h := s.stage.PixelSize()
	r := s.body.Collider()
	return r.Y > float64(h) || r.X+r.W < 0 || r.X > float64(w)
}

func (s *Simulation) onGroundedChanged(grounded bool, impactSpeed float64) {
	if grounded && impactSpeed >= hardLandingSpeed {
		s.logger.Debug("hard landing", "speed", impactSpeed, "step", s.steps)
	}
}

// Player returns the character controller, for subscribing to its events
func (s *Simulation) Player() *system.CharacterController { return s.player }

func (s *Simulation) Body() *collision.Body { return s.body }

func (s *Simulation) World() *collision.World { return s.world }

func (s *Simulation) Stage() *entity.Stage { return s.stage }

func (s *Simulation) Leaks() *entity.LeakField { return s.leaks }

func (s *Simulation) Health() *entity.Health { return s.health }

func (s *Simulation) Points() int { return s.points.Points }

func (s *Simulation) MenuVisible() bool { return s.menu.Visible() }

// RepairProgress is the hold progress on the leak being repaired, in [0, 1]
func (s *Simulation) RepairProgress() float64 { return s.repairFill.Amount() }

// Sunk reports whether the boat ran out of health; the simulation stops stepping
func (s *Simulation) Sunk() bool { return s.sunk }

// Seed returns the seed actually used for leak placement
func (s *Simulation) Seed() int64 { return s.seed }

// Stats returns frame and step counters
func (s *Simulation) Stats() Stats {
	return Stats{Frames: s.frame, Steps: s.steps, Dropped: s.dropped, Elapsed: s.player.ElapsedTime()}
}

// Stats counts simulation progress
type Stats struct {
	Frames  int
	Steps   int
	Dropped int
	Elapsed float64
}
