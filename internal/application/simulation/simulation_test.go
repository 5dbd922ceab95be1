package simulation

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pirate/internal/application/system"
	"github.com/younwookim/pirate/internal/domain/entity"
	"github.com/younwookim/pirate/internal/infrastructure/config"
)

const frameDt = 0.02

// createTestStage creates a 20x12 deck with a floor at pixel y=176 and the spawn at (32, 120)
func createTestStage(t testing.TB) *entity.Stage {
	t.Helper()
	rows := make([]string, 12)
	for i := range rows {
		rows[i] = strings.Repeat(".", 20)
	}
	rows[11] = strings.Repeat("#", 20)

	stage, err := system.LoadStage(&config.StageConfig{
		ID:          "deck",
		Size:        config.StageSizeConfig{Width: 320, Height: 192, TileSize: 16},
		PlayerSpawn: config.PositionConfig{X: 32, Y: 120},
		Layers:      config.LayersConfig{Collision: rows},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall", Solid: true},
		},
	})
	require.NoError(t, err)
	return stage
}

// createTestGameConfig pins leaks under the spawn point (feet at x=40) and disables timed spawning
func createTestGameConfig() *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Simulation.Seed = 7
	cfg.Boat.SpawnArea = config.SpawnAreaConfig{MinX: 40, MinY: 176, MaxX: 40, MaxY: 176}
	cfg.Boat.Leaks.SpawnInterval = 1000
	cfg.Boat.Leaks.MaxSpawnInterval = 0
	return cfg
}

func createTestSimulation(t testing.TB, cfg *config.GameConfig) *Simulation {
	t.Helper()
	sim, err := New(cfg, createTestStage(t), log.New(io.Discard))
	require.NoError(t, err)
	return sim
}

func run(t *testing.T, sim *Simulation, in system.InputState, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		require.NoError(t, sim.Advance(in, frameDt))
	}
}

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := New(nil, createTestStage(t), log.New(io.Discard))
		assert.ErrorIs(t, err, system.ErrConfigMissing)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := createTestGameConfig()
		cfg.Controller.MaxFallSpeed = 0
		_, err := New(cfg, createTestStage(t), log.New(io.Discard))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("spawns the player at the stage spawn", func(t *testing.T) {
		sim := createTestSimulation(t, createTestGameConfig())
		assert.Equal(t, entity.Vec2{X: 32, Y: 120}, sim.Body().Position())
		assert.Equal(t, int64(7), sim.Seed())
		assert.Equal(t, 10, sim.Health().Current)
	})
}

func TestSimulation_FixedStepScheduling(t *testing.T) {
	t.Run("one step per matching frame", func(t *testing.T) {
		sim := createTestSimulation(t, createTestGameConfig())
		run(t, sim, system.InputState{}, 10)
		assert.Equal(t, Stats{Frames: 10, Steps: 10, Elapsed: sim.Player().ElapsedTime()}, sim.Stats())
	})

	t.Run("short frames accumulate", func(t *testing.T) {
		sim := createTestSimulation(t, createTestGameConfig())
		for i := 0; i < 10; i++ {
			require.NoError(t, sim.Advance(system.InputState{}, 0.01))
		}
		assert.Equal(t, 5, sim.Stats().Steps)
	})

	t.Run("long frames are capped", func(t *testing.T) {
		cfg := createTestGameConfig()
		cfg.Simulation.FixedDT = 1.0 / 32
		sim := createTestSimulation(t, cfg)
		require.NoError(t, sim.Advance(system.InputState{}, 0.5))

		stats := sim.Stats()
		assert.Equal(t, 5, stats.Steps)
		assert.Equal(t, 11, stats.Dropped)
		assert.InDelta(t, 0.5, stats.Elapsed, 1e-9)
	})

	t.Run("invalid frame delta", func(t *testing.T) {
		sim := createTestSimulation(t, createTestGameConfig())
		assert.ErrorIs(t, sim.Advance(system.InputState{}, -1), system.ErrInvalidDelta)
	})
}

func TestSimulation_PlayerLandsAndMoves(t *testing.T) {
	sim := createTestSimulation(t, createTestGameConfig())
	landings := 0
	sim.Player().SubscribeGrounded(func(grounded bool, _ float64) {
		if grounded {
			landings++
		}
	})

	run(t, sim, system.InputState{}, 50)

	require.True(t, sim.Player().Grounded())
	assert.Equal(t, 1, landings)
	assert.Equal(t, 176.0, sim.Body().Collider().Y+sim.Body().Collider().H)

	run(t, sim, system.InputState{Right: true}, 25)
	assert.Greater(t, sim.Body().Position().X, 32.0)
	assert.True(t, sim.Player().Intent().Running)

	jumps := 0
	sim.Player().SubscribeJumped(func() { jumps++ })
	run(t, sim, system.InputState{Up: true, JumpPressed: true}, 1)
	run(t, sim, system.InputState{Up: true}, 5)
	assert.Equal(t, 1, jumps)
	assert.False(t, sim.Player().Grounded())
	assert.Less(t, sim.Body().Collider().Y+sim.Body().Collider().H, 176.0)
}

func TestSimulation_Respawn(t *testing.T) {
	cfg := createTestGameConfig()
	stage := createTestStage(t)
	// open a hole in the floor under the spawn
	stage.Tiles[11][2] = entity.Tile{}
	stage.Tiles[11][3] = entity.Tile{}
	sim, err := New(cfg, stage, log.New(io.Discard))
	require.NoError(t, err)

	lowest := 0.0
	respawned := false
	for i := 0; i < 200 && !respawned; i++ {
		require.NoError(t, sim.Advance(system.InputState{}, frameDt))
		y := sim.Body().Position().Y
		respawned = y < lowest-50
		lowest = max(lowest, y)
	}
	assert.True(t, respawned, "player should be teleported back to the spawn")
	assert.Equal(t, 32.0, sim.Body().Position().X)
}

func TestSimulation_Leaks(t *testing.T) {
	t.Run("leaks spawn on the timer", func(t *testing.T) {
		cfg := createTestGameConfig()
		cfg.Boat.Leaks.SpawnInterval = 0.5
		cfg.Boat.Leaks.MinSpawnInterval = 0.5
		cfg.Boat.Leaks.MaxSpawnInterval = 30
		sim := createTestSimulation(t, cfg)

		run(t, sim, system.InputState{}, 30) // 0.6s
		assert.Equal(t, 1, sim.Leaks().Count())
	})

	t.Run("open leaks drain health", func(t *testing.T) {
		cfg := createTestGameConfig()
		cfg.Boat.DrainInterval = 0.5
		cfg.Boat.DamagePerLeak = 2
		sim := createTestSimulation(t, cfg)

		var seen []float64
		sim.Health().OnChanged(func(n float64) { seen = append(seen, n) })

		run(t, sim, system.InputState{}, 10)
		sim.Leaks().Spawn()
		sim.Leaks().Spawn()
		run(t, sim, system.InputState{}, 30) // one drain tick past 0.5s

		assert.Equal(t, 6, sim.Health().Current)
		assert.Equal(t, []float64{0.6}, seen)
	})

	t.Run("holding repair fixes the nearest leak", func(t *testing.T) {
		cfg := createTestGameConfig()
		cfg.Boat.Leaks.RepairTime = 0.5
		sim := createTestSimulation(t, cfg)
		run(t, sim, system.InputState{}, 50)
		id := sim.Leaks().Spawn()
		require.NotEqual(t, entity.NoLeak, id)

		run(t, sim, system.InputState{Repair: true}, 10)
		assert.InDelta(t, 0.4, sim.RepairProgress(), 1e-6)

		run(t, sim, system.InputState{}, 1)
		assert.Equal(t, 0.0, sim.RepairProgress(), "release resets progress")

		run(t, sim, system.InputState{Repair: true}, 26)
		assert.Equal(t, 0, sim.Leaks().Count())
		_, ok := sim.Leaks().Get(id)
		assert.False(t, ok)
	})

	t.Run("too far away to repair", func(t *testing.T) {
		cfg := createTestGameConfig()
		cfg.Boat.SpawnArea = config.SpawnAreaConfig{MinX: 300, MinY: 176, MaxX: 300, MaxY: 176}
		sim := createTestSimulation(t, cfg)
		run(t, sim, system.InputState{}, 50)
		sim.Leaks().Spawn()

		run(t, sim, system.InputState{Repair: true}, 100)
		assert.Equal(t, 1, sim.Leaks().Count())
		assert.Equal(t, 0.0, sim.RepairProgress())
	})
}

func TestSimulation_Sinking(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Boat.MaxHealth = 2
	cfg.Boat.DrainInterval = 0.1
	sim := createTestSimulation(t, cfg)
	sim.Leaks().Spawn()

	run(t, sim, system.InputState{}, 20)
	require.True(t, sim.Sunk())
	assert.False(t, sim.Health().IsAlive())

	steps := sim.Stats().Steps
	run(t, sim, system.InputState{Right: true}, 10)
	assert.Equal(t, steps, sim.Stats().Steps, "no steps after sinking")
}

func TestSimulation_PointsAndMenu(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Boat.PointInterval = 0.5
	sim := createTestSimulation(t, cfg)

	run(t, sim, system.InputState{}, 1)
	assert.Equal(t, 1, sim.Points(), "a point for setting sail")
	run(t, sim, system.InputState{}, 50)
	assert.Equal(t, 3, sim.Points())

	assert.False(t, sim.MenuVisible())
	run(t, sim, system.InputState{MenuReleased: true}, 1)
	assert.True(t, sim.MenuVisible())
	run(t, sim, system.InputState{}, 3)
	assert.True(t, sim.MenuVisible())
	run(t, sim, system.InputState{MenuReleased: true}, 1)
	assert.False(t, sim.MenuVisible())
}

func TestSimulation_Deterministic(t *testing.T) {
	script := func(i int) system.InputState {
		return system.InputState{
			Right:       i%40 < 25,
			Left:        i%40 >= 30,
			Up:          i%30 < 8,
			JumpPressed: i%30 == 0,
			Repair:      i%50 > 20,
		}
	}
	play := func() (*Simulation, []entity.Leak) {
		cfg := createTestGameConfig()
		cfg.Boat.SpawnArea = config.SpawnAreaConfig{MinX: 32, MinY: 170, MaxX: 288, MaxY: 176}
		cfg.Boat.Leaks.SpawnInterval = 0.7
		cfg.Boat.Leaks.MinSpawnInterval = 0.5
		cfg.Boat.Leaks.MaxSpawnInterval = 30
		sim := createTestSimulation(t, cfg)
		for i := 0; i < 300; i++ {
			require.NoError(t, sim.Advance(script(i), 1.0/60.0))
		}
		return sim, sim.Leaks().Active()
	}

	a, leaksA := play()
	b, leaksB := play()

	assert.Equal(t, a.Body().Position(), b.Body().Position())
	assert.Equal(t, a.Player().State(), b.Player().State())
	assert.Equal(t, leaksA, leaksB)
	assert.Equal(t, a.Health().Current, b.Health().Current)
	assert.Equal(t, a.Stats(), b.Stats())
}
