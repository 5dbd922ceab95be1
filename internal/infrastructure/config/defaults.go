package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultGameYAML []byte

// Default returns the embedded default configuration.
// Falls back to DefaultGameConfig if the embedded YAML cannot be parsed.
func Default() *GameConfig {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGameConfig()
	}
	return &cfg
}

// DefaultGameConfig returns the hardcoded defaults
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        3,
			Framerate:    60,
		},
		Simulation: SimulationConfig{
			FixedDT:          0.02,
			MaxStepsPerFrame: 5,
		},
		Controller: DefaultControllerConfig(),
		Player: PlayerConfig{
			Layer:    "player",
			Collider: Rect{OffsetX: 2, OffsetY: 2, Width: 12, Height: 22},
		},
		Keys: KeysConfig{
			Up:     "W",
			Left:   "A",
			Down:   "S",
			Right:  "D",
			Repair: "Space",
			Menu:   "Q",
		},
		Boat: BoatConfig{
			MaxHealth:     10,
			DamagePerLeak: 1,
			DrainInterval: 3,
			PointInterval: 1,
			Leaks: LeakConfig{
				SpawnInterval:    5,
				MinSpawnInterval: 1,
				MaxSpawnInterval: 30,
				MaxLeaks:         6,
				RepairRadius:     48,
				RepairTime:       1.5,
			},
			SpawnArea: SpawnAreaConfig{MinX: 32, MinY: 192, MaxX: 288, MaxY: 200},
		},
	}
}

// DefaultControllerConfig returns the default controller tuning
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		MaxSpeed:                    160,
		Acceleration:                1600,
		GroundDeceleration:          960,
		AirDeceleration:             480,
		JumpPower:                   480,
		FallAcceleration:            1600,
		MaxFallSpeed:                640,
		GroundingForce:              24,
		JumpEndEarlyGravityModifier: 3,
		CoyoteTime:                  0.15,
		JumpBufferTime:              0.2,
		GrounderDistance:            0.8,
		ExcludeLayers:               []string{"player"},
	}
}
