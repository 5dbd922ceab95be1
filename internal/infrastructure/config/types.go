package config

// GameConfig is the root config for game.yaml / game.json
type GameConfig struct {
	Display    DisplayConfig    `json:"display" yaml:"display"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Controller ControllerConfig `json:"controller" yaml:"controller"`
	Player     PlayerConfig     `json:"player" yaml:"player"`
	Keys       KeysConfig       `json:"keys" yaml:"keys"`
	Boat       BoatConfig       `json:"boat" yaml:"boat"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

// SimulationConfig configures the fixed-rate physics pass
type SimulationConfig struct {
	FixedDT          float64 `json:"fixedDt" yaml:"fixedDt"`                   // seconds per physics step
	MaxStepsPerFrame int     `json:"maxStepsPerFrame" yaml:"maxStepsPerFrame"` // excess steps are dropped
	Seed             int64   `json:"seed" yaml:"seed"`                         // 0 = time based
}

// ControllerConfig holds the character controller tuning.
// All values are world units (pixels) and seconds.
type ControllerConfig struct {
	MaxSpeed                    float64  `json:"maxSpeed" yaml:"maxSpeed"`
	Acceleration                float64  `json:"acceleration" yaml:"acceleration"`
	GroundDeceleration          float64  `json:"groundDeceleration" yaml:"groundDeceleration"`
	AirDeceleration             float64  `json:"airDeceleration" yaml:"airDeceleration"`
	JumpPower                   float64  `json:"jumpPower" yaml:"jumpPower"`
	FallAcceleration            float64  `json:"fallAcceleration" yaml:"fallAcceleration"`
	MaxFallSpeed                float64  `json:"maxFallSpeed" yaml:"maxFallSpeed"`
	GroundingForce              float64  `json:"groundingForce" yaml:"groundingForce"` // magnitude, applied downward
	JumpEndEarlyGravityModifier float64  `json:"jumpEndEarlyGravityModifier" yaml:"jumpEndEarlyGravityModifier"`
	CoyoteTime                  float64  `json:"coyoteTime" yaml:"coyoteTime"`
	JumpBufferTime              float64  `json:"jumpBufferTime" yaml:"jumpBufferTime"`
	GrounderDistance            float64  `json:"grounderDistance" yaml:"grounderDistance"`
	ExcludeLayers               []string `json:"excludeLayers" yaml:"excludeLayers"` // collision tags ignored by the probe
}

// PlayerConfig describes the player's collider
type PlayerConfig struct {
	Layer    string `json:"layer" yaml:"layer"`
	Collider Rect   `json:"collider" yaml:"collider"`
}

type Rect struct {
	OffsetX float64 `json:"offsetX" yaml:"offsetX"`
	OffsetY float64 `json:"offsetY" yaml:"offsetY"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
}

// KeysConfig binds logical actions to ebiten key names (see ebiten.Key.String)
type KeysConfig struct {
	Up     string `json:"up" yaml:"up"`
	Left   string `json:"left" yaml:"left"`
	Down   string `json:"down" yaml:"down"`
	Right  string `json:"right" yaml:"right"`
	Repair string `json:"repair" yaml:"repair"`
	Menu   string `json:"menu" yaml:"menu"`
}

// BoatConfig configures the leaking boat around the player
type BoatConfig struct {
	MaxHealth     int             `json:"maxHealth" yaml:"maxHealth"`
	DamagePerLeak int             `json:"damagePerLeak" yaml:"damagePerLeak"`
	DrainInterval float64         `json:"drainInterval" yaml:"drainInterval"`
	PointInterval float64         `json:"pointInterval" yaml:"pointInterval"`
	Leaks         LeakConfig      `json:"leaks" yaml:"leaks"`
	SpawnArea     SpawnAreaConfig `json:"spawnArea" yaml:"spawnArea"`
}

type LeakConfig struct {
	SpawnInterval    float64 `json:"spawnInterval" yaml:"spawnInterval"`
	MinSpawnInterval float64 `json:"minSpawnInterval" yaml:"minSpawnInterval"`
	MaxSpawnInterval float64 `json:"maxSpawnInterval" yaml:"maxSpawnInterval"`
	MaxLeaks         int     `json:"maxLeaks" yaml:"maxLeaks"`
	RepairRadius     float64 `json:"repairRadius" yaml:"repairRadius"`
	RepairTime       float64 `json:"repairTime" yaml:"repairTime"`
}

type SpawnAreaConfig struct {
	MinX float64 `json:"minX" yaml:"minX"`
	MinY float64 `json:"minY" yaml:"minY"`
	MaxX float64 `json:"maxX" yaml:"maxX"`
	MaxY float64 `json:"maxY" yaml:"maxY"`
}
