package config

// StageConfig is the root config for stage files
type StageConfig struct {
	ID          string                       `json:"id" yaml:"id"`
	Name        string                       `json:"name" yaml:"name"`
	Size        StageSizeConfig              `json:"size" yaml:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn" yaml:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers" yaml:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping" yaml:"tileMapping"`
}

type StageSizeConfig struct {
	Width    int `json:"width" yaml:"width"`
	Height   int `json:"height" yaml:"height"`
	TileSize int `json:"tileSize" yaml:"tileSize"`
}

type PositionConfig struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision" yaml:"collision"`
}

type TileMappingConfig struct {
	Type  string `json:"type" yaml:"type"`
	Solid bool   `json:"solid" yaml:"solid"`
}
