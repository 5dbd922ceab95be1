package config

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	// TMXCollisionLayer is the tile layer whose non-empty tiles are solid
	TMXCollisionLayer = "collision"
	// TMXSpawnGroup is the object group holding the player spawn
	TMXSpawnGroup = "PlayerSpawn"
)

// LoadTMXStage parses a Tiled map into a StageConfig.
// Non-empty tiles of the collision layer become '#' walls, the first object of the
// PlayerSpawn group becomes the spawn point.
func LoadTMXStage(fsys fs.FS, tmxPath string) (*StageConfig, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	id := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	cfg := &StageConfig{
		ID:   id,
		Name: id,
		Size: StageSizeConfig{
			Width:    levelMap.Width * levelMap.TileWidth,
			Height:   levelMap.Height * levelMap.TileHeight,
			TileSize: levelMap.TileWidth,
		},
		TileMapping: map[string]TileMappingConfig{
			"#": {Type: "wall", Solid: true},
			".": {Type: "empty", Solid: false},
		},
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == TMXCollisionLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, TMXCollisionLayer)
	}

	rows := make([]string, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		var sb strings.Builder
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile == nil || tile.IsNil() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		rows[y] = sb.String()
	}
	cfg.Layers.Collision = rows

	for _, og := range levelMap.ObjectGroups {
		if og.Name != TMXSpawnGroup || len(og.Objects) == 0 {
			continue
		}
		cfg.PlayerSpawn = PositionConfig{X: int(og.Objects[0].X), Y: int(og.Objects[0].Y)}
		break
	}

	return cfg, nil
}
