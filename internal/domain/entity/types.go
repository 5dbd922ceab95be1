package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TilePlatform
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage represents the current stage's tile data
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	if px < 0 || py < 0 {
		return true
	}
	return s.GetTile(px/s.TileSize, py/s.TileSize).Solid
}

// PixelSize returns the stage size in pixels
func (s *Stage) PixelSize() (int, int) {
	return s.Width * s.TileSize, s.Height * s.TileSize
}

// SolidRects merges horizontal runs of solid tiles into rects.
// Runs keep the collision world small and avoid seams between tiles.
func (s *Stage) SolidRects() []Rect {
	size := float64(s.TileSize)
	var rects []Rect
	for ty := 0; ty < s.Height; ty++ {
		start := -1
		for tx := 0; tx <= s.Width; tx++ {
			solid := tx < s.Width && s.Tiles[ty][tx].Solid
			if solid && start < 0 {
				start = tx
				continue
			}
			if !solid && start >= 0 {
				rects = append(rects, Rect{
					X: float64(start) * size,
					Y: float64(ty) * size,
					W: float64(tx-start) * size,
					H: size,
				})
				start = -1
			}
		}
	}
	return rects
}

// Spawn returns the spawn point in world coordinates
func (s *Stage) Spawn() Vec2 {
	return Vec2{X: float64(s.SpawnX), Y: float64(s.SpawnY)}
}
