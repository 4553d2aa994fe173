package level

import "github.com/samdwyer/icebound/internal/world"

// TileSize is the size of one tile in presentation units.
type TileSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// World scales a tile position into presentation units. Row 0 stays at the
// top; no vertical flip is applied.
func (s TileSize) World(p world.Position) (x, y float64) {
	return float64(p.X) * s.Width, float64(p.Y) * s.Height
}

// PlatformSpec places a platform of the given width with its left end on
// Anchor.
type PlatformSpec struct {
	Anchor world.Position `json:"anchor"`
	Width  int            `json:"width"`
}

// Definition is the static level configuration consumed once by New.
type Definition struct {
	Tiles       [][]world.Tile   `json:"tiles"` // Row-major, top row first
	TileSize    TileSize         `json:"tile_size"`
	PlayerStart world.Position   `json:"player_start"`
	Hazards     []world.Position `json:"hazards"`
	Platforms   []PlatformSpec   `json:"platforms"`
}
