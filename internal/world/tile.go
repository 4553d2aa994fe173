// Package world provides the puzzle grid and the tile geometry derived from it.
package world

// Tile is the code stored in a single grid cell.
type Tile int

const (
	// TileOpen is passable floor. Lookups outside the grid also report it.
	TileOpen Tile = 0
	// TileBlocked is an impassable wall tile.
	TileBlocked Tile = 1
)

// IsPassable returns true if an actor may step onto the tile.
func (t Tile) IsPassable() bool {
	return t == TileOpen
}

// Valid reports whether t is one of the known tile codes.
func (t Tile) Valid() bool {
	return t == TileOpen || t == TileBlocked
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileOpen:
		return "open"
	case TileBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}
