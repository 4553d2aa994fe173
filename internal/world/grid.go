package world

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is wrapped by every error NewGrid returns.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is an immutable, row-major matrix of tile codes.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid builds a grid from rows of tile codes, top row first.
// Rows must be non-empty, of equal length, and contain only known codes.
// The input is copied; later changes to rows do not affect the grid.
func NewGrid(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}

	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrInvalidGrid)
	}

	tiles := make([]Tile, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrInvalidGrid, y, len(row), width)
		}
		for x, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("%w: unknown tile code %d at (%d,%d)", ErrInvalidGrid, int(t), x, y)
			}
		}
		tiles = append(tiles, row...)
	}

	return &Grid{
		width:  width,
		height: len(rows),
		tiles:  tiles,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains returns true if p addresses a cell of the grid.
func (g *Grid) Contains(p Position) bool {
	return g.InBounds(p.X, p.Y)
}

// Lookup returns the tile at (x, y). Coordinates outside the grid report
// TileOpen, so the world beyond the edges is treated as passable.
func (g *Grid) Lookup(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileOpen
	}
	return g.tiles[y*g.width+x]
}

// At is Lookup for a Position.
func (g *Grid) At(p Position) Tile {
	return g.Lookup(p.X, p.Y)
}
