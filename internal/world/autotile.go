package world

// Variant indexes the decoration drawn for a cell or segment.
type Variant int

// Wall variants produced by ResolveVariant.
const (
	VariantOpen      Variant = 0
	VariantIsolated  Variant = 1
	VariantLeftEdge  Variant = 2
	VariantInterior  Variant = 3
	VariantRightEdge Variant = 4
)

// TileLookup is the read-only view of a grid the derived geometry needs.
type TileLookup interface {
	Lookup(x, y int) Tile
}

// TileDescriptor is the static render description of one grid cell.
type TileDescriptor struct {
	Position Position
	Variant  Variant
}

// ResolveVariant picks the wall variant for a tile from its left and right
// neighbours. Open tiles never get a decoration.
func ResolveVariant(tile, left, right Tile) Variant {
	if tile != TileBlocked {
		return VariantOpen
	}

	switch {
	case left == TileOpen && right == TileOpen:
		return VariantIsolated
	case left == TileOpen && right == TileBlocked:
		return VariantLeftEdge
	case left == TileBlocked && right == TileOpen:
		return VariantRightEdge
	case left == TileBlocked && right == TileBlocked:
		return VariantInterior
	default:
		return VariantOpen
	}
}

// VariantAt resolves the variant of the cell at (x, y) using grid lookups,
// so edge cells see open space beyond the grid.
func VariantAt(grid TileLookup, x, y int) Variant {
	return ResolveVariant(grid.Lookup(x, y), grid.Lookup(x-1, y), grid.Lookup(x+1, y))
}

// Autotile returns one descriptor per cell in row-major order.
func (g *Grid) Autotile() []TileDescriptor {
	descriptors := make([]TileDescriptor, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			descriptors = append(descriptors, TileDescriptor{
				Position: Pos(x, y),
				Variant:  VariantAt(g, x, y),
			})
		}
	}
	return descriptors
}
