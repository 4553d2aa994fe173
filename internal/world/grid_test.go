package world

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, rows [][]Tile) *Grid {
	t.Helper()
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestGridLookupInRange(t *testing.T) {
	rows := [][]Tile{
		{1, 0, 1},
		{0, 0, 1},
	}
	g := mustGrid(t, rows)

	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("Expected 3x2 grid, got %dx%d", g.Width(), g.Height())
	}

	for y, row := range rows {
		for x, want := range row {
			if got := g.Lookup(x, y); got != want {
				t.Errorf("Lookup(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestGridLookupOutOfRangeIsOpen(t *testing.T) {
	g := mustGrid(t, [][]Tile{
		{1, 1},
		{1, 1},
	})

	outside := []Position{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-5, -5}, {100, 1}, {1, 100},
	}
	for _, p := range outside {
		if got := g.Lookup(p.X, p.Y); got != TileOpen {
			t.Errorf("Lookup%v = %v, want open", p, got)
		}
		if g.Contains(p) {
			t.Errorf("Contains%v should be false", p)
		}
	}
}

func TestGridCopiesInput(t *testing.T) {
	rows := [][]Tile{{0, 1}}
	g := mustGrid(t, rows)

	rows[0][0] = TileBlocked
	if g.Lookup(0, 0) != TileOpen {
		t.Error("Grid should not observe changes to the source rows")
	}
}

func TestNewGridRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		rows [][]Tile
	}{
		{"no rows", nil},
		{"empty first row", [][]Tile{{}}},
		{"ragged rows", [][]Tile{{0, 1, 0}, {0, 1}}},
		{"unknown code", [][]Tile{{0, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.rows)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("Expected ErrInvalidGrid, got %v", err)
			}
			if g != nil {
				t.Error("Expected no grid on error")
			}
		})
	}
}

func TestTilePassable(t *testing.T) {
	if !TileOpen.IsPassable() {
		t.Error("Open tile should be passable")
	}
	if TileBlocked.IsPassable() {
		t.Error("Blocked tile should not be passable")
	}
}
