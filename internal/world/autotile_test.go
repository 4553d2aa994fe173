package world

import "testing"

func TestResolveVariantTable(t *testing.T) {
	tests := []struct {
		tile, left, right Tile
		want              Variant
	}{
		{1, 0, 0, VariantIsolated},
		{1, 0, 1, VariantLeftEdge},
		{1, 1, 0, VariantRightEdge},
		{1, 1, 1, VariantInterior},
		{0, 0, 0, VariantOpen},
		{0, 1, 1, VariantOpen},
		{0, 0, 1, VariantOpen},
		{0, 1, 0, VariantOpen},
	}

	for _, tt := range tests {
		got := ResolveVariant(tt.tile, tt.left, tt.right)
		if got != tt.want {
			t.Errorf("ResolveVariant(%d,%d,%d) = %d, want %d", tt.tile, tt.left, tt.right, got, tt.want)
		}
	}
}

func TestAutotileWallRun(t *testing.T) {
	// A full-width wall row sees open space past both grid edges.
	g := mustGrid(t, [][]Tile{{1, 1, 1, 1, 1}})

	want := []Variant{VariantLeftEdge, VariantInterior, VariantInterior, VariantInterior, VariantRightEdge}
	for x, v := range want {
		if got := VariantAt(g, x, 0); got != v {
			t.Errorf("VariantAt(%d,0) = %d, want %d", x, got, v)
		}
	}
}

func TestAutotileIsolatedWall(t *testing.T) {
	g := mustGrid(t, [][]Tile{{0, 1, 0}})

	if got := VariantAt(g, 1, 0); got != VariantIsolated {
		t.Errorf("Isolated wall variant = %d, want %d", got, VariantIsolated)
	}
	if got := VariantAt(g, 0, 0); got != VariantOpen {
		t.Errorf("Open cell variant = %d, want %d", got, VariantOpen)
	}
}

func TestAutotileCoversEveryCell(t *testing.T) {
	g := mustGrid(t, [][]Tile{
		{1, 1, 0},
		{0, 1, 0},
	})

	descriptors := g.Autotile()
	if len(descriptors) != 6 {
		t.Fatalf("Expected 6 descriptors, got %d", len(descriptors))
	}

	want := []TileDescriptor{
		{Pos(0, 0), VariantLeftEdge},
		{Pos(1, 0), VariantRightEdge},
		{Pos(2, 0), VariantOpen},
		{Pos(0, 1), VariantOpen},
		{Pos(1, 1), VariantIsolated},
		{Pos(2, 1), VariantOpen},
	}
	for i, d := range descriptors {
		if d != want[i] {
			t.Errorf("Descriptor %d = %+v, want %+v", i, d, want[i])
		}
	}
}
