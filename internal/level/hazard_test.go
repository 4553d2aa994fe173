package level

import (
	"testing"

	"github.com/samdwyer/icebound/internal/world"
)

func TestHazardRegistry(t *testing.T) {
	positions := []world.Position{{X: 6, Y: 5}, {X: 7, Y: 8}, {X: 7, Y: 9}}
	r := NewHazardRegistry(positions)

	if r.Count() != 3 {
		t.Fatalf("Expected 3 hazards, got %d", r.Count())
	}

	for i, h := range r.All() {
		if h.Position != positions[i] {
			t.Errorf("Hazard %d at %v, want %v", i, h.Position, positions[i])
		}
		if !r.At(h.Position) {
			t.Errorf("At(%v) should be true", h.Position)
		}
	}

	if r.At(world.Pos(0, 0)) {
		t.Error("At(0,0) should be false")
	}
}

func TestHazardRegistryAllReturnsCopy(t *testing.T) {
	r := NewHazardRegistry([]world.Position{{X: 1, Y: 1}})

	all := r.All()
	all[0].Position = world.Pos(9, 9)

	if r.All()[0].Position != world.Pos(1, 1) {
		t.Error("Mutating All() result should not change the registry")
	}
}

func TestHazardRegistryEachOrder(t *testing.T) {
	positions := []world.Position{{X: 3, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	r := NewHazardRegistry(positions)

	var seen []world.Position
	r.Each(func(h Hazard) {
		seen = append(seen, h.Position)
	})

	if len(seen) != len(positions) {
		t.Fatalf("Expected %d hazards, got %d", len(positions), len(seen))
	}
	for i := range seen {
		if seen[i] != positions[i] {
			t.Errorf("Each order %d: got %v, want %v", i, seen[i], positions[i])
		}
	}
}
