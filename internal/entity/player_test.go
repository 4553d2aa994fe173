package entity

import (
	"testing"

	"github.com/samdwyer/icebound/internal/world"
)

func corridor(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.NewGrid([][]world.Tile{
		{1, 0, 0, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestMoveOntoOpenTile(t *testing.T) {
	g := corridor(t)
	p := NewPlayer(world.Pos(1, 0))

	if !p.RequestMove(g, Right) {
		t.Fatal("Expected move right to be accepted")
	}
	if p.Position() != world.Pos(2, 0) {
		t.Errorf("Expected position (2,0), got %v", p.Position())
	}
	if p.State() != Transitioning {
		t.Errorf("Expected transitioning, got %v", p.State())
	}
}

func TestMoveOntoBlockedTile(t *testing.T) {
	g := corridor(t)
	p := NewPlayer(world.Pos(1, 0))

	if p.RequestMove(g, Left) {
		t.Fatal("Expected move into wall to be rejected")
	}
	if p.Position() != world.Pos(1, 0) {
		t.Errorf("Position should be unchanged, got %v", p.Position())
	}
	if p.State() != Idle {
		t.Errorf("State should stay idle, got %v", p.State())
	}
}

func TestMoveDroppedWhileTransitioning(t *testing.T) {
	g, err := world.NewGrid([][]world.Tile{{0, 0, 0, 0}})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	p := NewPlayer(world.Pos(1, 0))

	if !p.RequestMove(g, Right) {
		t.Fatal("First move should be accepted")
	}

	// Legal target, but the player is still animating.
	if p.RequestMove(g, Right) {
		t.Error("Move while transitioning should be dropped")
	}
	if p.RequestMove(g, Left) {
		t.Error("Move while transitioning should be dropped")
	}
	if p.Position() != world.Pos(2, 0) {
		t.Errorf("Expected position (2,0), got %v", p.Position())
	}

	p.CompleteTransition()
	if p.State() != Idle {
		t.Fatalf("Expected idle after transition complete, got %v", p.State())
	}

	if !p.RequestMove(g, Right) {
		t.Fatal("Move after transition complete should be accepted")
	}
	if p.Position() != world.Pos(3, 0) {
		t.Errorf("Expected position (3,0), got %v", p.Position())
	}
}

func TestMovePastGridEdge(t *testing.T) {
	// Lookups beyond the grid report open floor, so the edge does not block.
	g, err := world.NewGrid([][]world.Tile{{0, 1}})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	p := NewPlayer(world.Pos(0, 0))

	if !p.RequestMove(g, Left) {
		t.Fatal("Expected move past the left edge to be accepted")
	}
	if p.Position() != world.Pos(-1, 0) {
		t.Errorf("Expected position (-1,0), got %v", p.Position())
	}
}

func TestDirectionDelta(t *testing.T) {
	if Left.Delta() != -1 {
		t.Errorf("Left delta = %d, want -1", Left.Delta())
	}
	if Right.Delta() != 1 {
		t.Errorf("Right delta = %d, want 1", Right.Delta())
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(world.Pos(1, 0))

	if p.Position() != world.Pos(1, 0) || p.State() != Idle || p.Busy() {
		t.Errorf("Expected idle player at (1,0), got %v %v", p.Position(), p.State())
	}
	if p.Symbol() != '@' {
		t.Errorf("Expected symbol '@', got %q", p.Symbol())
	}

	p.RequestMove(corridor(t), Right)
	if !p.Busy() {
		t.Error("Player should be busy after an accepted move")
	}
}
