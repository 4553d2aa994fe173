// Package entity provides the actors that live on the puzzle grid.
package entity

import "github.com/samdwyer/icebound/internal/world"

// MovementState gates whether the player may accept a new move.
type MovementState int

const (
	// Idle accepts movement requests.
	Idle MovementState = iota
	// Transitioning drops movement requests until the presentation layer
	// reports that the move animation finished.
	Transitioning
)

// String returns a human-readable state name.
func (s MovementState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Transitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// Direction is a horizontal step request.
type Direction int

const (
	// Left steps one column towards x = 0.
	Left Direction = iota
	// Right steps one column towards increasing x.
	Right
)

// Delta returns the x offset of a single step.
func (d Direction) Delta() int {
	if d == Left {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Player is the single actor of a level. Its position and movement state
// change only through RequestMove and CompleteTransition.
type Player struct {
	position world.Position
	state    MovementState
	symbol   rune
}

// NewPlayer creates an idle player at the given tile.
func NewPlayer(start world.Position) *Player {
	return &Player{
		position: start,
		state:    Idle,
		symbol:   '@',
	}
}

// Position returns the player's current tile.
func (p *Player) Position() world.Position {
	return p.position
}

// State returns the player's movement state.
func (p *Player) State() MovementState {
	return p.state
}

// Symbol returns the rune the player is drawn with.
func (p *Player) Symbol() rune {
	return p.symbol
}

// CanMove reports whether a step in dir would land on a passable tile.
// It ignores the movement state.
func (p *Player) CanMove(grid world.TileLookup, dir Direction) bool {
	target := p.position.Add(dir.Delta(), 0)
	return grid.Lookup(target.X, target.Y).IsPassable()
}

// RequestMove applies a step if the player is idle and the target tile is
// open. The position changes immediately and the player enters
// Transitioning. Returns false, with no change, when the request is dropped.
func (p *Player) RequestMove(grid world.TileLookup, dir Direction) bool {
	if p.Busy() {
		return false
	}
	if !p.CanMove(grid, dir) {
		return false
	}

	p.position = p.position.Add(dir.Delta(), 0)
	p.state = Transitioning
	return true
}

// CompleteTransition returns the player to Idle.
func (p *Player) CompleteTransition() {
	p.state = Idle
}

// Busy returns true while a move transition is playing.
func (p *Player) Busy() bool {
	return p.state == Transitioning
}
