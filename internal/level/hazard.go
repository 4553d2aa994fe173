package level

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/icebound/internal/world"
)

// Hazard is a fire fixed to a tile for the lifetime of the level.
type Hazard struct {
	Position world.Position
}

// HazardRegistry holds the level's hazards. It is read-only after creation.
// Hazards are not checked against tile codes; one may sit on a wall.
type HazardRegistry struct {
	hazards  []Hazard
	occupied mapset.Set[world.Position]
}

// NewHazardRegistry creates a registry from hazard positions, in order.
func NewHazardRegistry(positions []world.Position) *HazardRegistry {
	r := &HazardRegistry{
		hazards:  make([]Hazard, 0, len(positions)),
		occupied: mapset.New[world.Position](),
	}
	for _, p := range positions {
		r.hazards = append(r.hazards, Hazard{Position: p})
		r.occupied.Put(p)
	}
	return r
}

// All returns a copy of every hazard in definition order.
func (r *HazardRegistry) All() []Hazard {
	out := make([]Hazard, len(r.hazards))
	copy(out, r.hazards)
	return out
}

// Each calls fn for every hazard in definition order.
func (r *HazardRegistry) Each(fn func(Hazard)) {
	for _, h := range r.hazards {
		fn(h)
	}
}

// At returns true if a hazard sits on p.
func (r *HazardRegistry) At(p world.Position) bool {
	return r.occupied.Has(p)
}

// Count returns the number of hazards.
func (r *HazardRegistry) Count() int {
	return len(r.hazards)
}
