// Package level assembles a playable puzzle level from its definition.
package level

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/icebound/internal/entity"
	"github.com/samdwyer/icebound/internal/telemetry"
	"github.com/samdwyer/icebound/internal/world"
)

// Level owns the grid, hazards, platforms and the player for one session.
// Everything except the player is fixed once New returns.
type Level struct {
	grid      *world.Grid
	tiles     []world.TileDescriptor
	hazards   *HazardRegistry
	platforms []Platform
	player    *entity.Player
	tileSize  TileSize
}

// New validates def and builds the level. On failure it returns a
// *ConfigurationError and no level.
func New(def Definition) (*Level, error) {
	if def.TileSize.Width <= 0 || def.TileSize.Height <= 0 {
		return nil, configErr("tile_size", "must be positive, got %gx%g", def.TileSize.Width, def.TileSize.Height)
	}

	grid, err := world.NewGrid(def.Tiles)
	if err != nil {
		return nil, &ConfigurationError{Field: "tiles", Err: err}
	}

	if !grid.Contains(def.PlayerStart) {
		return nil, configErr("player_start", "%v outside %dx%d grid", def.PlayerStart, grid.Width(), grid.Height())
	}

	for i, p := range def.Hazards {
		if !grid.Contains(p) {
			return nil, configErr(fmt.Sprintf("hazards[%d]", i), "%v outside %dx%d grid", p, grid.Width(), grid.Height())
		}
	}

	platforms := make([]Platform, 0, len(def.Platforms))
	for i, spec := range def.Platforms {
		if !grid.Contains(spec.Anchor) {
			return nil, configErr(fmt.Sprintf("platforms[%d].anchor", i), "%v outside %dx%d grid", spec.Anchor, grid.Width(), grid.Height())
		}
		if spec.Width < 1 {
			return nil, configErr(fmt.Sprintf("platforms[%d].width", i), "must be at least 1, got %d", spec.Width)
		}
		platforms = append(platforms, NewPlatform(spec.Anchor, spec.Width))
	}

	return &Level{
		grid:      grid,
		tiles:     grid.Autotile(),
		hazards:   NewHazardRegistry(def.Hazards),
		platforms: platforms,
		player:    entity.NewPlayer(def.PlayerStart),
		tileSize:  def.TileSize,
	}, nil
}

// Build is New with tracing and load logging.
func Build(ctx context.Context, def Definition) (*Level, error) {
	tracer := telemetry.Tracer("level")
	_, span := tracer.Start(ctx, "level.build")
	defer span.End()

	l, err := New(def)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	l.hazards.Each(func(h Hazard) {
		log.Debug().Stringer("position", h.Position).Msg("Creating fire")
	})
	segments := 0
	for _, p := range l.platforms {
		segments += len(p.Segments)
		log.Debug().Stringer("position", p.Anchor).Int("width", p.Width).Msg("Creating ice")
	}

	span.SetAttributes(
		attribute.Int("level.width", l.grid.Width()),
		attribute.Int("level.height", l.grid.Height()),
		attribute.Int("level.hazard_count", l.hazards.Count()),
		attribute.Int("level.platform_count", len(l.platforms)),
		attribute.Int("level.segment_count", segments),
	)

	return l, nil
}

// Grid returns the level's tile grid.
func (l *Level) Grid() *world.Grid {
	return l.grid
}

// Tiles returns a copy of the autotile descriptor of every cell, row-major.
func (l *Level) Tiles() []world.TileDescriptor {
	out := make([]world.TileDescriptor, len(l.tiles))
	copy(out, l.tiles)
	return out
}

// Hazards returns the hazard registry.
func (l *Level) Hazards() *HazardRegistry {
	return l.hazards
}

// Platforms returns a copy of the laid-out platforms in definition order.
func (l *Level) Platforms() []Platform {
	out := make([]Platform, len(l.platforms))
	for i, p := range l.platforms {
		p.Segments = append([]Segment(nil), p.Segments...)
		out[i] = p
	}
	return out
}

// Player returns the level's single actor.
func (l *Level) Player() *entity.Player {
	return l.player
}

// OnHazard returns true while the player stands on a fire tile.
func (l *Level) OnHazard() bool {
	return l.hazards.At(l.player.Position())
}

// PlatformUnder returns the platform covering the player's tile, if any.
func (l *Level) PlatformUnder() (Platform, bool) {
	pos := l.player.Position()
	for _, p := range l.platforms {
		if p.Covers(pos) {
			return p, true
		}
	}
	return Platform{}, false
}

// PlayerWorld returns the player's position in world units.
func (l *Level) PlayerWorld() (x, y float64) {
	return l.tileSize.World(l.player.Position())
}

// Move forwards a movement request to the player's state machine.
func (l *Level) Move(dir entity.Direction) bool {
	return l.player.RequestMove(l.grid, dir)
}

// CompleteTransition tells the player its move animation finished.
func (l *Level) CompleteTransition() {
	l.player.CompleteTransition()
}
