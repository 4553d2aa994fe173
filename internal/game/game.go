// Package game provides the main game loop and wires input to the level.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/icebound/internal/entity"
	"github.com/samdwyer/icebound/internal/level"
	"github.com/samdwyer/icebound/internal/leveldata"
	"github.com/samdwyer/icebound/internal/telemetry"
	"github.com/samdwyer/icebound/internal/ui"
)

// transitionDone is the payload of the interrupt posted when a move
// animation ends.
type transitionDone struct{}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	title    string
	tracer   trace.Tracer
	running  bool

	// after schedules fn once d has elapsed. Replaced in tests.
	after func(d time.Duration, fn func())
}

// New creates a game on the real terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return NewWithScreen(cfg, screen), nil
}

// NewWithScreen creates a game drawing to an already initialised screen.
func NewWithScreen(cfg Config, screen *ui.Screen) *Game {
	tracer := telemetry.NoopTracer()
	if cfg.Telemetry.Enabled() {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		cfg:     cfg,
		screen:  screen,
		tracer:  tracer,
		running: true,
		after:   func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// Load resolves the configured level and builds it.
func (g *Game) Load(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.init")
	defer span.End()

	def, err := g.resolveLevel()
	if err != nil {
		span.RecordError(err)
		return err
	}

	l, err := level.Build(ctx, def.Definition)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("build level %q: %w", def.ID, err)
	}

	colors, err := def.Palette.Resolve()
	if err != nil {
		return fmt.Errorf("level %q: %w", def.ID, err)
	}

	g.title = def.Name
	g.session = NewSession(l, g.tracer)
	g.renderer = ui.NewRenderer(g.screen, ui.ThemeFromColors(colors))

	start := l.Player().Position()
	span.SetAttributes(
		attribute.String("level.id", def.ID),
		attribute.Int("player.start_x", start.X),
		attribute.Int("player.start_y", start.Y),
	)
	log.Info().Str("level", def.ID).Stringer("start", start).Msg("Level loaded")

	return nil
}

func (g *Game) resolveLevel() (*leveldata.LevelDef, error) {
	if g.cfg.LevelFile != "" {
		def, err := leveldata.LoadLevelFile(g.cfg.LevelFile)
		if err != nil {
			return nil, err
		}
		if def.Name == "" {
			def.Name = g.cfg.LevelFile
		}
		return &def, nil
	}

	registry, err := leveldata.LoadLevelRegistry()
	if err != nil {
		return nil, err
	}
	return registry.Resolve(g.cfg.LevelID)
}

// Run loads the level and executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.Load(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.session.Level(), g.title)
		g.handleEvent(ctx, g.screen.PollEvent())
	}

	return nil
}

// Session returns the active session, or nil before Load.
func (g *Game) Session() *Session {
	return g.session
}

// handleEvent turns a terminal event into session events and applies them.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(transitionDone); ok {
			g.session.Push(TransitionCompleteEvent())
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}

	for _, out := range g.session.Pump(ctx) {
		g.afterOutcome(out)
	}
}

// handleKeyEvent processes keyboard input. Each key event is one press, so
// every arrow key yields exactly one movement request.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyLeft:
		g.session.Push(MoveEvent(entity.Left))
	case tcell.KeyRight:
		g.session.Push(MoveEvent(entity.Right))

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'h', 'a':
			g.session.Push(MoveEvent(entity.Left))
		case 'l', 'd':
			g.session.Push(MoveEvent(entity.Right))
		}
	}
}

// afterOutcome starts the move animation timer for accepted moves.
func (g *Game) afterOutcome(out Outcome) {
	if out.Event.Kind != EventMove {
		return
	}

	log.Debug().
		Stringer("direction", out.Event.Direction).
		Bool("accepted", out.Accepted).
		Stringer("position", out.Position).
		Msg("Move request")

	if !out.Accepted {
		return
	}

	g.after(g.cfg.Transition, func() {
		if err := g.screen.PostEvent(tcell.NewEventInterrupt(transitionDone{})); err != nil {
			log.Warn().Err(err).Msg("Dropped transition complete event")
		}
	})
}
