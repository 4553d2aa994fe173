package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/icebound/internal/level"
	"github.com/samdwyer/icebound/internal/world"
)

// Outcome records how the session handled one event.
type Outcome struct {
	Event    Event
	Accepted bool
	Position world.Position // Player position after the event
}

// Session feeds queued events into a level's player state machine. It is the
// only writer of the player's position and movement state.
type Session struct {
	level  *level.Level
	queue  *EventQueue
	tracer trace.Tracer
}

// NewSession creates a session for l.
func NewSession(l *level.Level, tracer trace.Tracer) *Session {
	return &Session{
		level:  l,
		queue:  NewEventQueue(),
		tracer: tracer,
	}
}

// Level returns the session's level.
func (s *Session) Level() *level.Level {
	return s.level
}

// Push queues an event for the next Pump.
func (s *Session) Push(ev Event) {
	s.queue.Push(ev)
}

// Pending returns the number of queued events.
func (s *Session) Pending() int {
	return s.queue.Len()
}

// Pump handles every queued event in order and returns their outcomes.
// Moves that arrive while the player is transitioning are dropped.
func (s *Session) Pump(ctx context.Context) []Outcome {
	var outcomes []Outcome
	for {
		ev, ok := s.queue.Pop()
		if !ok {
			return outcomes
		}
		outcomes = append(outcomes, s.dispatch(ctx, ev))
	}
}

func (s *Session) dispatch(ctx context.Context, ev Event) Outcome {
	player := s.level.Player()

	switch ev.Kind {
	case EventMove:
		_, span := s.tracer.Start(ctx, "player.move")
		defer span.End()

		accepted := s.level.Move(ev.Direction)
		span.SetAttributes(
			attribute.String("move.direction", ev.Direction.String()),
			attribute.Bool("move.accepted", accepted),
			attribute.Int("player.x", player.Position().X),
			attribute.Int("player.y", player.Position().Y),
		)
		return Outcome{Event: ev, Accepted: accepted, Position: player.Position()}

	case EventTransitionComplete:
		// A stray completion while idle changes nothing.
		accepted := player.Busy()
		s.level.CompleteTransition()
		return Outcome{Event: ev, Accepted: accepted, Position: player.Position()}

	default:
		return Outcome{Event: ev, Position: player.Position()}
	}
}
