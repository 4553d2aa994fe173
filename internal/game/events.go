package game

import (
	"github.com/zyedidia/generic/queue"

	"github.com/samdwyer/icebound/internal/entity"
)

// EventKind identifies a discrete input delivered to the session.
type EventKind int

const (
	// EventMove requests a one-tile step in Event.Direction.
	EventMove EventKind = iota
	// EventTransitionComplete reports that the move animation finished.
	EventTransitionComplete
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventTransitionComplete:
		return "transition_complete"
	default:
		return "unknown"
	}
}

// Event is a single input for the session.
type Event struct {
	Kind      EventKind
	Direction entity.Direction // Only for EventMove
}

// MoveEvent returns a movement request.
func MoveEvent(dir entity.Direction) Event {
	return Event{Kind: EventMove, Direction: dir}
}

// TransitionCompleteEvent returns the transition-finished notification.
func TransitionCompleteEvent() Event {
	return Event{Kind: EventTransitionComplete}
}

// EventQueue is a FIFO of pending session events. It is owned by the game
// loop goroutine and is not safe for concurrent use.
type EventQueue struct {
	q *queue.Queue[Event]
	n int
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{q: queue.New[Event]()}
}

// Push appends an event.
func (eq *EventQueue) Push(ev Event) {
	eq.q.Enqueue(ev)
	eq.n++
}

// Pop removes and returns the oldest event.
func (eq *EventQueue) Pop() (Event, bool) {
	if eq.q.Empty() {
		return Event{}, false
	}
	eq.n--
	return eq.q.Dequeue(), true
}

// Len returns the number of pending events.
func (eq *EventQueue) Len() int {
	return eq.n
}
