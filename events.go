package patternlock

// EventType identifies a recognizer lifecycle event.
type EventType uint8

const (
	EventStrokeStart EventType = iota // a stroke began on a node
	EventNodeVisited                  // a node was appended to the sequence
	EventStrokeEnd                    // the stroke ended and a password was derived
	EventReset                        // the board was cleared
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventStrokeStart:
		return "stroke-start"
	case EventNodeVisited:
		return "node-visited"
	case EventStrokeEnd:
		return "stroke-end"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// LockEvent carries one recognizer event to an EventStore.
type LockEvent struct {
	Type EventType
	// Node is the visited node for EventNodeVisited and the first node for
	// EventStrokeStart; -1 otherwise.
	Node int
	// Password is set for EventStrokeEnd.
	Password string
	// Passed is true when an EventNodeVisited node was inserted by the
	// pass-through rule rather than touched directly.
	Passed bool
}

// EventStore is the interface for optional event forwarding, e.g. into an
// ECS world. See the ecs sub-package.
type EventStore interface {
	EmitEvent(event LockEvent)
}
