package patternlock

// Vec2 is a point in board coordinates. The origin is the top-left corner of
// the board, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Equals reports whether v and o have identical coordinates. No tolerance is
// applied: every node center comes from the same layout formula.
func (v Vec2) Equals(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Segment is a straight line between two board points.
type Segment struct {
	Start, End Vec2
}

// zeroSegment returns a zero-length segment anchored at p.
func zeroSegment(p Vec2) Segment {
	return Segment{Start: p, End: p}
}

// State is the recognizer's position in its per-stroke state machine.
type State uint8

const (
	StateIdle     State = iota // no stroke in progress
	StateTracking              // a stroke started on a node and has not ended
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// Status is the host-supplied verdict hint used to tint the board. The
// recognizer stores it but never computes it.
type Status uint8

const (
	StatusNormal Status = iota // neutral
	StatusRight                // last password was accepted
	StatusWrong                // last password was rejected
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRight:
		return "right"
	case StatusWrong:
		return "wrong"
	default:
		return "normal"
	}
}

// ParseStatus maps "normal", "right" or "wrong" to a Status. Anything else
// yields StatusNormal and false.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "normal":
		return StatusNormal, true
	case "right":
		return StatusRight, true
	case "wrong":
		return StatusWrong, true
	default:
		return StatusNormal, false
	}
}

// Mode selects whether the board is used to set a new pattern or verify an
// existing one. It only changes the vertical placement of the board.
type Mode uint8

const (
	ModeSet    Mode = iota // setting a pattern; a header sits above the board
	ModeVerify             // verifying a pattern; no header
)
