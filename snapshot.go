package patternlock

// Snapshot is an immutable view of the recognizer after an event. It owns
// its slices; changing them never affects the recognizer. Presentation code
// should render from a Snapshot alone.
type Snapshot struct {
	State    State
	Nodes    [NodeCount]Node
	Sequence []int     // visited nodes of the stroke in progress
	Segments []Segment // committed lines between visited nodes
	Live     Segment   // line trailing from the last node to the pointer
	Pointer  Vec2      // last adjusted pointer position
	Status   Status

	// LastPassword is the password emitted by the most recent stroke end,
	// kept until the next stroke starts.
	LastPassword string
}

// Tracking reports whether a stroke is in progress.
func (s Snapshot) Tracking() bool {
	return s.State == StateTracking
}

// ActiveCount returns the number of highlighted nodes.
func (s Snapshot) ActiveCount() int {
	n := 0
	for i := range s.Nodes {
		if s.Nodes[i].Active {
			n++
		}
	}
	return n
}

// Password returns the identity form of the stroke in progress.
func (s Snapshot) Password() string {
	return RealPassword(s.Sequence)
}
