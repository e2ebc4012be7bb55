package patternlock

import (
	"encoding/json"
	"fmt"
	"time"
)

// ScriptStep is a single action in a replay script. Coordinates are in host
// space, the same space PointerDown and friends take.
type ScriptStep struct {
	Action   string  `json:"action"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Nodes    []int   `json:"nodes,omitempty"`
	Ms       int     `json:"ms,omitempty"`
	Status   string  `json:"status,omitempty"`
	Password string  `json:"password,omitempty"`
}

// Script is a parsed replay script.
//
//	{"steps": [
//	  {"action": "trace", "nodes": [0, 4, 8]},
//	  {"action": "expect", "password": "048"},
//	  {"action": "wait", "ms": 500}
//	]}
//
// Actions: press, move, release (x, y); drag (fromX, fromY, toX, toY,
// frames); trace (nodes, drawn center to center); wait (ms, advances the
// recognizer's FrameScheduler); reset; status (normal, right, wrong);
// expect (password, compared with the most recent stroke end).
type Script struct {
	Steps []ScriptStep `json:"steps"`
}

// ReplayResult is the outcome of Script.Replay.
type ReplayResult struct {
	// Passwords holds every password emitted, in order.
	Passwords []string
	// Final is the snapshot after the last step.
	Final Snapshot
}

// LoadScript parses a JSON replay script.
func LoadScript(jsonData []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &s, nil
}

func (st ScriptStep) validate() error {
	switch st.Action {
	case "press", "move", "release", "drag", "reset", "expect":
		return nil
	case "trace":
		if len(st.Nodes) == 0 {
			return fmt.Errorf("trace needs at least one node")
		}
		for _, n := range st.Nodes {
			if n < 0 || n >= NodeCount {
				return fmt.Errorf("trace node %d out of range", n)
			}
		}
		return nil
	case "wait":
		if st.Ms < 0 {
			return fmt.Errorf("wait of %dms", st.Ms)
		}
		return nil
	case "status":
		if _, ok := ParseStatus(st.Status); !ok {
			return fmt.Errorf("unknown status %q", st.Status)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// Replay runs every step against r. A wait step needs r to own its
// FrameScheduler. Replay stops at the first failing expect.
func (s *Script) Replay(r *Recognizer) (ReplayResult, error) {
	var res ReplayResult
	offset := r.Config().VerticalOffset()
	grid := r.Grid()

	// record notes a password whenever an event ends a stroke.
	record := func(before bool, snap Snapshot) {
		if before && !snap.Tracking() {
			res.Passwords = append(res.Passwords, snap.LastPassword)
		}
	}
	apply := func(fn func(x, y float64) Snapshot, x, y float64) {
		before := r.State() == StateTracking
		record(before, fn(x, y))
	}

	for i, st := range s.Steps {
		switch st.Action {
		case "press":
			apply(r.PointerDown, st.X, st.Y)
		case "move":
			apply(r.PointerMove, st.X, st.Y)
		case "release":
			apply(r.PointerUp, st.X, st.Y)
		case "drag":
			frames := st.Frames
			if frames < 2 {
				frames = 2
			}
			apply(r.PointerDown, st.FromX, st.FromY)
			steps := frames - 2
			for j := 1; j <= steps; j++ {
				t := float64(j) / float64(steps+1)
				apply(r.PointerMove, st.FromX+(st.ToX-st.FromX)*t, st.FromY+(st.ToY-st.FromY)*t)
			}
			apply(r.PointerMove, st.ToX, st.ToY)
			apply(r.PointerUp, st.ToX, st.ToY)
		case "trace":
			first := grid.Center(st.Nodes[0])
			apply(r.PointerDown, first.X, first.Y+offset)
			for _, n := range st.Nodes[1:] {
				c := grid.Center(n)
				apply(r.PointerMove, c.X, c.Y+offset)
			}
			last := grid.Center(st.Nodes[len(st.Nodes)-1])
			apply(r.PointerUp, last.X, last.Y+offset)
		case "wait":
			sched := r.Scheduler()
			if sched == nil {
				return res, fmt.Errorf("replay: step %d: wait needs the recognizer's own scheduler", i)
			}
			sched.Update(float32((time.Duration(st.Ms) * time.Millisecond).Seconds()))
		case "reset":
			r.Reset()
		case "status":
			status, _ := ParseStatus(st.Status)
			r.SetStatus(status)
		case "expect":
			got := r.Snapshot().LastPassword
			if got != st.Password {
				res.Final = r.Snapshot()
				return res, fmt.Errorf("replay: step %d: password %q, want %q", i, got, st.Password)
			}
		default:
			return res, fmt.Errorf("replay: step %d: unknown action %q", i, st.Action)
		}
	}
	res.Final = r.Snapshot()
	return res, nil
}

// NewTraceScript returns a script that draws nodes center to center in one
// stroke.
func NewTraceScript(nodes []int) (*Script, error) {
	st := ScriptStep{Action: "trace", Nodes: nodes}
	if err := st.validate(); err != nil {
		return nil, fmt.Errorf("trace script: %w", err)
	}
	return &Script{Steps: []ScriptStep{st}}, nil
}
