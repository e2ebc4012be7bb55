package patternlock

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Task is a handle to a deferred callback.
type Task interface {
	// Cancel stops the callback from firing. Cancelling a fired or already
	// cancelled task is a no-op.
	Cancel()
	// Pending reports whether the callback has neither fired nor been
	// cancelled.
	Pending() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Task
}

// frameTask is a callback waiting on a FrameScheduler. Its clock is a linear
// tween from 0 to 1 over the delay.
type frameTask struct {
	clock     *gween.Tween
	fn        func()
	cancelled bool
	fired     bool
}

func (t *frameTask) Cancel() {
	t.cancelled = true
}

func (t *frameTask) Pending() bool {
	return !t.cancelled && !t.fired
}

// FrameScheduler is a single-threaded scheduler advanced by the host's frame
// loop. Callbacks run inside Update, on the caller's goroutine, so they never
// race with pointer handling.
//
// There is no background clock: nothing fires until Update is called.
type FrameScheduler struct {
	tasks []*frameTask
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule queues fn to run once d has elapsed across Update calls. A
// non-positive delay fires on the next Update.
func (s *FrameScheduler) Schedule(d time.Duration, fn func()) Task {
	secs := float32(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	t := &frameTask{
		clock: gween.New(0, 1, secs, ease.Linear),
		fn:    fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Update advances every pending task by dt seconds and runs the ones that
// finished, in scheduling order. Tasks scheduled by a callback start counting
// on the next Update.
func (s *FrameScheduler) Update(dt float32) {
	if len(s.tasks) == 0 {
		return
	}
	current := s.tasks
	s.tasks = nil

	var keep []*frameTask
	for _, t := range current {
		if t.cancelled {
			continue
		}
		if _, finished := t.clock.Update(dt); !finished {
			keep = append(keep, t)
			continue
		}
		t.fired = true
		if t.fn != nil {
			t.fn()
		}
	}
	s.tasks = append(keep, s.tasks...)
}

// Len returns the number of tasks still pending.
func (s *FrameScheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}
