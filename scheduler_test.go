package patternlock

import (
	"testing"
	"time"
)

func TestFrameScheduler_FiresAfterDelay(t *testing.T) {
	s := NewFrameScheduler()
	fired := 0
	task := s.Schedule(time.Second, func() { fired++ })

	s.Update(0.25)
	s.Update(0.5)
	if fired != 0 || !task.Pending() {
		t.Fatal("task fired early")
	}
	s.Update(0.25)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if task.Pending() {
		t.Error("fired task should not be pending")
	}
	s.Update(10)
	if fired != 1 {
		t.Errorf("task fired again: %d", fired)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestFrameScheduler_Cancel(t *testing.T) {
	s := NewFrameScheduler()
	fired := false
	task := s.Schedule(500*time.Millisecond, func() { fired = true })

	task.Cancel()
	if task.Pending() {
		t.Error("cancelled task should not be pending")
	}
	s.Update(1)
	if fired {
		t.Error("cancelled task fired")
	}
	task.Cancel() // no-op
}

func TestFrameScheduler_ZeroDelay(t *testing.T) {
	s := NewFrameScheduler()
	fired := false
	s.Schedule(0, func() { fired = true })
	s.Update(0)
	if !fired {
		t.Error("zero-delay task should fire on the next update")
	}

	fired = false
	s.Schedule(-time.Second, func() { fired = true })
	s.Update(0)
	if !fired {
		t.Error("negative-delay task should fire on the next update")
	}
}

func TestFrameScheduler_Order(t *testing.T) {
	s := NewFrameScheduler()
	var order []int
	s.Schedule(time.Second, func() { order = append(order, 1) })
	s.Schedule(250*time.Millisecond, func() { order = append(order, 2) })
	s.Schedule(time.Second, func() { order = append(order, 3) })

	s.Update(0.5)
	if len(order) != 1 || order[0] != 2 {
		t.Fatalf("order after 0.5s = %v, want [2]", order)
	}
	s.Update(0.5)
	if len(order) != 3 || order[1] != 1 || order[2] != 3 {
		t.Errorf("order = %v, want [2 1 3]", order)
	}
}

func TestFrameScheduler_ScheduleFromCallback(t *testing.T) {
	s := NewFrameScheduler()
	var second bool
	s.Schedule(0, func() {
		s.Schedule(time.Second, func() { second = true })
	})

	s.Update(1)
	if second {
		t.Fatal("task scheduled during Update should wait for the next Update")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	s.Update(1)
	if !second {
		t.Error("nested task did not fire")
	}
}

type fakeTask struct{ cancelled bool }

func (t *fakeTask) Cancel()       { t.cancelled = true }
func (t *fakeTask) Pending() bool { return !t.cancelled }

type fakeScheduler struct {
	delays []time.Duration
	fns    []func()
	tasks  []*fakeTask
}

func (s *fakeScheduler) Schedule(d time.Duration, fn func()) Task {
	t := &fakeTask{}
	s.delays = append(s.delays, d)
	s.fns = append(s.fns, fn)
	s.tasks = append(s.tasks, t)
	return t
}

func TestRecognizer_CustomScheduler(t *testing.T) {
	sched := &fakeScheduler{}
	resets := 0
	r := NewRecognizer(Config{
		Width:             300,
		AutoResetInterval: 1500 * time.Millisecond,
		Scheduler:         sched,
		OnReset:           func() { resets++ },
	})
	if r.Scheduler() != nil {
		t.Error("recognizer should not create its own scheduler when one is supplied")
	}

	trace(r, 0, 1)
	if len(sched.delays) != 1 || sched.delays[0] != 1500*time.Millisecond {
		t.Fatalf("delays = %v, want [1.5s]", sched.delays)
	}
	resets = 0
	sched.fns[0]()
	if resets != 1 || r.Snapshot().ActiveCount() != 0 {
		t.Errorf("deferred reset did not clear the board (resets=%d)", resets)
	}

	trace(r, 0, 1)
	r.Close()
	if !sched.tasks[1].cancelled {
		t.Error("close should cancel the scheduled task")
	}
}
