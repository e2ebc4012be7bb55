package patternlock

import (
	"strings"
	"testing"
	"time"
)

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{"steps": [`, "parse script:"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `step 0: unknown action "jump"`},
		{"empty trace", `{"steps": [{"action": "trace"}]}`, "at least one node"},
		{"trace range", `{"steps": [{"action": "trace", "nodes": [0, 9]}]}`, "node 9 out of range"},
		{"negative wait", `{"steps": [{"action": "reset"}, {"action": "wait", "ms": -5}]}`, "step 1: wait of -5ms"},
		{"bad status", `{"steps": [{"action": "status", "status": "meh"}]}`, `unknown status "meh"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestScript_ReplayTrace(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "trace", "nodes": [0, 2]},
		{"action": "expect", "password": "012"},
		{"action": "trace", "nodes": [6, 4, 2, 5]},
		{"action": "expect", "password": "6425"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	res, err := s.Replay(NewRecognizer(Config{Width: 300}))
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(res.Passwords) != 2 || res.Passwords[0] != "012" || res.Passwords[1] != "6425" {
		t.Errorf("passwords = %v, want [012 6425]", res.Passwords)
	}
	if res.Final.ActiveCount() != 4 {
		t.Errorf("final active = %d, want 4", res.Final.ActiveCount())
	}
}

func TestScript_ReplayOffset(t *testing.T) {
	s, err := NewTraceScript([]int{0, 4, 8})
	if err != nil {
		t.Fatalf("NewTraceScript: %v", err)
	}
	r := NewRecognizer(Config{Width: 300, ScreenHeight: 800, Mode: ModeSet})
	res, err := s.Replay(r)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.Final.LastPassword != "048" {
		t.Errorf("password = %q, want 048", res.Final.LastPassword)
	}
}

func TestScript_ReplayPointerSteps(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "x": 50, "y": 250},
		{"action": "move", "x": 150, "y": 250},
		{"action": "move", "x": 150, "y": 50},
		{"action": "release", "x": 150, "y": 50},
		{"action": "drag", "fromX": 250, "fromY": 50, "toX": 250, "toY": 250, "frames": 6},
		{"action": "status", "status": "wrong"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	res, err := s.Replay(NewRecognizer(Config{Width: 300}))
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	want := []string{"671", "258"}
	if len(res.Passwords) != len(want) {
		t.Fatalf("passwords = %v, want %v", res.Passwords, want)
	}
	for i := range want {
		if res.Passwords[i] != want[i] {
			t.Errorf("passwords[%d] = %q, want %q", i, res.Passwords[i], want[i])
		}
	}
	if res.Final.Status != StatusWrong {
		t.Errorf("status = %v, want wrong", res.Final.Status)
	}
}

func TestScript_ReplayWaitAndReset(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "trace", "nodes": [3, 5]},
		{"action": "wait", "ms": 400},
		{"action": "trace", "nodes": [1, 7]},
		{"action": "wait", "ms": 1000}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	r := NewRecognizer(Config{Width: 300, AutoResetInterval: time.Second})
	res, err := s.Replay(r)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(res.Passwords) != 2 || res.Passwords[0] != "35" || res.Passwords[1] != "17" {
		t.Errorf("passwords = %v, want [35 17]", res.Passwords)
	}
	if res.Final.ActiveCount() != 0 {
		t.Error("deferred reset should have cleared the board")
	}

	s, _ = LoadScript([]byte(`{"steps": [{"action": "trace", "nodes": [0]}, {"action": "reset"}]}`))
	res, err = s.Replay(NewRecognizer(Config{Width: 300}))
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.Final.ActiveCount() != 0 || len(res.Passwords) != 1 {
		t.Errorf("after reset: active=%d passwords=%v", res.Final.ActiveCount(), res.Passwords)
	}
}

func TestScript_ReplayErrors(t *testing.T) {
	s, _ := LoadScript([]byte(`{"steps": [
		{"action": "trace", "nodes": [0, 1]},
		{"action": "expect", "password": "0123"}
	]}`))
	_, err := s.Replay(NewRecognizer(Config{Width: 300}))
	if err == nil || !strings.Contains(err.Error(), `step 1: password "01", want "0123"`) {
		t.Errorf("error = %v", err)
	}

	s, _ = LoadScript([]byte(`{"steps": [{"action": "wait", "ms": 10}]}`))
	_, err = s.Replay(NewRecognizer(Config{Width: 300, Scheduler: &fakeScheduler{}}))
	if err == nil || !strings.Contains(err.Error(), "step 0: wait") {
		t.Errorf("error = %v", err)
	}
}

func TestNewTraceScript_Invalid(t *testing.T) {
	if _, err := NewTraceScript(nil); err == nil {
		t.Error("empty trace should fail")
	}
	if _, err := NewTraceScript([]int{-1}); err == nil {
		t.Error("negative node should fail")
	}
}
