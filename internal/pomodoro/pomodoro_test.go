package pomodoro

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	timer := New(0)
	if timer.Remaining() != DefaultDuration {
		t.Errorf("remaining = %v, want %v", timer.Remaining(), DefaultDuration)
	}
	if timer.Running() {
		t.Error("new timer should not be running")
	}
	if timer.String() != "25:00" {
		t.Errorf("String() = %q, want 25:00", timer.String())
	}
}

func TestToggleAndTick(t *testing.T) {
	timer := New(10 * time.Second).Toggle()
	if !timer.Running() {
		t.Fatal("timer should run after toggle")
	}

	timer = timer.Tick(3 * time.Second)
	if timer.Remaining() != 7*time.Second {
		t.Errorf("remaining = %v, want 7s", timer.Remaining())
	}

	// Pause freezes the countdown.
	timer = timer.Toggle()
	timer = timer.Tick(5 * time.Second)
	if timer.Remaining() != 7*time.Second {
		t.Errorf("paused timer advanced to %v", timer.Remaining())
	}
}

func TestExpiry(t *testing.T) {
	timer := New(2 * time.Second).Toggle().Tick(5 * time.Second)
	if !timer.Done() {
		t.Fatal("timer should be done")
	}
	if timer.Running() {
		t.Error("expired timer should stop")
	}
	if timer.String() != "00:00" {
		t.Errorf("String() = %q, want 00:00", timer.String())
	}

	// Toggle on an expired timer is a no-op; Reset restores it.
	if timer.Toggle().Running() {
		t.Error("expired timer restarted without reset")
	}
	timer = timer.Reset()
	if timer.Remaining() != 2*time.Second || timer.Running() {
		t.Errorf("reset timer = %v running=%v", timer.Remaining(), timer.Running())
	}
}
