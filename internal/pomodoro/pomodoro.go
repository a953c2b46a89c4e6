package pomodoro

import (
	"fmt"
	"time"
)

// DefaultDuration is the classic 25-minute focus session.
const DefaultDuration = 25 * time.Minute

// Timer is a countdown focus timer. It is a pure state machine: the owner
// drives it with Tick on whatever cadence it renders at.
type Timer struct {
	duration  time.Duration
	remaining time.Duration
	running   bool
}

// New returns a stopped timer with the given session length. A
// non-positive duration falls back to the default.
func New(duration time.Duration) Timer {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return Timer{duration: duration, remaining: duration}
}

// Toggle starts a paused timer and pauses a running one. An expired timer
// stays stopped until Reset.
func (t Timer) Toggle() Timer {
	if t.remaining <= 0 {
		return t
	}
	t.running = !t.running
	return t
}

// Reset stops the timer and restores the full session length.
func (t Timer) Reset() Timer {
	t.remaining = t.duration
	t.running = false
	return t
}

// Tick advances the countdown by elapsed. The timer pauses itself at zero.
func (t Timer) Tick(elapsed time.Duration) Timer {
	if !t.running {
		return t
	}
	t.remaining -= elapsed
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
	}
	return t
}

// Running reports whether the countdown is active.
func (t Timer) Running() bool { return t.running }

// Done reports whether the session has fully elapsed.
func (t Timer) Done() bool { return t.remaining <= 0 }

// Remaining returns the time left in the session.
func (t Timer) Remaining() time.Duration { return t.remaining }

// String renders the countdown as MM:SS.
func (t Timer) String() string {
	total := int(t.remaining.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
