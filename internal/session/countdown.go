package session

import (
	"fmt"
	"sync"
	"time"
)

// CountdownState enumerates the timer machine's states.
type CountdownState int

const (
	// CountdownIdle: not running; remaining holds the configured or
	// paused value.
	CountdownIdle CountdownState = iota
	// CountdownRunning: counting down toward a deadline.
	CountdownRunning
	// CountdownElapsed: terminal; remaining is zero.
	CountdownElapsed
)

// String returns a human-readable state name.
func (s CountdownState) String() string {
	switch s {
	case CountdownIdle:
		return "idle"
	case CountdownRunning:
		return "running"
	case CountdownElapsed:
		return "elapsed"
	default:
		return "unknown"
	}
}

// Countdown is the per-step timer state machine. It never reads the
// wall clock itself: every transition takes now explicitly, so an
// external scheduler drives it and tests simulate time. Safe for
// concurrent use; the background runner ticks it while the UI reads it.
type Countdown struct {
	mu         sync.Mutex
	configured time.Duration
	remaining  time.Duration
	deadline   time.Time
	state      CountdownState
}

// NewCountdown creates an idle countdown of the given length.
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{configured: d, remaining: d}
}

// State returns the current state.
func (c *Countdown) State() CountdownState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Remaining returns the remaining time, zero once elapsed.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Start begins (or resumes) the countdown from whatever remaining time
// is left. Only valid from idle; starting a running or elapsed timer is
// a no-op.
func (c *Countdown) Start(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CountdownIdle {
		return
	}
	c.deadline = now.Add(c.remaining)
	c.state = CountdownRunning
}

// Pause freezes the remaining time at its current value. Only valid
// while running.
func (c *Countdown) Pause(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CountdownRunning {
		return
	}
	c.remaining = c.deadline.Sub(now)
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.state = CountdownIdle
}

// Reset returns the countdown to its configured length, from any state.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.configured
	c.deadline = time.Time{}
	c.state = CountdownIdle
}

// Tick recomputes remaining from the deadline. While running it
// transitions to elapsed autonomously once the deadline passes; no
// further ticking is needed after that. Returns true on the tick that
// elapses the timer.
func (c *Countdown) Tick(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CountdownRunning {
		return false
	}
	c.remaining = c.deadline.Sub(now)
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = CountdownElapsed
		return true
	}
	return false
}

// Display renders the countdown for second-granularity display: M:SS
// while time remains, DONE once elapsed.
func (c *Countdown) Display() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == CountdownElapsed {
		return "DONE"
	}
	total := int(c.remaining.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
