package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/logger"
)

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithTickInterval sets how often the runner advances the countdown.
// The default (200ms) is frequent enough for second-granularity display.
func WithTickInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.tickInterval = d
	}
}

// Runner drives the active step's countdown in the background and
// notifies once when it elapses. Only one countdown is live at a time:
// attaching a new one discards the previous step's timer state, so
// ticking never outlives the step that owns it.
type Runner struct {
	notifier     domain.Notifier
	log          *logger.Logger
	tickInterval time.Duration

	mu        sync.Mutex
	countdown *Countdown
	label     string
	running   bool
	cancel    context.CancelFunc
}

// NewRunner creates a runner with the given dependencies and options.
func NewRunner(notifier domain.Notifier, log *logger.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		notifier:     notifier,
		log:          log,
		tickInterval: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins the background tick loop. Non-blocking.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		r.log.Warn("countdown runner already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.running = true

	go r.loop(childCtx)
	r.log.Debug("countdown runner started (tick=%s)", r.tickInterval)
}

// Stop cancels the tick loop. Safe to call more than once.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	r.cancel()
	r.running = false
	r.log.Debug("countdown runner stopped")
}

// Attach makes the given countdown the live one, discarding whatever
// the runner was ticking before. A nil countdown detaches (step without
// a timer).
func (r *Runner) Attach(c *Countdown, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countdown = c
	r.label = label
}

// Countdown returns the live countdown, or nil.
func (r *Runner) Countdown() *Countdown {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countdown
}

func (r *Runner) loop(ctx context.Context) {
	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.tick(ctx, now)
		}
	}
}

func (r *Runner) tick(ctx context.Context, now time.Time) {
	r.mu.Lock()
	c := r.countdown
	label := r.label
	r.mu.Unlock()

	if c == nil {
		return
	}
	if c.Tick(now) {
		msg := "Timer is up."
		if label != "" {
			msg = fmt.Sprintf("[Timer] %s — time's up.", label)
		}
		if err := r.notifier.NotifyUrgent(ctx, msg); err != nil {
			r.log.Error("runner: notifying elapse: %v", err)
		}
	}
}
