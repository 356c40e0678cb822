package faceoverlay

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultScanPeriod is the time for the scan line to sweep the box once
	DefaultScanPeriod = 1500 * time.Millisecond
	// DefaultFrameInterval is how often the animator advances the phase
	DefaultFrameInterval = time.Second / 30
)

// ErrAnimatorRunning is returned when starting an animator that is already
// running
var ErrAnimatorRunning = errors.New("animator already running")

// PhaseSource supplies the current scan line phase in the range [0, 1)
type PhaseSource interface {
	Phase() float64
}

// StaticPhase is a PhaseSource fixed at a single value, used when rendering
// still frames
type StaticPhase float64

// Phase returns the fixed value clamped to [0, 1]
func (p StaticPhase) Phase() float64 {
	return math.Max(0, math.Min(1, float64(p)))
}

// PhaseAt returns the linear phase reached after elapsed time for an
// animation that restarts at zero every period
func PhaseAt(elapsed, period time.Duration) float64 {

	if period <= 0 {
		return 0
	}

	e := elapsed % period
	if e < 0 {
		e += period
	}

	return float64(e) / float64(period)
}

// Animator is a free running timer that advances the scan phase and asks the
// host to redraw.  The phase is only written by the animator's own goroutine.
type Animator struct {
	period   time.Duration
	interval time.Duration
	onTick   func()
	// phase holds the float64 bits of the current phase
	phase  atomic.Uint64
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	now    func() time.Time
}

// NewAnimator returns an animator sweeping once per period, ticking every
// interval.  onTick is called from the animator's goroutine after each phase
// update and may be nil.
func NewAnimator(period, interval time.Duration, onTick func()) *Animator {

	if period <= 0 {
		period = DefaultScanPeriod
	}

	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	return &Animator{
		period:   period,
		interval: interval,
		onTick:   onTick,
		now:      time.Now,
	}
}

// Phase returns the most recent phase
func (a *Animator) Phase() float64 {
	return math.Float64frombits(a.phase.Load())
}

// Period returns the sweep period
func (a *Animator) Period() time.Duration {
	return a.period
}

// Running reports whether the animator's timer is active
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done != nil
}

// Start launches the timer.  It runs until Stop is called or ctx is done.
func (a *Animator) Start(ctx context.Context) error {

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.done != nil {
		return ErrAnimatorRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	a.cancel = cancel
	a.done = done

	go a.run(ctx, done)

	return nil
}

func (a *Animator) run(ctx context.Context, done chan struct{}) {

	defer close(done)
	defer a.release(done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	start := a.now()
	a.phase.Store(math.Float64bits(0))

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			// a tick racing with cancellation must not reach the host
			if ctx.Err() != nil {
				return
			}

			a.phase.Store(math.Float64bits(PhaseAt(a.now().Sub(start), a.period)))

			if a.onTick != nil {
				a.onTick()
			}
		}
	}
}

// release clears the running state when the timer exits on its own through
// ctx, unless Stop or a new Start has already replaced it
func (a *Animator) release(done chan struct{}) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.done == done {
		a.cancel()
		a.cancel = nil
		a.done = nil
	}
}

// Stop cancels the timer and waits for its goroutine to exit.  No tick
// callback runs after Stop returns.  Stopping an idle animator is a no-op.
func (a *Animator) Stop() {

	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel = nil
	a.done = nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}
