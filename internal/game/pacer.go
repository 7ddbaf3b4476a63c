package game

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// Pacer is the presentation-delay hook invoked between dealt and drawn
// cards. The engine's correctness never depends on the pause happening or
// on its duration; collaborators install one so card-by-card rendering has
// time to land. Cancelling the context skips the remaining wait, never the
// remaining draws.
type Pacer interface {
	Pause(ctx context.Context)
}

// NopPacer pauses for no time at all. It is the default, and what the
// simulator and most tests want.
type NopPacer struct{}

// Pause returns immediately
func (NopPacer) Pause(ctx context.Context) {}

// ClockPacer waits a fixed delay on a quartz clock, so tests can advance
// the pause synthetically instead of sleeping.
type ClockPacer struct {
	Clock quartz.Clock
	Delay time.Duration
}

// NewClockPacer creates a pacer over the real clock with the given delay.
func NewClockPacer(delay time.Duration) *ClockPacer {
	return &ClockPacer{Clock: quartz.NewReal(), Delay: delay}
}

// Pause blocks for the configured delay or until ctx is cancelled.
func (p *ClockPacer) Pause(ctx context.Context) {
	if p.Delay <= 0 {
		return
	}
	timer := p.Clock.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
