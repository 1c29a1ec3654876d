package janitor

import (
	"context"
	"time"
)

// Sweeper removes elapsed reminders.
type Sweeper interface {
	Sweep(ctx context.Context)
}

// Janitor runs the cleanup loop: one sweep right away, then one per interval
// until the context is cancelled. A single persistent goroutine, no
// re-arming timers.
type Janitor struct {
	sweeper  Sweeper
	interval time.Duration
}

func New(sweeper Sweeper, interval time.Duration) *Janitor {
	return &Janitor{
		sweeper:  sweeper,
		interval: interval,
	}
}

func (j *Janitor) Run(ctx context.Context) {
	j.sweeper.Sweep(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweeper.Sweep(ctx)
		}
	}
}
