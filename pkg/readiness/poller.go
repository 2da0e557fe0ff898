// Package readiness waits for an external service to answer a probe.
package readiness

import (
	"context"
	"time"

	"stacklaunch/pkg/model"
)

// Probe checks point-in-time availability. Errors count as failure.
type Probe func(ctx context.Context) model.ProbeResult

// SleepFunc pauses for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Poller runs a probe on a fixed interval for a fixed number of attempts.
type Poller struct {
	// OnAttempt, if set, is called before every probe with the 1-based attempt number.
	OnAttempt func(attempt, max int)
	// Sleep defaults to a context-aware timer.
	Sleep SleepFunc
}

// WaitUntilReady probes up to cfg.MaxAttempts times, sleeping cfg.Interval
// between failed attempts. It never sleeps after a success.
func (p *Poller) WaitUntilReady(ctx context.Context, probe Probe, cfg model.PollConfig) model.PollOutcome {
	sleep := p.Sleep
	if sleep == nil {
		sleep = ContextSleep
	}

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return model.PollCancelled
		}
		if p.OnAttempt != nil {
			p.OnAttempt(attempt, cfg.MaxAttempts)
		}
		if probe(ctx) == model.ProbeSuccess {
			return model.PollReady
		}
		if attempt == cfg.MaxAttempts {
			break
		}
		if err := sleep(ctx, cfg.Interval); err != nil {
			return model.PollCancelled
		}
	}
	return model.PollTimedOut
}

// ContextSleep is the default SleepFunc.
func ContextSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
