package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/mensa/internal/dispatch"
)

const (
	defaultRefreshInterval = 15 * time.Minute
	retryBase              = 2 * time.Second
	maxBackoff             = 30 * time.Second
)

// DaysSource produces day list events.
type DaysSource interface {
	Days(ctx context.Context) dispatch.Event
}

// Poller refreshes the day list at a fixed cadence and retries failed
// refreshes with exponential backoff.
type Poller struct {
	source   DaysSource
	send     func(dispatch.Event)
	interval time.Duration
	retry    time.Duration
	logger   *zap.Logger
	wake     chan struct{}
}

// NewPoller builds a Poller that hands every event to send.
func NewPoller(source DaysSource, send func(dispatch.Event), interval time.Duration, logger *zap.Logger) *Poller {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		source:   source,
		send:     send,
		interval: interval,
		retry:    retryBase,
		logger:   logger,
		wake:     make(chan struct{}, 1),
	}
}

// Trigger requests an immediate refresh. It never blocks.
func (p *Poller) Trigger() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Run polls until ctx is done. The first refresh happens immediately.
func (p *Poller) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		case <-p.wake:
			failures = 0
			timer.Stop()
		}

		ev := p.source.Days(ctx)
		if ctx.Err() != nil {
			return nil
		}
		p.send(ev)

		wait := p.interval
		if msg, failed := ev[dispatch.FieldErrorMsg]; failed {
			wait = min(calculateBackoff(failures, p.retry), p.interval)
			failures++
			p.logger.Warn("refresh failed",
				zap.String("error", msg),
				zap.Int("failures", failures),
				zap.Duration("retry_in", wait),
			)
		} else {
			failures = 0
			p.logger.Debug("refresh done", zap.Duration("next_in", wait))
		}
		timer.Reset(wait)
	}
}

// calculateBackoff returns base doubled once per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return min(base, maxBackoff)
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
