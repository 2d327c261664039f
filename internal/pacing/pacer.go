// Package pacing keeps a fixed cool-down between outbound calls so the remote
// side does not rate limit the batch.
package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a gap of at least interval between the end of one call and
// the start of the next. Callers Wait before a call and mark it Done after.
type Pacer struct {
	limit    rate.Limit
	limiter  *rate.Limiter
	interval time.Duration
}

// New returns a Pacer that lets the first call through at once. A zero
// interval disables pacing.
func New(interval time.Duration) *Pacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer{
		limit:    limit,
		limiter:  rate.NewLimiter(limit, 1),
		interval: interval,
	}
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Done marks the end of a call. The cool-down for the next Wait starts now,
// however long the call itself took.
func (p *Pacer) Done() {
	p.limiter = rate.NewLimiter(p.limit, 1)
	p.limiter.Allow()
}

func (p *Pacer) Interval() time.Duration {
	return p.interval
}
