// Package retry provides bounded exponential-backoff retry for engine
// construction.
package retry

import (
	"context"
	"errors"
	"time"
)

// Policy bounds a retry loop. A Policy with neither MaxAttempts nor
// MaxElapsed set performs a single attempt; use DefaultPolicy for the
// standard construction budget.
type Policy struct {
	// InitialDelay is the wait after the first failure. Zero retries
	// immediately.
	InitialDelay time.Duration

	// MaxDelay caps exponential growth. Zero means uncapped.
	MaxDelay time.Duration

	// Multiplier scales the delay after each failure. Values below 1
	// are treated as 2.
	Multiplier float64

	// MaxElapsed caps total wall-clock time across attempts, waits
	// included. Zero means no elapsed cap.
	MaxElapsed time.Duration

	// MaxAttempts caps the number of attempts. Zero means no attempt
	// cap.
	MaxAttempts int

	// ShouldRetry classifies errors. Nil retries everything except
	// context cancellation.
	ShouldRetry func(error) bool
}

// DefaultPolicy returns the standard engine-construction budget:
// exponential backoff from half a second, doubling up to thirty seconds
// between attempts, for at most two minutes overall.
func DefaultPolicy() Policy {
	return Policy{
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     30 * time.Second,
		Multiplier:   2,
		MaxElapsed:   2 * time.Minute,
	}
}

// Do runs op until it succeeds or p gives up: a non-retryable error, the
// attempt cap, the elapsed budget, or ctx ending. Waits never push past
// the elapsed budget. The last error op returned is what Do returns.
func Do(ctx context.Context, p Policy, op func() error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	bounded := p.MaxAttempts > 0 || p.MaxElapsed > 0
	mult := p.Multiplier
	if mult < 1 {
		mult = 2
	}
	start := time.Now()
	delay := p.InitialDelay
	var lastErr error
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		lastErr = err
		if !bounded || !shouldRetry(ctx, p, err) {
			break
		}
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			break
		}
		if p.MaxElapsed > 0 && time.Since(start)+delay >= p.MaxElapsed {
			break
		}
		if !wait(ctx, delay) {
			break
		}
		delay = time.Duration(float64(delay) * mult)
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
	return lastErr
}

func shouldRetry(ctx context.Context, p Policy, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if p.ShouldRetry == nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		return true
	}
	return p.ShouldRetry(err)
}

// wait sleeps for d unless ctx ends first. Reports whether the wait
// completed.
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
