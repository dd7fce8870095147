package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// delay is the pause before retry number attempt+1. A rate limit's
// Retry-After wins; otherwise the wait grows by Multiplier up to MaxWait,
// with up to 20% jitter either way.
func (c RetryConfig) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	wait := float64(c.InitialWait)
	for range attempt {
		wait *= c.Multiplier
		if wait >= float64(c.MaxWait) {
			break
		}
	}
	wait = min(wait, float64(c.MaxWait))
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(wait, 0))
}

// retryable sorts failures: cancellation, truncation and permanent HTTP
// statuses are final. A schema mismatch earns one more try because the
// model may simply comply next time.
func retryable(err error, schemaMisses int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var (
		trunc   *ErrMaxTokensExceeded
		invalid *ErrInvalidResponse
		unavail *ErrProviderUnavailable
	)
	switch {
	case errors.As(err, &trunc):
		return false
	case errors.As(err, &invalid):
		return schemaMisses <= 1
	case errors.As(err, &unavail):
		return !unavail.Permanent()
	}
	return true
}

type retrying struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry retries transient failures of p. At least one attempt is
// always made.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	return &retrying{inner: p, cfg: cfg}
}

func (r *retrying) Generate(ctx context.Context, p Prompt) (*Reply, error) {
	misses := 0
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reply, err := r.inner.Generate(ctx, p)
		if err == nil {
			return reply, nil
		}
		var invalid *ErrInvalidResponse
		if errors.As(err, &invalid) {
			misses++
		}
		if attempt+1 >= r.cfg.MaxAttempts || !retryable(err, misses) {
			return nil, err
		}
		t := time.NewTimer(r.cfg.delay(attempt, err))
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

func (r *retrying) ModelID() string { return r.inner.ModelID() }
