package gateway

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass says how a failed generation may be reattempted.
type retryClass int

const (
	// retryNever: the request itself is wrong (cancelled context,
	// max-tokens budget too small). Retrying repeats the mistake.
	retryNever retryClass = iota
	// retryOnce: the model produced malformed output. One more roll of
	// the dice is worth it; after that the schema is the likely problem.
	retryOnce
	// retryAlways: transient provider trouble (rate limits, 5xx,
	// network). Retry until attempts run out.
	retryAlways
)

// classifyFailure buckets a generation error for the retry loop.
func classifyFailure(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return retryNever
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}
	return retryAlways
}

// RetryProvider reattempts transient generation failures with exponential
// backoff. Quiz and outline generation sit behind a student waiting at a
// terminal, so attempts are few and waits are capped.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	onceBudget := 1

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classifyFailure(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if onceBudget == 0 {
				return nil, err
			}
			onceBudget--
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// wait computes the pause before the next attempt. A rate-limited provider
// that names its own retry-after wins over the backoff curve.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	base := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	base = math.Min(base, float64(r.cfg.MaxWait))

	// Spread ±20% so synchronized clients don't hammer in lockstep.
	spread := 0.8 + 0.4*rand.Float64()
	return time.Duration(math.Max(base*spread, 0))
}
