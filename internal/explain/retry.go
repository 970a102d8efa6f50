package explain

import (
	"context"
	"errors"
	"math"
	"time"
)

// RetryProvider is a decorator that retries transient failures with
// exponential backoff.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Explain(ctx context.Context, in Input) (string, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		text, err := r.inner.Explain(ctx, in)
		if err == nil {
			return text, nil
		}
		lastErr = err

		// Context errors are never retried.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := time.Duration(float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt)))
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
	}

	return "", lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}
