package crawl

import (
	"context"
	"time"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for feed retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// WithRetry calls attempt until it succeeds, making len(delays)+1 attempts
// at most and sleeping delays[i] before retry i+1. The logger function, if
// provided, is called for each retry with label identifying the operation.
// It returns the last error when every attempt fails.
func WithRetry[T any](ctx context.Context, label string, delays []time.Duration, attempt func(context.Context) (T, error), logger LogFunc) (T, error) {
	maxAttempts := len(delays) + 1

	var zero T
	var lastErr error
	for n := 0; n < maxAttempts; n++ {
		v, err := attempt(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if n >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", label, n+2, err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[n]):
		}
	}

	return zero, lastErr
}
