package gcapi

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// RetryConfig configures retry behavior for the client's HTTP calls.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial).
	// Default: 3
	MaxAttempts int

	// InitialDelay is the delay before the first retry; it doubles each
	// attempt. Default: 250ms
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries. Default: 5s
	MaxDelay time.Duration
}

func (cfg RetryConfig) withDefaults() RetryConfig {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = 250 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 5 * time.Second
	}
	return cfg
}

// statusError reports an unexpected HTTP status.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("gcapi: unexpected status %d", e.status)
}

// retryable reports whether err is worth retrying. Rejected credentials and
// other client-side statuses are final; server errors and transport
// failures are transient.
func retryable(err error) bool {
	if errors.Is(err, ErrLoginRejected) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.status >= 500
	}
	return true
}

// retryDo runs op with capped exponential backoff and jitter.
func retryDo(ctx context.Context, cfg RetryConfig, op func(context.Context) error) error {
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) || attempt >= cfg.MaxAttempts {
			break
		}

		// Up to 25% jitter keeps callers from retrying in lockstep.
		// #nosec G404 -- jitter is non-cryptographic timing variance.
		jittered := delay + time.Duration(rand.Int64N(int64(delay/4)+1))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(jittered):
		}

		delay *= 2
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return lastErr
}
