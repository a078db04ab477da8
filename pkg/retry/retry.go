// Package retry runs an operation with capped exponential backoff.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Config holds the backoff strategy.
type Config struct {
	// MaxAttempts includes the initial attempt.
	MaxAttempts int
	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the backoff growth.
	MaxDelay time.Duration
	// Multiplier grows the delay between attempts.
	Multiplier float64
	// RetryablePatterns restricts retries to errors whose message contains
	// one of these substrings. Empty means retry everything.
	RetryablePatterns []string
}

// DefaultConfig returns a conservative general-purpose strategy.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// DatabaseConfig returns a strategy tuned for waiting on a database that is
// still starting up.
func DatabaseConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryablePatterns = []string{
		"connection refused",
		"connection reset",
		"i/o timeout",
		"connection timed out",
		"dial tcp",
		"database system is starting up",
		"too many connections",
		"network is unreachable",
	}
	return cfg
}

// Do runs fn until it succeeds, the attempts are exhausted, or ctx is done.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxAttempts <= 0 {
		return fmt.Errorf("MaxAttempts must be greater than 0")
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}

		if !retryable(lastErr, cfg) || attempt == cfg.MaxAttempts-1 {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delayFor(attempt, cfg)):
		}
	}

	return lastErr
}

func retryable(err error, cfg Config) bool {
	if err == nil {
		return false
	}
	if len(cfg.RetryablePatterns) == 0 {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, p := range cfg.RetryablePatterns {
		if strings.Contains(msg, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func delayFor(attempt int, cfg Config) time.Duration {
	d := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if d > float64(cfg.MaxDelay) {
		d = float64(cfg.MaxDelay)
	}
	// ±10% jitter to avoid synchronized reconnect storms.
	//nolint:gosec // jitter only, no security requirement
	d += d * 0.1 * (rand.Float64()*2 - 1)
	return time.Duration(d)
}
