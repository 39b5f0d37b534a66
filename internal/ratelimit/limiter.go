package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one attempt against a sliding window.
type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter counts attempts per key. Every call to Allow is recorded as an
// attempt, allowed or not.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type Config struct {
	MaxAttempts int64
	WindowSize  time.Duration
}

// login_attempts:<email>
func attemptsKey(key string) string {
	return "login_attempts:" + key
}
