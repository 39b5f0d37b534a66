package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps the attempt timestamps in process. Used when no
// redis backend is configured.
type MemoryLimiter struct {
	mu       sync.Mutex
	cfg      Config
	now      func() time.Time
	attempts map[string][]time.Time
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{cfg: cfg, now: time.Now, attempts: map[string][]time.Time{}}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	windowStart := now.Add(-m.cfg.WindowSize)
	key = attemptsKey(key)

	// drop attempts that fell out of the window
	kept := m.attempts[key][:0]
	for _, at := range m.attempts[key] {
		if at.After(windowStart) {
			kept = append(kept, at)
		}
	}

	kept = append(kept, now)
	m.attempts[key] = kept

	count := int64(len(kept))

	if count > m.cfg.MaxAttempts {
		return Decision{RetryAfter: max(kept[0].Add(m.cfg.WindowSize).Sub(now), 0)}, nil
	}

	return Decision{Allowed: true, Remaining: m.cfg.MaxAttempts - count}, nil
}
