package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/api/middleware"
	"github.com/redis/go-redis/v9"
)

type RedisLimiter struct {
	client *redis.Client
	cfg    Config
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, cfg Config) *RedisLimiter {
	return &RedisLimiter{client: client, cfg: cfg, now: time.Now}
}

// Allow records the attempt in a sorted set scored by unix nanoseconds and
// counts what is left inside the window.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {

	logger := middleware.LoggerFromContext(ctx)

	key = attemptsKey(key)
	now := r.now()
	windowStart := now.Add(-r.cfg.WindowSize).UnixNano()
	member := strconv.FormatInt(now.UnixNano(), 10)

	pipe := r.client.TxPipeline()

	// remove attempts older than the window
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: member})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return Decision{}, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts <= r.cfg.MaxAttempts {
		return Decision{Allowed: true, Remaining: r.cfg.MaxAttempts - attempts}, nil
	}

	oldest, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil || len(oldest) == 0 {
		logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
		return Decision{RetryAfter: r.cfg.WindowSize}, nil
	}

	oldestAt := time.Unix(0, int64(oldest[0].Score))
	retryAfter := max(oldestAt.Add(r.cfg.WindowSize).Sub(now), 0)

	logger.Warn("Rate limit exceeded", slog.String("key", key), slog.Int64("attempts", attempts))

	return Decision{RetryAfter: retryAfter}, nil
}
