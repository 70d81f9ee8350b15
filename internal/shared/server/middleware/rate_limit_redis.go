package middleware

import (
	"context"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"career-backend/internal/shared/telemetry"
	"career-backend/internal/shared/util"
)

const redisRateKeyPrefix = "rate:"

type redisRateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisLimiter is a fixed-window limiter shared by every API instance.
// A rule admits Burst requests per Burst/Rate seconds. Redis errors fail open.
type RedisLimiter struct {
	client redisRateCounter
}

func NewRedisLimiter(client redisRateCounter) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, rule RateLimitRule) (bool, time.Duration) {
	if l == nil || l.client == nil {
		return true, 0
	}
	if rule.Rate <= 0 || rule.Burst <= 0 {
		return true, 0
	}
	window := ruleWindow(rule)
	redisKey := redisRateKeyPrefix + util.HashKey(key)

	count, err := incrWithTTL(ctx, l.client, redisKey, window)
	if err != nil {
		telemetry.Warn("rate_limit.redis_error", map[string]any{"key": key, "error": err.Error()})
		return true, 0
	}
	if count <= int64(rule.Burst) {
		return true, 0
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil || ttl <= 0 {
		ttl = window
	}
	return false, ttl
}

func ruleWindow(rule RateLimitRule) time.Duration {
	seconds := math.Ceil(float64(rule.Burst) / rule.Rate)
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

func incrWithTTL(ctx context.Context, client redisRateCounter, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = client.Expire(ctx, key, ttl).Err()
	}
	return count, nil
}
