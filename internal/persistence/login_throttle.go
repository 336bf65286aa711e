package persistence

import (
	"context"
	"time"
)

// LoginThrottle counts failed login attempts per identifier in Redis.
// Counters expire after the lockout window. Every method degrades open
// when Redis is unavailable so authentication stays reachable.
type LoginThrottle struct {
	redis   *Redis
	max     int
	lockout time.Duration
}

// NewLoginThrottle builds a throttle over the shared Redis client.
func NewLoginThrottle(redis *Redis, maxAttempts int, lockout time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if lockout <= 0 {
		lockout = 15 * time.Minute
	}
	return &LoginThrottle{redis: redis, max: maxAttempts, lockout: lockout}
}

func (t *LoginThrottle) key(identifier string) string {
	return "login_attempts:" + identifier
}

// Blocked reports whether the identifier has exceeded the attempt budget.
func (t *LoginThrottle) Blocked(ctx context.Context, identifier string) bool {
	if t == nil || t.redis == nil || t.redis.Client == nil {
		return false
	}
	count, err := t.redis.Client.Get(ctx, t.key(identifier)).Int()
	if err != nil {
		return false
	}
	return count >= t.max
}

// RecordFailure increments the failed-attempt counter and refreshes its TTL.
func (t *LoginThrottle) RecordFailure(ctx context.Context, identifier string) {
	if t == nil || t.redis == nil || t.redis.Client == nil {
		return
	}
	key := t.key(identifier)
	if err := t.redis.Client.Incr(ctx, key).Err(); err != nil {
		return
	}
	_ = t.redis.Client.Expire(ctx, key, t.lockout).Err()
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, identifier string) {
	if t == nil || t.redis == nil || t.redis.Client == nil {
		return
	}
	_ = t.redis.Client.Del(ctx, t.key(identifier)).Err()
}
