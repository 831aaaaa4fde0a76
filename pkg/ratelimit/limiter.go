// Package ratelimit counts requests per key in fixed windows stored in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Result struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// RedisLimiter is a fixed window counter (INCR + EXPIRE). Counters live in
// Redis so every API instance shares them.
type RedisLimiter struct {
	client redis.Cmdable
	prefix string
	max    int64
	window time.Duration
	now    func() time.Time
}

type Option func(*RedisLimiter)

func WithPrefix(prefix string) Option {
	return func(l *RedisLimiter) { l.prefix = prefix }
}

func WithClock(now func() time.Time) Option {
	return func(l *RedisLimiter) { l.now = now }
}

func NewRedisLimiter(client redis.Cmdable, max int, window time.Duration, opts ...Option) *RedisLimiter {
	l := &RedisLimiter{
		client: client,
		prefix: "rl:",
		max:    int64(max),
		window: window,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *RedisLimiter) key(key string, windowStart time.Time) string {
	return fmt.Sprintf("%s%s:%d", l.prefix, strings.ReplaceAll(key, " ", "_"), windowStart.Unix())
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now()
	start := now.Truncate(l.window)
	redisKey := l.key(key, start)

	hits, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit %s: %w", key, err)
	}
	// first hit opens the window
	if hits == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return Result{}, fmt.Errorf("rate limit %s: expire: %w", key, err)
		}
	}

	res := Result{
		Allowed:   hits <= l.max,
		Limit:     l.max,
		Remaining: max(l.max-hits, 0),
	}
	if !res.Allowed {
		res.RetryAfter = start.Add(l.window).Sub(now)
		if res.RetryAfter < time.Second {
			res.RetryAfter = time.Second
		}
	}
	return res, nil
}
