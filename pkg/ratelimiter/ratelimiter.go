package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"anoa.com/casetrack/pkg/apperror"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return e.Message
}

func (e *RateLimitError) Unwrap() error {
	return apperror.ErrRateLimitExceeded
}

// AttemptLimiter counts failures per key inside a fixed window.
type AttemptLimiter interface {
	Check(ctx context.Context, key string) error
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

type redisAttemptLimiter struct {
	rdb    *redis.Client
	log    *zap.Logger
	prefix string
	max    int
	window time.Duration
}

// NewAttemptLimiter returns a limiter that never blocks when rdb is nil or max <= 0.
// Redis failures are logged and leave the limiter open.
func NewAttemptLimiter(rdb *redis.Client, log *zap.Logger, prefix string, max int, window time.Duration) AttemptLimiter {
	if log == nil {
		log = zap.NewNop()
	}
	return &redisAttemptLimiter{
		rdb:    rdb,
		log:    log,
		prefix: prefix,
		max:    max,
		window: window,
	}
}

func (l *redisAttemptLimiter) enabled() bool {
	return l.rdb != nil && l.max > 0
}

func (l *redisAttemptLimiter) key(key string) string {
	return fmt.Sprintf("rate_limit:%s:%s", l.prefix, key)
}

func (l *redisAttemptLimiter) Check(ctx context.Context, key string) error {
	if !l.enabled() {
		return nil
	}

	count, err := l.rdb.Get(ctx, l.key(key)).Int()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		l.log.Warn("rate limit check failed, allowing attempt", zap.String("prefix", l.prefix), zap.Error(err))
		return nil
	}
	if count < l.max {
		return nil
	}

	ttl, err := l.rdb.TTL(ctx, l.key(key)).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	return &RateLimitError{
		Message:    "too many failed attempts, try again later",
		RetryAfter: ttl,
	}
}

func (l *redisAttemptLimiter) Fail(ctx context.Context, key string) error {
	if !l.enabled() {
		return nil
	}

	count, err := l.rdb.Incr(ctx, l.key(key)).Result()
	if err != nil {
		l.log.Warn("failed to record attempt", zap.String("prefix", l.prefix), zap.Error(err))
		return nil
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, l.key(key), l.window).Err(); err != nil {
			l.log.Warn("failed to set attempt window", zap.String("prefix", l.prefix), zap.Error(err))
		}
	}
	return nil
}

func (l *redisAttemptLimiter) Reset(ctx context.Context, key string) error {
	if !l.enabled() {
		return nil
	}
	if err := l.rdb.Del(ctx, l.key(key)).Err(); err != nil {
		l.log.Warn("failed to reset attempts", zap.String("prefix", l.prefix), zap.Error(err))
	}
	return nil
}
