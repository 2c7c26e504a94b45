package ratelimiter

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/casetrack/pkg/apperror"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAttemptLimiter_Disabled(t *testing.T) {
	l := NewAttemptLimiter(nil, nil, "login", 3, time.Minute)
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, l.Fail(ctx, "a@b.c"))
	}
	assert.NoError(t, l.Check(ctx, "a@b.c"))
}

func TestAttemptLimiter_BlocksAfterMax(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := NewAttemptLimiter(rdb, zap.NewNop(), "login", 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Check(ctx, "a@b.c"))
		require.NoError(t, l.Fail(ctx, "a@b.c"))
	}

	err := l.Check(ctx, "a@b.c")
	var rlErr *RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.True(t, errors.Is(err, apperror.ErrRateLimitExceeded))
	assert.Greater(t, rlErr.RetryAfter, time.Duration(0))

	assert.NoError(t, l.Check(ctx, "other@b.c"))

	require.NoError(t, l.Reset(ctx, "a@b.c"))
	assert.NoError(t, l.Check(ctx, "a@b.c"))
}

func TestAttemptLimiter_WindowExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := NewAttemptLimiter(rdb, zap.NewNop(), "login", 1, time.Minute)
	ctx := context.Background()

	require.NoError(t, l.Fail(ctx, "a@b.c"))
	require.Error(t, l.Check(ctx, "a@b.c"))

	mr.FastForward(2 * time.Minute)
	assert.NoError(t, l.Check(ctx, "a@b.c"))
}

func TestAttemptLimiter_RedisDownStaysOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	l := NewAttemptLimiter(rdb, zap.NewNop(), "login", 1, time.Minute)
	ctx := context.Background()

	mr.Close()

	assert.NoError(t, l.Check(ctx, "a@b.c"))
	assert.NoError(t, l.Fail(ctx, "a@b.c"))
	assert.NoError(t, l.Fail(ctx, "a@b.c"))
	assert.NoError(t, l.Check(ctx, "a@b.c"))
	assert.NoError(t, l.Reset(ctx, "a@b.c"))
}
