package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setupLimiter(t *testing.T, cfg Config) (*Limiter, *miniredis.Miniredis, *time.Time) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := time.Unix(1_700_000_000, 0)
	l := New(client, cfg, zaptest.NewLogger(t))
	l.now = func() time.Time { return clock }
	return l, mr, &clock
}

func TestLimiter_BurstThenDeny(t *testing.T) {
	l, mr, _ := setupLimiter(t, Config{Enabled: true, RequestsPerSecond: 1, Burst: 3})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "GET:/api/v1/villas:127.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := l.Allow(ctx, "GET:/api/v1/villas:127.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, mr.Exists(KeyPrefix+"GET:/api/v1/villas:127.0.0.1"))
}

func TestLimiter_Refills(t *testing.T) {
	l, _, clock := setupLimiter(t, Config{Enabled: true, RequestsPerSecond: 2, Burst: 1})
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "k")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "k")
	assert.False(t, ok)

	*clock = clock.Add(600 * time.Millisecond)
	ok, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l, _, _ := setupLimiter(t, Config{Enabled: true, RequestsPerSecond: 1, Burst: 1})
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "b")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "a")
	assert.False(t, ok)
}

func TestLimiter_Disabled(t *testing.T) {
	l, mr, _ := setupLimiter(t, Config{Enabled: false, RequestsPerSecond: 1, Burst: 1})

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.False(t, mr.Exists(KeyPrefix+"k"))

	var nilLimiter *Limiter
	assert.False(t, nilLimiter.Enabled())
	assert.False(t, New(nil, Config{Enabled: true}, zaptest.NewLogger(t)).Enabled())
}

func TestLimiter_FailOpen(t *testing.T) {
	l, mr, _ := setupLimiter(t, Config{Enabled: true, RequestsPerSecond: 1, Burst: 1})
	mr.Close()

	ok, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.True(t, ok)
}
