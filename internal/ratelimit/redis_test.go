package ratelimit

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements redisAPI in memory.
type fakeRedis struct {
	counts map[string]int64
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	n, ok := f.counts[key]
	if !ok {
		return "", redis.Nil
	}
	return strconv.FormatInt(n, 10), nil
}

func (f *fakeRedis) IncrWithExpire(_ context.Context, key string, expiration time.Duration) (int64, error) {
	f.counts[key]++
	f.ttls[key] = expiration
	return f.counts[key], nil
}

func (f *fakeRedis) Del(_ context.Context, key string) error {
	delete(f.counts, key)
	delete(f.ttls, key)
	return nil
}

func TestRedis_LimitsAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	api := newFakeRedis()
	l := NewRedisWithAPI(api, 3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "login:a@b.c")
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, l.Fail(ctx, "login:a@b.c"))
	}

	ok, err := l.Allow(ctx, "login:a@b.c")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, api.ttls[keyPrefix+"login:a@b.c"])

	ok, err = l.Allow(ctx, "login:other@b.c")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, l.Reset(ctx, "login:a@b.c"))
	ok, err = l.Allow(ctx, "login:a@b.c")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedis_GetError(t *testing.T) {
	api := newFakeRedis()
	api.getErr = assert.AnError
	l := NewRedisWithAPI(api, 3, time.Minute)

	ok, err := l.Allow(context.Background(), "k")
	assert.False(t, ok)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var l Noop
	ok, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, l.Fail(ctx, "k"))
	assert.NoError(t, l.Reset(ctx, "k"))
}
