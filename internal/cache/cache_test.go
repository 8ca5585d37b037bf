package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
		mr.Close()
	})
	return mr
}

func TestAsideGuarded_CachesFetchedValue(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()
	key := UnseenNotificationsKey(7)

	calls := 0
	fetch := func(dest *bool) func() error {
		return func() error {
			calls++
			*dest = true
			return nil
		}
	}

	var first bool
	require.NoError(t, AsideGuarded(ctx, key, UnseenNotificationsVersionKey(7), &first, UnseenNotificationsTTL, fetch(&first)))
	assert.True(t, first)
	assert.True(t, mr.Exists(key))

	var second bool
	require.NoError(t, AsideGuarded(ctx, key, UnseenNotificationsVersionKey(7), &second, UnseenNotificationsTTL, fetch(&second)))
	assert.True(t, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, UnseenNotificationsTTL, mr.TTL(key))
}

func TestAsideGuarded_InvalidateForcesRefetch(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	calls := 0
	var v bool
	fetch := func() error { calls++; return nil }

	require.NoError(t, AsideGuarded(ctx, UnseenNotificationsKey(1), UnseenNotificationsVersionKey(1), &v, UnseenNotificationsTTL, fetch))
	InvalidateUnseen(ctx, 1)
	require.NoError(t, AsideGuarded(ctx, UnseenNotificationsKey(1), UnseenNotificationsVersionKey(1), &v, UnseenNotificationsTTL, fetch))
	assert.Equal(t, 2, calls)
}

func TestAsideGuarded_NilClientFallsThrough(t *testing.T) {
	SetClient(nil)
	fetchErr := errors.New("db down")

	var v bool
	err := AsideGuarded(context.Background(), "k", "k:version", &v, UnseenNotificationsTTL, func() error { return fetchErr })
	assert.ErrorIs(t, err, fetchErr)

	found, err := GetJSON(context.Background(), "k", &v)
	assert.NoError(t, err)
	assert.False(t, found)
	InvalidateUnseen(context.Background(), 1)
}

func TestAsideGuarded_RedisDownStillFetches(t *testing.T) {
	mr := withMiniredis(t)
	mr.Close()

	calls := 0
	var v bool
	require.NoError(t, AsideGuarded(context.Background(), "k", "k:version", &v, UnseenNotificationsTTL, func() error {
		calls++
		v = true
		return nil
	}))
	assert.Equal(t, 1, calls)
	assert.True(t, v)
}

func TestAsideGuarded_SkipsWriteAfterConcurrentInvalidate(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()
	key := UnseenNotificationsKey(3)
	versionKey := UnseenNotificationsVersionKey(3)

	calls := 0
	var v bool
	// A notification lands while the store is being read.
	require.NoError(t, AsideGuarded(ctx, key, versionKey, &v, UnseenNotificationsTTL, func() error {
		calls++
		v = false
		InvalidateUnseen(ctx, 3)
		return nil
	}))
	assert.False(t, v)
	assert.False(t, mr.Exists(key))

	require.NoError(t, AsideGuarded(ctx, key, versionKey, &v, UnseenNotificationsTTL, func() error {
		calls++
		v = true
		return nil
	}))
	assert.True(t, v)
	assert.Equal(t, 2, calls)
	assert.True(t, mr.Exists(key))

	InvalidateUnseen(ctx, 3)
	assert.False(t, mr.Exists(key))
	got, err := mr.Get(versionKey)
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestInitRedis_Unreachable(t *testing.T) {
	InitRedis("redis://%zz")
	assert.Nil(t, GetClient())
}
