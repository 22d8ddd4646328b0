package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/config"
	"notekeeper/internal/gateway/adapters/cache"
	cachePorts "notekeeper/internal/gateway/ports/cache"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:            host,
		Port:            port,
		ConnectTimeout:  5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolSize:        10,
		MinIdle:         2,
		IdleTimeout:     5 * time.Minute,
		MaxConnLifetime: time.Hour,
		DefaultTTL:      24 * time.Hour,
	}

	return s, cfg
}

func TestNewRedisCache_Success(t *testing.T) {
	_, cfg := mockRedisServer(t)

	redisCache, err := cache.NewRedisCache(context.Background(), cfg)

	require.NoError(t, err)
	require.NotNil(t, redisCache)

	_, ok := redisCache.(cachePorts.Cache)
	assert.True(t, ok, "should implement Cache interface")

	assert.NoError(t, redisCache.Close(), "should close without errors")
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	cfg := &config.RedisConfig{
		Host:           "nonexistent.host",
		Port:           12345,
		ConnectTimeout: 100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
	}

	redisCache, err := cache.NewRedisCache(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, redisCache)
}

func TestRedisCache_SetGet(t *testing.T) {
	s, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer redisCache.Close()

	t.Run("Success - set and get value", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "profile:user-1", `{"userId":"user-1"}`, time.Minute))

		value, err := redisCache.Get(ctx, "profile:user-1")
		require.NoError(t, err)
		assert.Equal(t, `{"userId":"user-1"}`, value)
	})

	t.Run("Success - missing key is not an error", func(t *testing.T) {
		value, err := redisCache.Get(ctx, "profile:missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Success - zero TTL falls back to default", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "profile:user-2", "value", 0))

		ttl := s.TTL("profile:user-2")
		assert.Equal(t, cfg.DefaultTTL, ttl)
	})

	t.Run("Success - expired key is gone", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "profile:user-3", "value", time.Minute))

		s.FastForward(2 * time.Minute)

		value, err := redisCache.Get(ctx, "profile:user-3")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestRedisCache_Delete(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer redisCache.Close()

	require.NoError(t, redisCache.Set(ctx, "profile:user-1", "value", time.Minute))
	require.NoError(t, redisCache.Delete(ctx, "profile:user-1"))

	value, err := redisCache.Get(ctx, "profile:user-1")
	require.NoError(t, err)
	assert.Empty(t, value)
}
