package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniRedis creates a test Redis server using miniredis.
func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := newRedisCache(client, "", zerolog.Nop())
	t.Cleanup(func() { _ = c.Close() })
	return mr, c
}

func TestRedisCache_SetGet(t *testing.T) {
	mr, c := setupMiniRedis(t)
	ctx := context.Background()

	c.Set(ctx, "test-key", []byte("test-value"), 5*time.Minute)

	val, found := c.Get(ctx, "test-key")
	require.True(t, found)
	assert.Equal(t, []byte("test-value"), val)
	assert.True(t, mr.Exists("site:test-key"), "keys are namespaced")

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, 1, stats.CurrentSize)
}

func TestRedisCache_TTL(t *testing.T) {
	mr, c := setupMiniRedis(t)
	ctx := context.Background()

	c.Set(ctx, "ttl-key", []byte("v"), time.Minute)
	mr.FastForward(2 * time.Minute)

	_, found := c.Get(ctx, "ttl-key")
	assert.False(t, found)
	assert.Equal(t, int64(1), c.Stats().Misses)
}

func TestRedisCache_Delete(t *testing.T) {
	_, c := setupMiniRedis(t)
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	c.Delete(ctx, "k")
	_, found := c.Get(ctx, "k")
	assert.False(t, found)
}

func TestRedisCache_UnavailableServer(t *testing.T) {
	mr, c := setupMiniRedis(t)
	mr.Close()

	_, found := c.Get(context.Background(), "k")
	assert.False(t, found)
	assert.Error(t, c.HealthCheck(context.Background()))
}

func TestNewRedisCache_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: mr.Addr(), Prefix: "test:"}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.HealthCheck(context.Background()))
}
