package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
)

func setupRedisTest(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &RedisClient{
		client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return client, mr
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host: "invalid-host",
		Port: 9999,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGet(t *testing.T) {
	client, _ := setupRedisTest(t)
	ctx := context.Background()

	err := client.Set(ctx, "dashboard:summary:1", `{"total":3}`, time.Minute)
	require.NoError(t, err)

	got, err := client.Get(ctx, "dashboard:summary:1")
	require.NoError(t, err)
	assert.Equal(t, `{"total":3}`, got)
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	client, _ := setupRedisTest(t)

	_, err := client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Delete(t *testing.T) {
	client, mr := setupRedisTest(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k1", "v1", 0))
	require.NoError(t, client.Delete(ctx, "k1"))

	assert.False(t, mr.Exists("k1"))
}

func TestRedisClient_DeleteByPattern(t *testing.T) {
	client, mr := setupRedisTest(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "dashboard:summary:1", "a", 0))
	require.NoError(t, client.Set(ctx, "dashboard:summary:2", "b", 0))
	require.NoError(t, client.Set(ctx, "other:key", "c", 0))

	err := client.DeleteByPattern(ctx, "dashboard:summary:*")
	require.NoError(t, err)

	assert.False(t, mr.Exists("dashboard:summary:1"))
	assert.False(t, mr.Exists("dashboard:summary:2"))
	assert.True(t, mr.Exists("other:key"))
}
