package cache_test

import (
	"context"
	"testing"

	"concierge/config"
	"concierge/infras/otel/mocks"
	"concierge/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedRoom struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

func newLocalCache(t *testing.T) cache.LocalCache {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.Local.MaxCost = 1 << 20
	cfg.Cache.Local.TTLSeconds = 60

	c, cleanup, err := cache.NewLocalCache(cfg, mocks.NewOtel())
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return c
}

func TestLocalCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	c := newLocalCache(t)

	require.NoError(t, c.Save(ctx, "room:token:h1:abc", cachedRoom{ID: "r1", Number: "101"}))

	var got cachedRoom
	assert.True(t, c.Get(ctx, "room:token:h1:abc", &got))
	assert.Equal(t, cachedRoom{ID: "r1", Number: "101"}, got)
}

func TestLocalCache_Miss(t *testing.T) {
	c := newLocalCache(t)

	var got cachedRoom
	assert.False(t, c.Get(context.Background(), "missing", &got))
	assert.Empty(t, got.ID)
}

func TestLocalCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := newLocalCache(t)

	require.NoError(t, c.Save(ctx, "k", cachedRoom{ID: "r1"}))
	c.Delete(ctx, "k")

	var got cachedRoom
	assert.False(t, c.Get(ctx, "k", &got))
}
