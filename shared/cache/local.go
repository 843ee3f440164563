package cache

//go:generate go run go.uber.org/mock/mockgen -source=./local.go -destination=./mocks/local_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"concierge/config"
	"concierge/infras/otel"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/rs/zerolog/log"
)

const localBufferItems = 64

// LocalCache is the in-process L1 in front of Redis and Postgres for hot,
// rarely changing lookups.
type LocalCache interface {
	Get(ctx context.Context, key string, value any) bool
	Save(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string)
	Close()
}

type localCache struct {
	store *ristretto.Cache[string, []byte]
	ttl   time.Duration
	otel  otel.Otel
}

func NewLocalCache(cfg *config.Config, ot otel.Otel) (LocalCache, func(), error) {
	maxCost := cfg.Cache.Local.MaxCost

	store, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: max(maxCost/100*10, 1000),
		MaxCost:     maxCost,
		BufferItems: localBufferItems,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create local cache: %w", err)
	}

	c := &localCache{
		store: store,
		ttl:   time.Duration(cfg.Cache.Local.TTLSeconds) * time.Second,
		otel:  ot,
	}

	return c, c.Close, nil
}

func (c *localCache) Get(ctx context.Context, key string, value any) bool {
	_, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".local.Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	data, found := c.store.Get(key)
	if !found {
		return false
	}

	if err := json.Unmarshal(data, value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("dropping undecodable local cache entry")
		c.store.Del(key)

		return false
	}

	return true
}

func (c *localCache) Save(ctx context.Context, key string, value any) error {
	_, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".local.Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	data, err := json.Marshal(value)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to marshal local cache value: %w", err)
	}

	c.store.SetWithTTL(key, data, int64(len(data)), c.ttl)
	// make the entry visible to the next Get
	c.store.Wait()

	return nil
}

func (c *localCache) Delete(ctx context.Context, key string) {
	_, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".local.Delete")
	defer scope.End()

	c.store.Del(key)
}

func (c *localCache) Close() {
	c.store.Close()
}
