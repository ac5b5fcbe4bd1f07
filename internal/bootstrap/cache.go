package bootstrap

import (
	"context"
	"fmt"

	"github.com/Joseph25Rejo/quarks-inngest/internal/infrastructure/memcache"
	"github.com/Joseph25Rejo/quarks-inngest/internal/infrastructure/rediscache"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/logger"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/redis"
)

const (
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"
)

// registerCache selects the bundle cache backend from configuration.
func (b *Bootstrap) registerCache(ctx context.Context) error {
	switch b.Config.History.CacheBackend {
	case cacheBackendMemory:
		b.Cache = memcache.New(b.Config.History.CacheMaxEntries, b.Config.History.CacheTTL)

	case cacheBackendRedis:
		client := redis.NewClient(b.Logger, &b.Config.Redis)
		if err := client.Connect(ctx); err != nil {
			return err
		}
		b.redisClient = client
		b.Cache = rediscache.New(client, b.Config.Redis.PrefixKey, b.Config.History.CacheTTL)
		b.Logger.Info("redis bundle cache connected",
			logger.Field{Key: "addr", Value: b.Config.Redis.Addr})

	default:
		return fmt.Errorf("unsupported cache backend: %s", b.Config.History.CacheBackend)
	}

	return nil
}
