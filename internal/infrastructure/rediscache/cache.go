package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/errors"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/redis"
)

// Cache is a Redis-backed bundle cache sharing the same interface as the
// in-memory backend. Bundles are stored as JSON under a prefixed key.
type Cache struct {
	client redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a Redis bundle cache.
func New(client redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get returns the cached bundle for symbol, if present.
func (c *Cache) Get(ctx context.Context, symbol string) (ohlc.Bundle, bool, error) {
	raw, err := c.client.Get(ctx, c.key(symbol))
	if err != nil {
		return nil, false, errors.TracerFromError(err)
	}
	if raw == "" {
		return nil, false, nil
	}

	var bundle ohlc.Bundle
	if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
		return nil, false, errors.NewErrorDetails(
			fmt.Sprintf("failed to decode cached bundle for %s: %v", symbol, err),
			string(errors.CacheBackendError), "get")
	}

	return bundle, true, nil
}

// Set stores a bundle with the configured TTL.
func (c *Cache) Set(ctx context.Context, symbol string, bundle ohlc.Bundle) error {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return errors.NewErrorDetails(
			fmt.Sprintf("failed to encode bundle for %s: %v", symbol, err),
			string(errors.CacheBackendError), "set")
	}

	if err := c.client.Set(ctx, c.key(symbol), string(payload), c.ttl); err != nil {
		return errors.TracerFromError(err)
	}

	return nil
}

// Invalidate drops the entry for symbol, if any.
func (c *Cache) Invalidate(ctx context.Context, symbol string) error {
	if _, err := c.client.Del(ctx, c.key(symbol)); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

func (c *Cache) key(symbol string) string {
	return c.prefix + "historical:" + symbol
}
