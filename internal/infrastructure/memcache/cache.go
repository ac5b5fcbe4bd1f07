package memcache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
)

// Cache is an in-process bundle cache bounded by entry count, with optional
// TTL expiry. A zero TTL keeps entries for the process lifetime.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

type entry struct {
	symbol   string
	bundle   ohlc.Bundle
	storedAt time.Time
}

// New creates a bundle cache. maxEntries <= 0 means unbounded.
func New(maxEntries int, ttl time.Duration) *Cache {
	return &Cache{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Get returns the cached bundle for symbol, if present and not expired.
func (c *Cache) Get(_ context.Context, symbol string) (ohlc.Bundle, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.entries[symbol]
	if !ok {
		return nil, false, nil
	}

	cached := element.Value.(*entry)
	if c.ttl > 0 && c.now().Sub(cached.storedAt) > c.ttl {
		c.remove(element)
		return nil, false, nil
	}

	return cached.bundle, true, nil
}

// Set stores a bundle, evicting the oldest entry when at capacity.
func (c *Cache) Set(_ context.Context, symbol string, bundle ohlc.Bundle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.entries[symbol]; ok {
		c.remove(element)
	}

	if c.maxEntries > 0 {
		for c.order.Len() >= c.maxEntries {
			c.remove(c.order.Back())
		}
	}

	c.entries[symbol] = c.order.PushFront(&entry{
		symbol:   symbol,
		bundle:   bundle,
		storedAt: c.now(),
	})

	return nil
}

// Invalidate drops the entry for symbol, if any.
func (c *Cache) Invalidate(_ context.Context, symbol string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.entries[symbol]; ok {
		c.remove(element)
	}

	return nil
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) remove(element *list.Element) {
	cached := element.Value.(*entry)
	delete(c.entries, cached.symbol)
	c.order.Remove(element)
}
