package memcache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundleFor(symbol string) ohlc.Bundle {
	return ohlc.Bundle{
		"1d": {{Datetime: "2024-03-15T00:00:00Z", Close: 100, Volume: 1}},
		"1h": {},
	}
}

func TestCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache := New(8, 0)

	_, found, err := cache.Get(ctx, "INFY.NS")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "INFY.NS", bundleFor("INFY.NS")))

	cached, found, err := cache.Get(ctx, "INFY.NS")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, bundleFor("INFY.NS"), cached)
}

func TestCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	cache := New(8, time.Minute)

	current := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	require.NoError(t, cache.Set(ctx, "INFY.NS", bundleFor("INFY.NS")))

	current = current.Add(59 * time.Second)
	_, found, err := cache.Get(ctx, "INFY.NS")
	require.NoError(t, err)
	assert.True(t, found)

	current = current.Add(2 * time.Second)
	_, found, err = cache.Get(ctx, "INFY.NS")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	cache := New(8, 0)

	current := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	require.NoError(t, cache.Set(ctx, "INFY.NS", bundleFor("INFY.NS")))

	current = current.Add(1000 * time.Hour)
	_, found, err := cache.Get(ctx, "INFY.NS")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCache_CapacityEvictsOldest(t *testing.T) {
	ctx := context.Background()
	cache := New(3, 0)

	for i := 0; i < 3; i++ {
		symbol := fmt.Sprintf("SYM%d.NS", i)
		require.NoError(t, cache.Set(ctx, symbol, bundleFor(symbol)))
	}
	require.NoError(t, cache.Set(ctx, "SYM3.NS", bundleFor("SYM3.NS")))

	assert.Equal(t, 3, cache.Len())

	_, found, err := cache.Get(ctx, "SYM0.NS")
	require.NoError(t, err)
	assert.False(t, found, "oldest entry should have been evicted")

	_, found, err = cache.Get(ctx, "SYM3.NS")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCache_SetSameSymbolReplaces(t *testing.T) {
	ctx := context.Background()
	cache := New(2, 0)

	require.NoError(t, cache.Set(ctx, "INFY.NS", bundleFor("INFY.NS")))
	replacement := ohlc.Bundle{"1d": {}}
	require.NoError(t, cache.Set(ctx, "INFY.NS", replacement))

	assert.Equal(t, 1, cache.Len())

	cached, found, err := cache.Get(ctx, "INFY.NS")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, replacement, cached)
}

func TestCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache := New(8, 0)

	require.NoError(t, cache.Set(ctx, "INFY.NS", bundleFor("INFY.NS")))
	require.NoError(t, cache.Invalidate(ctx, "INFY.NS"))

	_, found, err := cache.Get(ctx, "INFY.NS")
	require.NoError(t, err)
	assert.False(t, found)

	// invalidating a missing key is a no-op
	require.NoError(t, cache.Invalidate(ctx, "TCS.NS"))
}
