package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/revpilot-io/revpilot/internal/infrastructure/cache"
)

func TestTTLCache_SetAndGet(t *testing.T) {
	// Arrange
	clock := cache.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	c := cache.NewTTLCache[string](time.Hour, clock)

	// Act
	c.Set("city", "Valencia")
	value, ok := c.Get("city")

	// Assert
	assert.True(t, ok)
	assert.Equal(t, "Valencia", value)
}

func TestTTLCache_MissingKey(t *testing.T) {
	c := cache.NewTTLCache[int](time.Hour, nil)

	value, ok := c.Get("absent")

	assert.False(t, ok)
	assert.Equal(t, 0, value)
}

func TestTTLCache_ExpiresAfterTTL(t *testing.T) {
	// Arrange
	clock := cache.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	c := cache.NewTTLCache[string](time.Hour, clock)
	c.Set("city", "Valencia")

	// Act - just inside the TTL
	clock.Advance(time.Hour)
	_, okFresh := c.Get("city")

	// past the TTL
	clock.Advance(time.Second)
	_, okStale := c.Get("city")

	// Assert
	assert.True(t, okFresh)
	assert.False(t, okStale)
}

func TestTTLCache_SetRefreshesTimestamp(t *testing.T) {
	clock := cache.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	c := cache.NewTTLCache[string](time.Hour, clock)
	c.Set("city", "Valencia")

	clock.Advance(45 * time.Minute)
	c.Set("city", "Madrid")
	clock.Advance(45 * time.Minute)

	value, ok := c.Get("city")

	assert.True(t, ok, "rewrite restarts the TTL")
	assert.Equal(t, "Madrid", value)
}

func TestTTLCache_Purge(t *testing.T) {
	clock := cache.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	c := cache.NewTTLCache[int](time.Hour, clock)
	c.Set("old", 1)
	clock.Advance(2 * time.Hour)
	c.Set("fresh", 2)

	c.Purge()

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("fresh")
	assert.True(t, ok)
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	c := cache.NewTTLCache[int](time.Hour, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("key", j)
				c.Get("key")
			}
		}()
	}
	wg.Wait()

	_, ok := c.Get("key")
	assert.True(t, ok)
}
