package morphology

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache[string](time.Hour)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "v")
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache[int](time.Minute)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("k", 42)

	_, ok := c.Get("k")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
	// lazy eviction removed the stale entry
	assert.Zero(t, c.Len())
}

func TestCacheSweep(t *testing.T) {
	c := NewCache[int](time.Minute)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("a", 1)
	c.Set("b", 2)
	current = current.Add(30 * time.Second)
	c.Set("c", 3)

	current = current.Add(45 * time.Second) // a and b expired, c not yet
	assert.Equal(t, 2, c.Sweep())
	assert.Equal(t, 1, c.Len())

	v, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCachePurge(t *testing.T) {
	c := NewCache[int](time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Purge()
	assert.Zero(t, c.Len())
}

// Concurrent writers of the same key must not corrupt the cache; one of the
// written values wins.
func TestCacheConcurrentSameKey(t *testing.T) {
	c := NewCache[int](time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			c.Set("hot", v)
		}(i)
		go func() {
			defer wg.Done()
			c.Get("hot")
		}()
	}
	wg.Wait()

	v, ok := c.Get("hot")
	require.True(t, ok)
	assert.GreaterOrEqual(t, v, 0)
	assert.Less(t, v, 50)
}
