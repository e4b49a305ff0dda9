package cache_test

import (
	"sync"
	"testing"

	"github.com/specterops/collections/cache"
	"github.com/stretchr/testify/require"
)

func TestLRU_PutGet(t *testing.T) {
	lru := cache.NewLRU[int, string](10)

	lru.Put(1, "one")
	fetched, exists := lru.Get(1)

	require.True(t, exists)
	require.Equal(t, "one", fetched)

	_, exists = lru.Get(2)
	require.False(t, exists)
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	var (
		evicted []int
		lru     = cache.NewLRUWithCallback(3, func(key int, value string) {
			evicted = append(evicted, key)
		})
	)

	lru.Put(1, "one")
	lru.Put(2, "two")
	lru.Put(3, "three")

	// Touching 1 makes 2 the least recently used entry
	lru.Get(1)
	lru.Put(4, "four")

	require.Equal(t, []int{2}, evicted)
	require.Equal(t, []int{3, 1, 4}, lru.Keys())
	require.False(t, lru.Contains(2))

	// Contains does not refresh recency
	require.True(t, lru.Contains(3))
	lru.Put(5, "five")

	require.Equal(t, []int{2, 3}, evicted)
	require.Equal(t, 3, lru.Len())

	stats := lru.Stats()
	require.Equal(t, int64(2), stats.Evictions())
	require.Equal(t, int64(3), stats.Size())
	require.Equal(t, int64(1), stats.Hits())
}

func TestLRU_UpdateRefreshesRecency(t *testing.T) {
	lru := cache.NewLRUWithCallback[string, int](2, nil)

	lru.Put("a", 1)
	lru.Put("b", 2)
	lru.Put("a", 10)
	lru.Put("c", 3)

	require.Equal(t, []string{"a", "c"}, lru.Keys())

	fetched, exists := lru.Get("a")
	require.True(t, exists)
	require.Equal(t, 10, fetched)

	lru.Delete("a")
	lru.Delete("missing")
	require.Equal(t, int64(1), lru.Stats().Size())

	lru.Purge()
	require.Zero(t, lru.Len())
	require.Equal(t, int64(0), lru.Stats().Size())
}

func TestLRU_InvalidCapacity(t *testing.T) {
	lru := cache.NewLRU[int, int](0)

	lru.Put(1, 1)
	lru.Put(2, 2)

	_, exists := lru.Get(1)
	require.False(t, exists)

	require.Equal(t, 1, lru.Stats().Capacity)
}

func TestLRU_Concurrent(t *testing.T) {
	var (
		lru       = cache.NewLRU[int, int](64)
		waitGroup sync.WaitGroup
	)

	for worker := range 8 {
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			for value := range 1000 {
				key := (worker*1000 + value) % 128

				lru.Put(key, value)
				lru.Get(key)
			}
		}()
	}

	waitGroup.Wait()

	stats := lru.Stats()
	require.Equal(t, int64(64), stats.Size())
	require.Equal(t, int64(8000), stats.Hits()+stats.Misses())
}

func TestStats_Combined(t *testing.T) {
	var (
		first  = cache.NewStats(10)
		second = cache.NewStats(5)
	)

	first.Hit()
	first.Put()
	second.Miss()
	second.Put()
	second.Evict()

	combined := first.Combined(second)

	require.Equal(t, 15, combined.Capacity)
	require.Equal(t, int64(1), combined.Hits())
	require.Equal(t, int64(1), combined.Misses())
	require.Equal(t, int64(1), combined.Evictions())
	require.Equal(t, int64(1), combined.Size())
	require.Equal(t, 0.5, combined.HitRatio())
}
