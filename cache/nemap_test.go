package cache_test

import (
	"testing"

	"github.com/specterops/collections/cache"
	"github.com/stretchr/testify/require"
)

func TestNonExpiringMapCache_PutGet(t *testing.T) {
	type testValue struct {
		id   int
		data string
	}

	var (
		nemap    = cache.NewNonExpiringMapCache[int, testValue](10)
		expected = testValue{id: 1, data: "one"}
	)

	nemap.Put(1, expected)
	fetched, exists := nemap.Get(1)

	require.True(t, exists)
	require.Equal(t, expected, fetched)
}

func TestNonExpiringMapCache_UpdateExistingKey(t *testing.T) {
	nemap := cache.NewNonExpiringMapCache[string, int](5)

	nemap.Put("k", 10)
	nemap.Put("k", 20)

	fetched, exists := nemap.Get("k")

	require.True(t, exists)
	require.Equal(t, 20, fetched)
	require.Equal(t, int64(1), nemap.Stats().Size())
}

func TestNonExpiringMapCache_RejectsWhenFull(t *testing.T) {
	nemap := cache.NewNonExpiringMapCache[int, string](2)

	nemap.Put(1, "one")
	nemap.Put(2, "two")
	nemap.Put(3, "three")

	_, exists := nemap.Get(3)
	require.False(t, exists)

	// Updates to admitted keys are still accepted at capacity
	nemap.Put(2, "deux")

	fetched, exists := nemap.Get(2)
	require.True(t, exists)
	require.Equal(t, "deux", fetched)

	nemap.Delete(1)
	nemap.Put(3, "three")

	_, exists = nemap.Get(3)
	require.True(t, exists)

	stats := nemap.Stats()
	require.Equal(t, int64(2), stats.Size())
	require.Equal(t, int64(2), stats.Hits())
	require.Equal(t, int64(1), stats.Misses())
	require.Equal(t, int64(0), stats.Evictions())

	nemap.Purge()
	require.Equal(t, int64(0), nemap.Stats().Size())

	_, exists = nemap.Get(2)
	require.False(t, exists)
}
