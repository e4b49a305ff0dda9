package cache

import (
	"sync"

	"github.com/specterops/collections/collection"
	"github.com/specterops/collections/hashmap"
)

// LRU is a fixed capacity cache that evicts the least recently used entry once an insertion takes it over capacity.
// It is an access-ordered linked hash map whose eviction policy enforces the capacity. Lookups reorder the map so
// every operation takes the exclusive lock.
type LRU[K comparable, V any] struct {
	lock    sync.Mutex
	store   *hashmap.LinkedHashMap[K, V]
	stats   Stats
	onEvict func(key K, value V)
}

func NewLRU[K comparable, V any](capacity int) Cache[K, V] {
	return NewLRUWithCallback[K, V](capacity, nil)
}

// NewLRUWithCallback creates an LRU cache that calls onEvict with every entry it evicts to stay within capacity.
// onEvict runs while the cache lock is held and must not call back into the cache.
func NewLRUWithCallback[K comparable, V any](capacity int, onEvict func(key K, value V)) *LRU[K, V] {
	// Do not panic on an invalid capacity but ensure that the cache remains functional
	if capacity <= 0 {
		capacity = 1
	}

	cache := &LRU[K, V]{
		stats:   NewStats(capacity),
		onEvict: onEvict,
	}

	cache.store = hashmap.NewLinked[K, V](
		hashmap.WithCapacity(capacity),
		hashmap.WithAccessOrder(),
		hashmap.WithEvictionPolicy[K, V](cache.evict),
	)

	return cache
}

func (s *LRU[K, V]) evict(eldest collection.Entry[K, V], size int) bool {
	if size <= s.stats.Capacity {
		return false
	}

	s.stats.Evict()

	if s.onEvict != nil {
		s.onEvict(eldest.Key(), eldest.Value())
	}

	return true
}

func (s *LRU[K, V]) Put(key K, value V) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, replaced, err := s.store.Put(key, value); err == nil && !replaced {
		s.stats.Put()
	}
}

func (s *LRU[K, V]) Get(key K) (V, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	value, hasValue := s.store.Get(key)

	if hasValue {
		s.stats.Hit()
	} else {
		s.stats.Miss()
	}

	return value, hasValue
}

// Contains reports whether key is cached without counting a lookup or refreshing its recency.
func (s *LRU[K, V]) Contains(key K) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.store.ContainsKey(key)
}

func (s *LRU[K, V]) Delete(key K) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, deleted := s.store.Delete(key); deleted {
		s.stats.Delete()
	}
}

func (s *LRU[K, V]) Purge() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.store.Clear()
	s.stats.Reset()
}

// Keys returns the cached keys from least to most recently used.
func (s *LRU[K, V]) Keys() []K {
	s.lock.Lock()
	defer s.lock.Unlock()

	return collection.ToSlice[K](s.store.Keys())
}

func (s *LRU[K, V]) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.store.Len()
}

func (s *LRU[K, V]) Stats() Stats {
	return s.stats
}
