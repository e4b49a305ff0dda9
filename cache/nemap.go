package cache

import (
	"sync"

	"github.com/specterops/collections/hashmap"
)

// NonExpiringMapCache admits entries until it reaches capacity and then only accepts updates of keys it already
// holds. Nothing is ever evicted.
type NonExpiringMapCache[K comparable, V any] struct {
	store  *hashmap.HashMap[K, V]
	stats  Stats
	rwLock sync.RWMutex
}

func NewNonExpiringMapCache[K comparable, V any](capacity int) Cache[K, V] {
	if capacity <= 0 {
		capacity = 1
	}

	return &NonExpiringMapCache[K, V]{
		store: hashmap.New[K, V](hashmap.WithCapacity(capacity)),
		stats: NewStats(capacity),
	}
}

func (s *NonExpiringMapCache[K, V]) Put(key K, value V) {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()

	if s.store.ContainsKey(key) || s.store.Len() < s.stats.Capacity {
		if _, replaced, err := s.store.Put(key, value); err == nil && !replaced {
			s.stats.Put()
		}
	}
}

func (s *NonExpiringMapCache[K, V]) Get(key K) (V, bool) {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()

	value, hasValue := s.store.Get(key)

	if hasValue {
		s.stats.Hit()
	} else {
		s.stats.Miss()
	}

	return value, hasValue
}

func (s *NonExpiringMapCache[K, V]) Delete(key K) {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()

	if _, deleted := s.store.Delete(key); deleted {
		s.stats.Delete()
	}
}

func (s *NonExpiringMapCache[K, V]) Purge() {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()

	s.store.Clear()
	s.stats.Reset()
}

func (s *NonExpiringMapCache[K, V]) Stats() Stats {
	return s.stats
}
