package cache

import "sync/atomic"

// Stats counts cache traffic. Copies of a Stats value share the same counters.
type Stats struct {
	hits      *atomic.Int64
	misses    *atomic.Int64
	evictions *atomic.Int64
	size      *atomic.Int64
	Capacity  int
}

func NewStats(capacity int) Stats {
	return Stats{
		hits:      &atomic.Int64{},
		misses:    &atomic.Int64{},
		evictions: &atomic.Int64{},
		size:      &atomic.Int64{},
		Capacity:  capacity,
	}
}

// Combined sums the counters and capacities of both stats into a new, independent Stats value.
func (s Stats) Combined(other Stats) Stats {
	combined := NewStats(s.Capacity + other.Capacity)

	combined.hits.Add(s.Hits() + other.Hits())
	combined.misses.Add(s.Misses() + other.Misses())
	combined.evictions.Add(s.Evictions() + other.Evictions())
	combined.size.Add(s.Size() + other.Size())

	return combined
}

func (s Stats) Hit() {
	s.hits.Add(1)
}

func (s Stats) Hits() int64 {
	return s.hits.Load()
}

func (s Stats) Miss() {
	s.misses.Add(1)
}

func (s Stats) Misses() int64 {
	return s.misses.Load()
}

// HitRatio is the share of lookups that found a value, or zero before the first lookup.
func (s Stats) HitRatio() float64 {
	if lookups := s.Hits() + s.Misses(); lookups > 0 {
		return float64(s.Hits()) / float64(lookups)
	}

	return 0
}

func (s Stats) Evict() {
	s.evictions.Add(1)
	s.size.Add(-1)
}

func (s Stats) Evictions() int64 {
	return s.evictions.Load()
}

func (s Stats) Put() {
	s.size.Add(1)
}

func (s Stats) Delete() {
	s.size.Add(-1)
}

func (s Stats) Size() int64 {
	return s.size.Load()
}

func (s Stats) Reset() {
	s.size.Store(0)
}

type Cache[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Delete(key K)
	Purge()
	Stats() Stats
}
