package hashmap

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/collection"
)

type entry[K comparable, V any] struct {
	key   K
	value V
	hash  uint64
	next  *entry[K, V]

	// Iteration chain of linked maps, unused by plain maps.
	chainForward  *entry[K, V]
	chainBackward *entry[K, V]
}

func (s *entry[K, V]) Key() K {
	return s.key
}

func (s *entry[K, V]) Value() V {
	return s.value
}

func (s *entry[K, V]) SetValue(value V) V {
	previous := s.value
	s.value = value

	return previous
}

// HashMap is a hash table of singly linked bucket chains. The bucket count is always a power of two and doubles
// whenever the number of entries exceeds the load factor threshold.
//
// A HashMap is not safe for concurrent use.
type HashMap[K comparable, V any] struct {
	table      []*entry[K, V]
	size       int
	threshold  int
	capacity   int
	loadFactor float64
	chain      *chain[K, V]
	stamp      collection.Stamp
	keys       *collection.KeyView[K, V]
	values     *collection.ValueView[K, V]
}

// New creates an empty map. The bucket table is allocated on the first Put.
func New[K comparable, V any](options ...Option) *HashMap[K, V] {
	return newHashMap[K, V](newConfig(options))
}

// NewFrom creates a map holding every mapping of source, sized so that copying does not resize.
func NewFrom[K comparable, V any](source collection.Map[K, V], options ...Option) (*HashMap[K, V], error) {
	if source == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "hash map source")
	}

	instance := newHashMap[K, V](sizedConfig(newConfig(options), source.Len()))
	return instance, collection.PutAll[K, V](instance, source)
}

func newHashMap[K comparable, V any](cfg config) *HashMap[K, V] {
	return &HashMap[K, V]{
		capacity:   cfg.capacity,
		loadFactor: cfg.loadFactor,
	}
}

func sizedConfig(cfg config, size int) config {
	if required := capacityFor(size, cfg.loadFactor); required > cfg.capacity {
		cfg.capacity = min(roundUpToPowerOfTwo(required), maximumCapacity)
	}

	return cfg
}

func (s *HashMap[K, V]) allocate(capacity int) {
	s.table = make([]*entry[K, V], capacity)
	s.threshold = max(1, int(float64(capacity)*s.loadFactor))
}

func (s *HashMap[K, V]) index(hash uint64) int {
	return int(hash & uint64(len(s.table)-1))
}

func (s *HashMap[K, V]) find(key K) *entry[K, V] {
	if s.table == nil {
		return nil
	}

	hash := collection.HashKey(key)

	for next := s.table[s.index(hash)]; next != nil; next = next.next {
		if next.hash == hash && next.key == key {
			return next
		}
	}

	return nil
}

// resize doubles the bucket table. Each old bucket splits into the bucket at the same index and the one at index plus
// the old capacity, depending on the newly significant hash bit. Relative order within a bucket is kept.
func (s *HashMap[K, V]) resize() {
	var (
		oldTable    = s.table
		oldCapacity = len(oldTable)
	)

	if oldCapacity >= maximumCapacity {
		s.threshold = math.MaxInt
		return
	}

	s.allocate(oldCapacity * 2)

	for idx, head := range oldTable {
		var lowHead, lowTail, highHead, highTail *entry[K, V]

		for next := head; next != nil; {
			following := next.next
			next.next = nil

			if next.hash&uint64(oldCapacity) == 0 {
				if lowTail == nil {
					lowHead = next
				} else {
					lowTail.next = next
				}

				lowTail = next
			} else {
				if highTail == nil {
					highHead = next
				} else {
					highTail.next = next
				}

				highTail = next
			}

			next = following
		}

		s.table[idx] = lowHead
		s.table[idx+oldCapacity] = highHead
	}
}

func (s *HashMap[K, V]) Len() int {
	return s.size
}

func (s *HashMap[K, V]) IsEmpty() bool {
	return s.size == 0
}

// Get returns the value mapped to key. On an access-ordered linked map a hit moves the entry to the tail of the
// iteration chain, which is a structural modification.
func (s *HashMap[K, V]) Get(key K) (V, bool) {
	if found := s.find(key); found != nil {
		s.accessed(found)
		return found.value, true
	}

	var empty V
	return empty, false
}

func (s *HashMap[K, V]) ContainsKey(key K) bool {
	return s.find(key) != nil
}

func (s *HashMap[K, V]) ContainsValue(value V) bool {
	return collection.MapContainsValue(s.Entries(), value)
}

// Put associates value with key. The returned error is always nil for hash maps.
func (s *HashMap[K, V]) Put(key K, value V) (V, bool, error) {
	if s.table == nil {
		s.allocate(s.capacity)
	}

	var (
		hash = collection.HashKey(key)
		idx  = s.index(hash)
	)

	for next := s.table[idx]; next != nil; next = next.next {
		if next.hash == hash && next.key == key {
			previous := next.value
			next.value = value

			s.accessed(next)
			return previous, true, nil
		}
	}

	inserted := &entry[K, V]{
		key:   key,
		value: value,
		hash:  hash,
		next:  s.table[idx],
	}

	s.table[idx] = inserted
	s.size++
	s.stamp.Bump()

	if s.chain != nil {
		s.chain.append(inserted)
	}

	if s.size > s.threshold {
		s.resize()
	}

	s.evictEldest()

	var empty V
	return empty, false, nil
}

func (s *HashMap[K, V]) Delete(key K) (V, bool) {
	var empty V

	if s.table == nil {
		return empty, false
	}

	var (
		hash     = collection.HashKey(key)
		idx      = s.index(hash)
		previous *entry[K, V]
	)

	for next := s.table[idx]; next != nil; previous, next = next, next.next {
		if next.hash == hash && next.key == key {
			if previous == nil {
				s.table[idx] = next.next
			} else {
				previous.next = next.next
			}

			if s.chain != nil {
				s.chain.unlink(next)
			}

			s.size--
			s.stamp.Bump()

			return next.value, true
		}
	}

	return empty, false
}

func (s *HashMap[K, V]) Clear() {
	if s.size == 0 {
		return
	}

	clear(s.table)

	if s.chain != nil {
		s.chain.reset()
	}

	s.size = 0
	s.stamp.Bump()
}

func (s *HashMap[K, V]) accessed(target *entry[K, V]) {
	if s.chain != nil && s.chain.accessOrder {
		s.chain.moveToTail(target)
		s.stamp.Bump()
	}
}

func (s *HashMap[K, V]) evictEldest() {
	if s.chain == nil || s.chain.eviction == nil {
		return
	}

	if eldest := s.chain.eldest(); eldest != nil && s.chain.eviction(eldest, s.size) {
		s.Delete(eldest.key)
	}
}

// Entries returns the live entry view of this map. Removal through its cursors removes the mapping.
func (s *HashMap[K, V]) Entries() collection.Container[collection.Entry[K, V]] {
	return entries[K, V]{
		backing: s,
	}
}

func (s *HashMap[K, V]) Keys() collection.Set[K] {
	if s.keys == nil {
		s.keys = collection.NewKeyView[K, V](s)
	}

	return s.keys
}

func (s *HashMap[K, V]) Values() collection.ValueCollection[V] {
	if s.values == nil {
		s.values = collection.NewValueView[K, V](s)
	}

	return s.values
}

// Clone returns a shallow copy of this map with the same configuration.
func (s *HashMap[K, V]) Clone() *HashMap[K, V] {
	clone := &HashMap[K, V]{
		capacity:   max(s.capacity, len(s.table)),
		loadFactor: s.loadFactor,
	}

	if s.chain != nil {
		clone.chain = newChain[K, V](s.chain.accessOrder, nil)
	}

	for iterator := s.newCursor(); iterator.Next(); {
		next := iterator.current
		clone.Put(next.key, next.value)
	}

	// Copying never evicts, the policy only applies to later insertions
	if s.chain != nil {
		clone.chain.eviction = s.chain.eviction
	}

	return clone
}

func (s *HashMap[K, V]) Equal(other collection.Map[K, V]) bool {
	return collection.MapEquals[K, V](s, other)
}

func (s *HashMap[K, V]) Hash() uint64 {
	return collection.MapHash(s.Entries())
}

func (s *HashMap[K, V]) String() string {
	return collection.FormatMap(s, s.Entries())
}

type entries[K comparable, V any] struct {
	backing *HashMap[K, V]
}

func (s entries[K, V]) Len() int {
	return s.backing.size
}

func (s entries[K, V]) Cursor() collection.Cursor[collection.Entry[K, V]] {
	return s.backing.newCursor()
}
