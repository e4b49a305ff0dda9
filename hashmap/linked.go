package hashmap

import (
	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/collection"
)

// chain is the doubly linked iteration order threaded through the entries of a linked map. header is a sentinel:
// header.chainForward is the eldest entry and header.chainBackward the youngest.
type chain[K comparable, V any] struct {
	header      entry[K, V]
	accessOrder bool
	eviction    EvictionPolicy[K, V]
}

func newChain[K comparable, V any](accessOrder bool, eviction EvictionPolicy[K, V]) *chain[K, V] {
	instance := &chain[K, V]{
		accessOrder: accessOrder,
		eviction:    eviction,
	}

	instance.reset()
	return instance
}

func (s *chain[K, V]) reset() {
	s.header.chainForward = &s.header
	s.header.chainBackward = &s.header
}

func (s *chain[K, V]) append(target *entry[K, V]) {
	youngest := s.header.chainBackward

	target.chainForward = &s.header
	target.chainBackward = youngest
	youngest.chainForward = target
	s.header.chainBackward = target
}

func (s *chain[K, V]) unlink(target *entry[K, V]) {
	target.chainBackward.chainForward = target.chainForward
	target.chainForward.chainBackward = target.chainBackward
}

func (s *chain[K, V]) moveToTail(target *entry[K, V]) {
	s.unlink(target)
	s.append(target)
}

func (s *chain[K, V]) eldest() *entry[K, V] {
	return s.after(&s.header)
}

func (s *chain[K, V]) youngest() *entry[K, V] {
	if youngest := s.header.chainBackward; youngest != &s.header {
		return youngest
	}

	return nil
}

func (s *chain[K, V]) after(target *entry[K, V]) *entry[K, V] {
	if next := target.chainForward; next != &s.header {
		return next
	}

	return nil
}

// LinkedHashMap is a HashMap whose entries are additionally threaded on a doubly linked chain. Keys, values and
// entries are always iterated in chain order: insertion order by default, or least recently accessed first when
// created with WithAccessOrder. Re-inserting an existing key does not move it in insertion order.
type LinkedHashMap[K comparable, V any] struct {
	*HashMap[K, V]
}

func NewLinked[K comparable, V any](options ...Option) *LinkedHashMap[K, V] {
	return newLinked[K, V](newConfig(options))
}

func NewLinkedFrom[K comparable, V any](source collection.Map[K, V], options ...Option) (*LinkedHashMap[K, V], error) {
	if source == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "linked hash map source")
	}

	instance := newLinked[K, V](sizedConfig(newConfig(options), source.Len()))
	return instance, collection.PutAll[K, V](instance, source)
}

func newLinked[K comparable, V any](cfg config) *LinkedHashMap[K, V] {
	instance := newHashMap[K, V](cfg)

	policy, _ := cfg.eviction.(EvictionPolicy[K, V])
	instance.chain = newChain(cfg.accessOrder, policy)

	return &LinkedHashMap[K, V]{
		HashMap: instance,
	}
}

func (s *LinkedHashMap[K, V]) AccessOrder() bool {
	return s.chain.accessOrder
}

// Eldest returns the entry at the head of the iteration chain without counting as an access.
func (s *LinkedHashMap[K, V]) Eldest() (collection.Entry[K, V], bool) {
	if eldest := s.chain.eldest(); eldest != nil {
		return eldest, true
	}

	return nil, false
}

// Youngest returns the entry at the tail of the iteration chain without counting as an access.
func (s *LinkedHashMap[K, V]) Youngest() (collection.Entry[K, V], bool) {
	if youngest := s.chain.youngest(); youngest != nil {
		return youngest, true
	}

	return nil, false
}

// ContainsValue walks the iteration chain rather than the buckets.
func (s *LinkedHashMap[K, V]) ContainsValue(value V) bool {
	for next := s.chain.eldest(); next != nil; next = s.chain.after(next) {
		if collection.Equal(next.value, value) {
			return true
		}
	}

	return false
}

func (s *LinkedHashMap[K, V]) Clone() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		HashMap: s.HashMap.Clone(),
	}
}

func (s *LinkedHashMap[K, V]) String() string {
	return collection.FormatMap(s, s.Entries())
}
