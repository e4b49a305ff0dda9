package treemap

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/google/btree"
	"github.com/specterops/collections/collection"
)

// The degree of the backing B-tree.
const treeDegree = 16

type node[K comparable, V any] struct {
	key   K
	value V
}

func (s *node[K, V]) Key() K {
	return s.key
}

func (s *node[K, V]) Value() V {
	return s.value
}

func (s *node[K, V]) SetValue(value V) V {
	previous := s.value
	s.value = value

	return previous
}

// storage is shared by a map and every range view derived from it.
type storage[K comparable, V any] struct {
	tree    *btree.BTreeG[*node[K, V]]
	compare collection.Comparator[K]
	stamp   collection.Stamp
}

type bound[K any] struct {
	key K
	set bool
}

// TreeMap is an ordered map backed by a B-tree. Range views returned by HeadMap, TailMap and SubMap share the storage
// and the modification stamp of the map they were derived from. A view's lower bound is inclusive and its upper bound
// exclusive.
//
// A TreeMap is not safe for concurrent use.
type TreeMap[K comparable, V any] struct {
	storage *storage[K, V]
	lower   bound[K]
	upper   bound[K]
	keys    *collection.KeyView[K, V]
	values  *collection.ValueView[K, V]
}

// New creates a map ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *TreeMap[K, V] {
	instance, _ := NewFunc[K, V](cmp.Compare[K])
	return instance
}

// NewFunc creates a map ordered by compare. The comparator must be consistent with ==: two keys that compare as zero
// are treated as the same key.
func NewFunc[K comparable, V any](compare collection.Comparator[K]) (*TreeMap[K, V], error) {
	if compare == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "tree map comparator")
	}

	return &TreeMap[K, V]{
		storage: &storage[K, V]{
			tree: btree.NewG(treeDegree, func(a, b *node[K, V]) bool {
				return compare(a.key, b.key) < 0
			}),
			compare: compare,
		},
	}, nil
}

// NewFrom creates a map holding every mapping of source. A navigable source lends its comparator, anything else must
// have keys of a naturally ordered type.
func NewFrom[K cmp.Ordered, V any](source collection.Map[K, V]) (*TreeMap[K, V], error) {
	if source == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "tree map source")
	}

	var instance *TreeMap[K, V]

	if navigable, ok := source.(collection.NavigableMap[K, V]); ok {
		instance, _ = NewFunc[K, V](navigable.Compare)
	} else {
		instance = New[K, V]()
	}

	return instance, collection.PutAll[K, V](instance, source)
}

func (s *TreeMap[K, V]) probe(key K) *node[K, V] {
	return &node[K, V]{
		key: key,
	}
}

func (s *TreeMap[K, V]) aboveLower(key K) bool {
	return !s.lower.set || s.storage.compare(key, s.lower.key) >= 0
}

func (s *TreeMap[K, V]) belowUpper(key K) bool {
	return !s.upper.set || s.storage.compare(key, s.upper.key) < 0
}

func (s *TreeMap[K, V]) inRange(key K) bool {
	return s.aboveLower(key) && s.belowUpper(key)
}

// withinBounds is the closed form of inRange used to validate the endpoints of a nested view.
func (s *TreeMap[K, V]) withinBounds(key K) bool {
	return s.aboveLower(key) && (!s.upper.set || s.storage.compare(key, s.upper.key) <= 0)
}

func (s *TreeMap[K, V]) unbounded() bool {
	return !s.lower.set && !s.upper.set
}

// ascend visits the nodes of this view in key order starting at the first key not less than start, or at the
// lower bound when start is unset.
func (s *TreeMap[K, V]) ascend(start bound[K], visitor func(next *node[K, V]) bool) {
	visit := func(next *node[K, V]) bool {
		if !s.belowUpper(next.key) {
			return false
		}

		return visitor(next)
	}

	if !start.set {
		start = s.lower
	}

	if start.set {
		s.storage.tree.AscendGreaterOrEqual(s.probe(start.key), visit)
	} else {
		s.storage.tree.Ascend(visit)
	}
}

// successor returns the first node of this view whose key sorts strictly after key.
func (s *TreeMap[K, V]) successor(key K) *node[K, V] {
	var found *node[K, V]

	s.ascend(bound[K]{key: key, set: true}, func(next *node[K, V]) bool {
		if s.storage.compare(next.key, key) == 0 {
			return true
		}

		found = next
		return false
	})

	return found
}

func (s *TreeMap[K, V]) first() *node[K, V] {
	var found *node[K, V]

	s.ascend(bound[K]{}, func(next *node[K, V]) bool {
		found = next
		return false
	})

	return found
}

func (s *TreeMap[K, V]) last() *node[K, V] {
	var (
		found *node[K, V]
		visit = func(next *node[K, V]) bool {
			if !s.belowUpper(next.key) {
				return true
			}

			if s.aboveLower(next.key) {
				found = next
			}

			return false
		}
	)

	if s.upper.set {
		s.storage.tree.DescendLessOrEqual(s.probe(s.upper.key), visit)
	} else {
		s.storage.tree.Descend(visit)
	}

	return found
}

// Len is constant time for a map and linear in the size of the window for a range view.
func (s *TreeMap[K, V]) Len() int {
	if s.unbounded() {
		return s.storage.tree.Len()
	}

	count := 0
	s.ascend(bound[K]{}, func(*node[K, V]) bool {
		count++
		return true
	})

	return count
}

func (s *TreeMap[K, V]) IsEmpty() bool {
	return s.first() == nil
}

func (s *TreeMap[K, V]) Compare(a, b K) int {
	return s.storage.compare(a, b)
}

func (s *TreeMap[K, V]) Comparator() collection.Comparator[K] {
	return s.storage.compare
}

func (s *TreeMap[K, V]) Get(key K) (V, bool) {
	if s.inRange(key) {
		if found, ok := s.storage.tree.Get(s.probe(key)); ok {
			return found.value, true
		}
	}

	var empty V
	return empty, false
}

func (s *TreeMap[K, V]) ContainsKey(key K) bool {
	return s.inRange(key) && s.storage.tree.Has(s.probe(key))
}

func (s *TreeMap[K, V]) ContainsValue(value V) bool {
	return collection.MapContainsValue(s.Entries(), value)
}

// Put associates value with key. A range view returns ErrInvalidRange for keys outside of its window.
func (s *TreeMap[K, V]) Put(key K, value V) (V, bool, error) {
	var empty V

	if !s.inRange(key) {
		return empty, false, errors.Wrapf(collection.ErrInvalidRange, "key %v is outside of the view", key)
	}

	if found, ok := s.storage.tree.Get(s.probe(key)); ok {
		return found.SetValue(value), true, nil
	}

	s.storage.tree.ReplaceOrInsert(&node[K, V]{
		key:   key,
		value: value,
	})

	s.storage.stamp.Bump()
	return empty, false, nil
}

func (s *TreeMap[K, V]) Delete(key K) (V, bool) {
	if s.inRange(key) {
		if removed, ok := s.storage.tree.Delete(s.probe(key)); ok {
			s.storage.stamp.Bump()
			return removed.value, true
		}
	}

	var empty V
	return empty, false
}

// Clear removes every mapping in the window of this map, counting as a single structural modification.
func (s *TreeMap[K, V]) Clear() {
	if s.unbounded() {
		if s.storage.tree.Len() > 0 {
			s.storage.tree.Clear(false)
			s.storage.stamp.Bump()
		}

		return
	}

	var doomed []*node[K, V]

	s.ascend(bound[K]{}, func(next *node[K, V]) bool {
		doomed = append(doomed, next)
		return true
	})

	for _, next := range doomed {
		s.storage.tree.Delete(next)
	}

	if len(doomed) > 0 {
		s.storage.stamp.Bump()
	}
}

func (s *TreeMap[K, V]) FirstKey() (K, bool) {
	if found := s.first(); found != nil {
		return found.key, true
	}

	var empty K
	return empty, false
}

func (s *TreeMap[K, V]) LastKey() (K, bool) {
	if found := s.last(); found != nil {
		return found.key, true
	}

	var empty K
	return empty, false
}

func (s *TreeMap[K, V]) view(lower, upper bound[K]) *TreeMap[K, V] {
	return &TreeMap[K, V]{
		storage: s.storage,
		lower:   lower,
		upper:   upper,
	}
}

func (s *TreeMap[K, V]) checkEndpoint(key K) error {
	if !s.withinBounds(key) {
		return errors.Wrapf(collection.ErrInvalidRange, "key %v is outside of the view", key)
	}

	return nil
}

func (s *TreeMap[K, V]) HeadMap(to K) (collection.NavigableMap[K, V], error) {
	if err := s.checkEndpoint(to); err != nil {
		return nil, err
	}

	return s.view(s.lower, bound[K]{key: to, set: true}), nil
}

func (s *TreeMap[K, V]) TailMap(from K) (collection.NavigableMap[K, V], error) {
	if err := s.checkEndpoint(from); err != nil {
		return nil, err
	}

	return s.view(bound[K]{key: from, set: true}, s.upper), nil
}

func (s *TreeMap[K, V]) SubMap(from, to K) (collection.NavigableMap[K, V], error) {
	if s.storage.compare(from, to) > 0 {
		return nil, errors.Wrapf(collection.ErrInvalidRange, "range start %v sorts after range end %v", from, to)
	}

	if err := s.checkEndpoint(from); err != nil {
		return nil, err
	}

	if err := s.checkEndpoint(to); err != nil {
		return nil, err
	}

	return s.view(bound[K]{key: from, set: true}, bound[K]{key: to, set: true}), nil
}

func (s *TreeMap[K, V]) Entries() collection.Container[collection.Entry[K, V]] {
	return entries[K, V]{
		backing: s,
	}
}

func (s *TreeMap[K, V]) Keys() collection.Set[K] {
	if s.keys == nil {
		s.keys = collection.NewKeyView[K, V](s)
	}

	return s.keys
}

func (s *TreeMap[K, V]) Values() collection.ValueCollection[V] {
	if s.values == nil {
		s.values = collection.NewValueView[K, V](s)
	}

	return s.values
}

func (s *TreeMap[K, V]) Equal(other collection.Map[K, V]) bool {
	return collection.MapEquals[K, V](s, other)
}

func (s *TreeMap[K, V]) Hash() uint64 {
	return collection.MapHash(s.Entries())
}

func (s *TreeMap[K, V]) String() string {
	return collection.FormatMap(s, s.Entries())
}

type entries[K comparable, V any] struct {
	backing *TreeMap[K, V]
}

func (s entries[K, V]) Len() int {
	return s.backing.Len()
}

func (s entries[K, V]) Cursor() collection.Cursor[collection.Entry[K, V]] {
	return &cursor[K, V]{
		backing: s.backing,
		guard:   s.backing.storage.stamp.Guard(),
	}
}

// cursor resumes after the key it last returned, so removing that key through the cursor does not lose its place.
type cursor[K comparable, V any] struct {
	backing *TreeMap[K, V]
	guard   collection.Guard
	removal collection.Removal
	current *node[K, V]
	done    bool
	err     error
}

func (s *cursor[K, V]) Next() bool {
	if s.err != nil || s.done {
		return false
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return false
	}

	var next *node[K, V]

	if s.current == nil {
		next = s.backing.first()
	} else {
		next = s.backing.successor(s.current.key)
	}

	if next == nil {
		s.done = true
		return false
	}

	s.current = next
	s.removal.Arm()

	return true
}

func (s *cursor[K, V]) Value() collection.Entry[K, V] {
	return s.current
}

func (s *cursor[K, V]) Remove() error {
	if s.err != nil {
		return s.err
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return err
	}

	if err := s.removal.Take(); err != nil {
		return err
	}

	s.backing.Delete(s.current.key)
	s.guard.Acknowledge()

	return nil
}

func (s *cursor[K, V]) Err() error {
	return s.err
}
