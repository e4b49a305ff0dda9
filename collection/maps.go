package collection

import "github.com/cockroachdb/errors"

type Entry[K comparable, V any] interface {
	Key() K
	Value() V

	// SetValue replaces the value of this entry in its backing map and returns the previous value. Replacing a value
	// is not a structural modification.
	SetValue(value V) V
}

// ValueCollection is the live view over the values of a map. Values are compared with Equal.
type ValueCollection[V any] interface {
	Container[V]

	IsEmpty() bool
	Contains(value V) bool
	Remove(value V) bool
	Clear()
}

// Map associates unique keys with values. Entries is the required primitive; Keys and Values are live views derived
// from it that reflect the backing map's size and entry order.
type Map[K comparable, V any] interface {
	Len() int
	IsEmpty() bool
	Get(key K) (V, bool)
	ContainsKey(key K) bool
	ContainsValue(value V) bool

	// Put associates value with key and returns the previous value if one was replaced. Maps that restrict their key
	// space, such as range views, return an error for keys they can not hold.
	Put(key K, value V) (V, bool, error)
	Delete(key K) (V, bool)
	Clear()

	Entries() Container[Entry[K, V]]
	Keys() Set[K]
	Values() ValueCollection[V]
}

// NavigableMap is a Map whose keys are kept in the order of a comparator and which can expose contiguous key ranges
// as live views sharing its storage.
type NavigableMap[K comparable, V any] interface {
	Map[K, V]

	Compare(a, b K) int
	FirstKey() (K, bool)
	LastKey() (K, bool)

	// HeadMap returns the view of keys strictly less than to.
	HeadMap(to K) (NavigableMap[K, V], error)

	// TailMap returns the view of keys greater than or equal to from.
	TailMap(from K) (NavigableMap[K, V], error)

	// SubMap returns the view of keys in [from, to). It returns ErrInvalidRange if from sorts after to.
	SubMap(from, to K) (NavigableMap[K, V], error)
}

// MapContainsValue scans the entries of a map for value.
func MapContainsValue[K comparable, V any](entries Container[Entry[K, V]], value V) bool {
	for cursor := entries.Cursor(); cursor.Next(); {
		if Equal(cursor.Value().Value(), value) {
			return true
		}
	}

	return false
}

// MapEquals reports whether both maps hold the same keys mapped to equal values. A missing key never equals a key
// mapped to a nil value.
func MapEquals[K comparable, V any](m Map[K, V], other Map[K, V]) bool {
	if other == nil {
		return false
	}

	if any(m) == any(other) {
		return true
	}

	if m.Len() != other.Len() {
		return false
	}

	for cursor := m.Entries().Cursor(); cursor.Next(); {
		entry := cursor.Value()

		if otherValue, found := other.Get(entry.Key()); !found || !Equal(entry.Value(), otherValue) {
			return false
		}
	}

	return true
}

// MapHash sums the hash of each entry, itself the key hash XOR the value hash.
func MapHash[K comparable, V any](entries Container[Entry[K, V]]) uint64 {
	var hash uint64

	for cursor := entries.Cursor(); cursor.Next(); {
		entry := cursor.Value()
		hash += Hash(entry.Key()) ^ Hash(entry.Value())
	}

	return hash
}

// PutAll copies every entry of source into destination.
func PutAll[K comparable, V any](destination Map[K, V], source Map[K, V]) error {
	if source == nil {
		return errors.Wrap(ErrNullArgument, "put all source")
	}

	entries := source.Entries().Cursor()

	for entries.Next() {
		entry := entries.Value()

		if _, _, err := destination.Put(entry.Key(), entry.Value()); err != nil {
			return err
		}
	}

	return entries.Err()
}

type entryKeyCursor[K comparable, V any] struct {
	entries Cursor[Entry[K, V]]
}

func (s entryKeyCursor[K, V]) Next() bool {
	return s.entries.Next()
}

func (s entryKeyCursor[K, V]) Value() K {
	return s.entries.Value().Key()
}

func (s entryKeyCursor[K, V]) Remove() error {
	return s.entries.Remove()
}

func (s entryKeyCursor[K, V]) Err() error {
	return s.entries.Err()
}

type entryValueCursor[K comparable, V any] struct {
	entries Cursor[Entry[K, V]]
}

func (s entryValueCursor[K, V]) Next() bool {
	return s.entries.Next()
}

func (s entryValueCursor[K, V]) Value() V {
	return s.entries.Value().Value()
}

func (s entryValueCursor[K, V]) Remove() error {
	return s.entries.Remove()
}

func (s entryValueCursor[K, V]) Err() error {
	return s.entries.Err()
}

// KeyView is the live set of keys of a map. Removal through the view or its cursors removes the mapping from the
// backing map; adding is not supported.
type KeyView[K comparable, V any] struct {
	backing Map[K, V]
}

func NewKeyView[K comparable, V any](backing Map[K, V]) *KeyView[K, V] {
	return &KeyView[K, V]{
		backing: backing,
	}
}

func (s *KeyView[K, V]) Len() int {
	return s.backing.Len()
}

func (s *KeyView[K, V]) IsEmpty() bool {
	return s.backing.IsEmpty()
}

func (s *KeyView[K, V]) Cursor() Cursor[K] {
	return entryKeyCursor[K, V]{
		entries: s.backing.Entries().Cursor(),
	}
}

func (s *KeyView[K, V]) Contains(key K) bool {
	return s.backing.ContainsKey(key)
}

func (s *KeyView[K, V]) ContainsAll(other Container[K]) bool {
	return ContainsAll[K](s, other)
}

func (s *KeyView[K, V]) Add(K) (bool, error) {
	return false, Unsupported("add to a key view")
}

func (s *KeyView[K, V]) Remove(key K) bool {
	_, removed := s.backing.Delete(key)
	return removed
}

func (s *KeyView[K, V]) Clear() {
	s.backing.Clear()
}

func (s *KeyView[K, V]) Equal(other Set[K]) bool {
	return SetEquals[K](s, other)
}

func (s *KeyView[K, V]) Hash() uint64 {
	return SetHash[K](s)
}

func (s *KeyView[K, V]) String() string {
	return Format[K](s, s)
}

// ValueView is the live collection of values of a map, in entry order.
type ValueView[K comparable, V any] struct {
	backing Map[K, V]
}

func NewValueView[K comparable, V any](backing Map[K, V]) *ValueView[K, V] {
	return &ValueView[K, V]{
		backing: backing,
	}
}

func (s *ValueView[K, V]) Len() int {
	return s.backing.Len()
}

func (s *ValueView[K, V]) IsEmpty() bool {
	return s.backing.IsEmpty()
}

func (s *ValueView[K, V]) Cursor() Cursor[V] {
	return entryValueCursor[K, V]{
		entries: s.backing.Entries().Cursor(),
	}
}

func (s *ValueView[K, V]) Contains(value V) bool {
	return s.backing.ContainsValue(value)
}

// Remove deletes the first mapping, in entry order, whose value equals value.
func (s *ValueView[K, V]) Remove(value V) bool {
	for cursor := s.Cursor(); cursor.Next(); {
		if Equal(cursor.Value(), value) {
			return cursor.Remove() == nil
		}
	}

	return false
}

func (s *ValueView[K, V]) Clear() {
	s.backing.Clear()
}

func (s *ValueView[K, V]) String() string {
	return Format[V](s, s)
}
