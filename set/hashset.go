package set

import (
	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/collection"
	"github.com/specterops/collections/hashmap"
)

// MapFactory creates the map whose key space backs a set. capacity is a sizing hint, zero or less selects the map's
// default.
type MapFactory[T comparable] func(capacity int) collection.Map[T, struct{}]

func sizing(capacity int) []hashmap.Option {
	if capacity > 0 {
		return []hashmap.Option{hashmap.WithCapacity(capacity)}
	}

	return nil
}

// PlainMap backs a set with a hash map. Iteration order is unspecified.
func PlainMap[T comparable](capacity int) collection.Map[T, struct{}] {
	return hashmap.New[T, struct{}](sizing(capacity)...)
}

// LinkedMap backs a set with an insertion-ordered linked hash map.
func LinkedMap[T comparable](capacity int) collection.Map[T, struct{}] {
	return hashmap.NewLinked[T, struct{}](sizing(capacity)...)
}

// HashSet is the key space of a map. Whether the set is ordered is decided entirely by the map factory it is built
// with.
type HashSet[T comparable] struct {
	backing collection.Map[T, struct{}]
	factory MapFactory[T]
}

func NewWith[T comparable](factory MapFactory[T], capacity int) (*HashSet[T], error) {
	if factory == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "set map factory")
	}

	return &HashSet[T]{
		backing: factory(capacity),
		factory: factory,
	}, nil
}

func New[T comparable]() *HashSet[T] {
	return NewWithCapacity[T](0)
}

func NewWithCapacity[T comparable](capacity int) *HashSet[T] {
	instance, _ := NewWith(PlainMap[T], capacity)
	return instance
}

// NewLinked creates a set that iterates in insertion order. Adding an element that is already present does not move
// it.
func NewLinked[T comparable]() *HashSet[T] {
	return NewLinkedWithCapacity[T](0)
}

func NewLinkedWithCapacity[T comparable](capacity int) *HashSet[T] {
	instance, _ := NewWith(LinkedMap[T], capacity)
	return instance
}

func NewFrom[T comparable](source collection.Container[T]) (*HashSet[T], error) {
	return newFrom(PlainMap[T], source)
}

func NewLinkedFrom[T comparable](source collection.Container[T]) (*HashSet[T], error) {
	return newFrom(LinkedMap[T], source)
}

func newFrom[T comparable](factory MapFactory[T], source collection.Container[T]) (*HashSet[T], error) {
	if source == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "set source")
	}

	instance, err := NewWith(factory, source.Len()*4/3+1)
	if err != nil {
		return nil, err
	}

	_, err = instance.AddAll(source)
	return instance, err
}

func (s *HashSet[T]) Len() int {
	return s.backing.Len()
}

func (s *HashSet[T]) IsEmpty() bool {
	return s.backing.IsEmpty()
}

func (s *HashSet[T]) Contains(value T) bool {
	return s.backing.ContainsKey(value)
}

func (s *HashSet[T]) ContainsAll(other collection.Container[T]) bool {
	return collection.ContainsAll[T](s, other)
}

// Add reports whether value was not previously present.
func (s *HashSet[T]) Add(value T) (bool, error) {
	_, replaced, err := s.backing.Put(value, struct{}{})
	return err == nil && !replaced, err
}

func (s *HashSet[T]) AddAll(source collection.Container[T]) (bool, error) {
	return collection.AddAll[T](s, source)
}

func (s *HashSet[T]) Remove(value T) bool {
	_, removed := s.backing.Delete(value)
	return removed
}

func (s *HashSet[T]) RemoveAll(other collection.Membership[T]) (bool, error) {
	return collection.RemoveAll[T](s, other)
}

func (s *HashSet[T]) RetainAll(other collection.Membership[T]) (bool, error) {
	return collection.RetainAll[T](s, other)
}

func (s *HashSet[T]) Clear() {
	s.backing.Clear()
}

func (s *HashSet[T]) Cursor() collection.Cursor[T] {
	return s.backing.Keys().Cursor()
}

func (s *HashSet[T]) ToSlice() []T {
	return collection.ToSlice[T](s)
}

func (s *HashSet[T]) Clone() *HashSet[T] {
	clone, _ := NewWith(s.factory, s.Len()*4/3+1)
	clone.AddAll(s)

	return clone
}

func (s *HashSet[T]) Equal(other collection.Set[T]) bool {
	return collection.SetEquals[T](s, other)
}

func (s *HashSet[T]) Hash() uint64 {
	return collection.SetHash[T](s)
}

func (s *HashSet[T]) String() string {
	return collection.Format[T](s, s)
}
