package set

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/collection"
	"github.com/specterops/collections/treemap"
)

// SortedSet is the key space of a navigable map. HeadSet, TailSet and SubSet return sets over range views of the
// same map, so a change made through any of them is visible through all of them.
type SortedSet[T comparable] struct {
	backing collection.NavigableMap[T, struct{}]
}

// NewSorted creates a set ordered by the natural order of T.
func NewSorted[T cmp.Ordered]() *SortedSet[T] {
	return &SortedSet[T]{
		backing: treemap.New[T, struct{}](),
	}
}

func NewSortedFunc[T comparable](compare collection.Comparator[T]) (*SortedSet[T], error) {
	backing, err := treemap.NewFunc[T, struct{}](compare)
	if err != nil {
		return nil, err
	}

	return &SortedSet[T]{
		backing: backing,
	}, nil
}

// NewSortedOver wraps an existing navigable map. The set does not copy the map: it reads and writes through it.
func NewSortedOver[T comparable](backing collection.NavigableMap[T, struct{}]) (*SortedSet[T], error) {
	if backing == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "sorted set backing map")
	}

	return &SortedSet[T]{
		backing: backing,
	}, nil
}

func NewSortedFrom[T cmp.Ordered](source collection.Container[T]) (*SortedSet[T], error) {
	if source == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "sorted set source")
	}

	instance := NewSorted[T]()

	_, err := instance.AddAll(source)
	return instance, err
}

func (s *SortedSet[T]) Len() int {
	return s.backing.Len()
}

func (s *SortedSet[T]) IsEmpty() bool {
	return s.backing.IsEmpty()
}

func (s *SortedSet[T]) Compare(a, b T) int {
	return s.backing.Compare(a, b)
}

func (s *SortedSet[T]) Contains(value T) bool {
	return s.backing.ContainsKey(value)
}

func (s *SortedSet[T]) ContainsAll(other collection.Container[T]) bool {
	return collection.ContainsAll[T](s, other)
}

// Add reports whether value was not previously present. Sets over a range view return ErrInvalidRange for values
// outside of the view.
func (s *SortedSet[T]) Add(value T) (bool, error) {
	_, replaced, err := s.backing.Put(value, struct{}{})
	return err == nil && !replaced, err
}

func (s *SortedSet[T]) AddAll(source collection.Container[T]) (bool, error) {
	return collection.AddAll[T](s, source)
}

func (s *SortedSet[T]) Remove(value T) bool {
	_, removed := s.backing.Delete(value)
	return removed
}

func (s *SortedSet[T]) RemoveAll(other collection.Membership[T]) (bool, error) {
	return collection.RemoveAll[T](s, other)
}

func (s *SortedSet[T]) RetainAll(other collection.Membership[T]) (bool, error) {
	return collection.RetainAll[T](s, other)
}

func (s *SortedSet[T]) Clear() {
	s.backing.Clear()
}

func (s *SortedSet[T]) Cursor() collection.Cursor[T] {
	return s.backing.Keys().Cursor()
}

func (s *SortedSet[T]) First() (T, error) {
	if first, found := s.backing.FirstKey(); found {
		return first, nil
	}

	var empty T
	return empty, errors.Wrap(collection.ErrNoSuchElement, "first of an empty sorted set")
}

func (s *SortedSet[T]) Last() (T, error) {
	if last, found := s.backing.LastKey(); found {
		return last, nil
	}

	var empty T
	return empty, errors.Wrap(collection.ErrNoSuchElement, "last of an empty sorted set")
}

// HeadSet returns the live view of elements strictly less than to.
func (s *SortedSet[T]) HeadSet(to T) (*SortedSet[T], error) {
	return s.wrap(s.backing.HeadMap(to))
}

// TailSet returns the live view of elements greater than or equal to from.
func (s *SortedSet[T]) TailSet(from T) (*SortedSet[T], error) {
	return s.wrap(s.backing.TailMap(from))
}

// SubSet returns the live view of elements in [from, to). It returns ErrInvalidRange if from sorts after to.
func (s *SortedSet[T]) SubSet(from, to T) (*SortedSet[T], error) {
	return s.wrap(s.backing.SubMap(from, to))
}

func (s *SortedSet[T]) wrap(view collection.NavigableMap[T, struct{}], err error) (*SortedSet[T], error) {
	if err != nil {
		return nil, err
	}

	return &SortedSet[T]{
		backing: view,
	}, nil
}

func (s *SortedSet[T]) ToSlice() []T {
	return collection.ToSlice[T](s)
}

func (s *SortedSet[T]) Equal(other collection.Set[T]) bool {
	return collection.SetEquals[T](s, other)
}

func (s *SortedSet[T]) Hash() uint64 {
	return collection.SetHash[T](s)
}

func (s *SortedSet[T]) String() string {
	return collection.Format[T](s, s)
}
