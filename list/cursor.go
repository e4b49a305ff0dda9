package list

import (
	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/collection"
)

// indexed is the random access primitive set that indexCursor walks.
type indexed[T comparable] interface {
	Len() int
	Set(index int, value T) (T, error)
	Insert(index int, value T) error
	RemoveAt(index int) (T, error)

	at(index int) T
}

// indexCursor is a ListCursor for random access lists. It addresses elements by position and relies on the list's
// positional operations for every mutation.
type indexCursor[T comparable] struct {
	list     indexed[T]
	guard    collection.Guard
	removal  collection.Removal
	position int
	last     int
	current  T
	err      error
}

func newIndexCursor[T comparable](list indexed[T], stamp *collection.Stamp, position int) *indexCursor[T] {
	return &indexCursor[T]{
		list:     list,
		guard:    stamp.Guard(),
		position: position,
		last:     -1,
	}
}

func (s *indexCursor[T]) check() error {
	if s.err != nil {
		return s.err
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return err
	}

	return nil
}

func (s *indexCursor[T]) HasNext() bool {
	return s.check() == nil && s.position < s.list.Len()
}

func (s *indexCursor[T]) HasPrevious() bool {
	return s.check() == nil && s.position > 0
}

func (s *indexCursor[T]) Next() bool {
	if !s.HasNext() {
		return false
	}

	s.current = s.list.at(s.position)
	s.last = s.position
	s.position++
	s.removal.Arm()

	return true
}

func (s *indexCursor[T]) Previous() bool {
	if !s.HasPrevious() {
		return false
	}

	s.position--
	s.current = s.list.at(s.position)
	s.last = s.position
	s.removal.Arm()

	return true
}

func (s *indexCursor[T]) Value() T {
	return s.current
}

func (s *indexCursor[T]) NextIndex() int {
	return s.position
}

func (s *indexCursor[T]) PreviousIndex() int {
	return s.position - 1
}

func (s *indexCursor[T]) Remove() error {
	if err := s.check(); err != nil {
		return err
	}

	if err := s.removal.Take(); err != nil {
		return err
	}

	if _, err := s.list.RemoveAt(s.last); err != nil {
		return err
	}

	s.guard.Acknowledge()

	if s.last < s.position {
		s.position--
	}

	s.last = -1
	return nil
}

func (s *indexCursor[T]) Set(value T) error {
	if err := s.check(); err != nil {
		return err
	}

	if s.last < 0 {
		return errors.Wrap(collection.ErrInvalidIteratorState, "set requires a preceding advance")
	}

	_, err := s.list.Set(s.last, value)
	return err
}

func (s *indexCursor[T]) Add(value T) error {
	if err := s.check(); err != nil {
		return err
	}

	if err := s.list.Insert(s.position, value); err != nil {
		return err
	}

	s.guard.Acknowledge()
	s.position++
	s.last = -1
	s.removal.Disarm()

	return nil
}

func (s *indexCursor[T]) Err() error {
	return s.err
}
