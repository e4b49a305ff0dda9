package pqueue

import (
	"github.com/gammazero/deque"
	"github.com/specterops/collections/collection"
)

// cursor walks the heap slice in index order. Removing a value can move the last value of the heap into a slot the
// cursor has already passed; such values are parked and visited once the slice is exhausted.
type cursor[T comparable] struct {
	backing *PriorityQueue[T]
	guard   collection.Guard
	removal collection.Removal
	index   int
	last    int
	parked  deque.Deque[T]
	current T
	err     error
}

func newCursor[T comparable](backing *PriorityQueue[T]) *cursor[T] {
	return &cursor[T]{
		backing: backing,
		guard:   backing.stamp.Guard(),
		last:    -1,
	}
}

func (s *cursor[T]) Next() bool {
	if s.err != nil {
		return false
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return false
	}

	if s.index < s.backing.size {
		s.last = s.index
		s.current = s.backing.queue[s.index]
		s.index++
	} else if s.parked.Len() > 0 {
		s.last = -1
		s.current = s.parked.PopFront()
	} else {
		return false
	}

	s.removal.Arm()
	return true
}

func (s *cursor[T]) Value() T {
	return s.current
}

func (s *cursor[T]) Remove() error {
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

	if s.last >= 0 {
		if moved, passed := s.backing.removeAt(s.last); passed {
			s.parked.PushBack(moved)
		} else {
			s.index--
		}

		s.last = -1
	} else if idx := s.backing.indexOf(s.current); idx >= 0 {
		s.backing.removeAt(idx)
	}

	s.guard.Acknowledge()
	return nil
}

func (s *cursor[T]) Err() error {
	return s.err
}
