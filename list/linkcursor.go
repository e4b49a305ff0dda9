package list

import (
	"github.com/cockroachdb/errors"
	"github.com/gammazero/deque"
	"github.com/specterops/collections/collection"
)

// linkCursor sits between link and link.next. position is the index of link, -1 while link is the sentinel.
type linkCursor[T comparable] struct {
	list     *LinkedList[T]
	guard    collection.Guard
	link     *link[T]
	lastLink *link[T]
	position int
	current  T
	err      error
}

func (s *linkCursor[T]) check() error {
	if s.err != nil {
		return s.err
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return err
	}

	return nil
}

func (s *linkCursor[T]) HasNext() bool {
	return s.check() == nil && s.link.next != s.list.voidLink
}

func (s *linkCursor[T]) HasPrevious() bool {
	return s.check() == nil && s.link != s.list.voidLink
}

func (s *linkCursor[T]) Next() bool {
	if !s.HasNext() {
		return false
	}

	s.link = s.link.next
	s.lastLink = s.link
	s.position++
	s.current = s.link.data

	return true
}

func (s *linkCursor[T]) Previous() bool {
	if !s.HasPrevious() {
		return false
	}

	s.lastLink = s.link
	s.link = s.link.previous
	s.position--
	s.current = s.lastLink.data

	return true
}

func (s *linkCursor[T]) Value() T {
	return s.current
}

func (s *linkCursor[T]) NextIndex() int {
	return s.position + 1
}

func (s *linkCursor[T]) PreviousIndex() int {
	return s.position
}

func (s *linkCursor[T]) Remove() error {
	if err := s.check(); err != nil {
		return err
	}

	if s.lastLink == nil {
		return errors.Wrap(collection.ErrInvalidIteratorState, "remove requires a preceding advance")
	}

	previous := s.lastLink.previous

	if s.lastLink == s.link {
		s.position--
	}

	s.list.unlink(s.lastLink)
	s.guard.Acknowledge()

	s.link = previous
	s.lastLink = nil

	return nil
}

func (s *linkCursor[T]) Set(value T) error {
	if err := s.check(); err != nil {
		return err
	}

	if s.lastLink == nil {
		return errors.Wrap(collection.ErrInvalidIteratorState, "set requires a preceding advance")
	}

	s.lastLink.data = value
	return nil
}

func (s *linkCursor[T]) Add(value T) error {
	if err := s.check(); err != nil {
		return err
	}

	s.link = s.list.splice(s.link, s.link.next, value)
	s.guard.Acknowledge()

	s.lastLink = nil
	s.position++

	return nil
}

func (s *linkCursor[T]) Err() error {
	return s.err
}

// reverseLinkCursor walks the chain backwards starting from the sentinel.
type reverseLinkCursor[T comparable] struct {
	list    *LinkedList[T]
	guard   collection.Guard
	removal collection.Removal
	link    *link[T]
	current T
	err     error
}

func (s *reverseLinkCursor[T]) Next() bool {
	if s.err != nil {
		return false
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return false
	}

	if s.link.previous == s.list.voidLink {
		return false
	}

	s.link = s.link.previous
	s.current = s.link.data
	s.removal.Arm()

	return true
}

func (s *reverseLinkCursor[T]) Value() T {
	return s.current
}

func (s *reverseLinkCursor[T]) Remove() error {
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

	// Resume from the node that was visited before the removed one
	resume := s.link.next

	s.list.unlink(s.link)
	s.guard.Acknowledge()
	s.link = resume

	return nil
}

func (s *reverseLinkCursor[T]) Err() error {
	return s.err
}

// dequeContainer exposes a snapshot buffer as a read-only container.
type dequeContainer[T any] struct {
	buffer *deque.Deque[T]
}

func (s dequeContainer[T]) Len() int {
	return s.buffer.Len()
}

func (s dequeContainer[T]) Cursor() collection.Cursor[T] {
	return &dequeCursor[T]{
		buffer: s.buffer,
		index:  -1,
	}
}

type dequeCursor[T any] struct {
	buffer *deque.Deque[T]
	index  int
}

func (s *dequeCursor[T]) Next() bool {
	if s.index+1 >= s.buffer.Len() {
		return false
	}

	s.index++
	return true
}

func (s *dequeCursor[T]) Value() T {
	return s.buffer.At(s.index)
}

func (s *dequeCursor[T]) Remove() error {
	return collection.Unsupported("remove from a snapshot")
}

func (s *dequeCursor[T]) Err() error {
	return nil
}
