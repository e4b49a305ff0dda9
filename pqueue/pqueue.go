package pqueue

import (
	"cmp"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/collection"
)

const (
	defaultCapacity = 11
	doublingLimit   = 64
)

// PriorityQueue is a binary min-heap laid out level-order in a slice: the children of the value at index i live at
// 2i+1 and 2i+2. Only the head is ordered; cursors traverse the raw slice order.
type PriorityQueue[T comparable] struct {
	queue      []T
	size       int
	comparator collection.Comparator[T]
	compare    func(a, b T) (int, error)
	stamp      collection.Stamp
}

func orderedCompare[T cmp.Ordered](a, b T) (int, error) {
	return cmp.Compare(a, b), nil
}

func comparatorCompare[T any](comparator collection.Comparator[T]) func(a, b T) (int, error) {
	return func(a, b T) (int, error) {
		return comparator(a, b), nil
	}
}

func newQueue[T comparable](capacity int, comparator collection.Comparator[T], compare func(a, b T) (int, error)) *PriorityQueue[T] {
	if capacity < 1 {
		capacity = 1
	}

	return &PriorityQueue[T]{
		queue:      make([]T, capacity),
		comparator: comparator,
		compare:    compare,
	}
}

// New creates a queue over the language ordering of T.
func New[T cmp.Ordered]() *PriorityQueue[T] {
	return NewWithCapacity[T](defaultCapacity)
}

func NewWithCapacity[T cmp.Ordered](capacity int) *PriorityQueue[T] {
	return newQueue[T](capacity, cmp.Compare[T], orderedCompare[T])
}

// NewFunc creates a queue ordered by comparator.
func NewFunc[T comparable](comparator collection.Comparator[T]) (*PriorityQueue[T], error) {
	return NewFuncWithCapacity(defaultCapacity, comparator)
}

func NewFuncWithCapacity[T comparable](capacity int, comparator collection.Comparator[T]) (*PriorityQueue[T], error) {
	if comparator == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "priority queue comparator")
	}

	return newQueue(capacity, comparator, comparatorCompare(comparator)), nil
}

// NewNatural creates a queue ordered by the natural ordering of its elements as resolved at runtime by
// collection.NaturalCompare. Elements without a natural ordering are rejected when they are first compared.
func NewNatural[T comparable]() *PriorityQueue[T] {
	return newQueue[T](defaultCapacity, nil, collection.NaturalCompare[T])
}

// NewFrom creates a queue holding every value of source. A source priority queue contributes its ordering, any other
// source is heapified under the natural ordering of its elements.
func NewFrom[T comparable](source collection.Container[T]) (*PriorityQueue[T], error) {
	if source == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "priority queue source")
	}

	if seed, ok := source.(*PriorityQueue[T]); ok {
		instance := newQueue(seed.size+seed.size/10, seed.comparator, seed.compare)
		copy(instance.queue, seed.queue[:seed.size])
		instance.size = seed.size

		return instance, nil
	}

	values := collection.ToSlice(source)

	instance := newQueue[T](len(values)+len(values)/10, nil, collection.NaturalCompare[T])
	if err := instance.heapify(values); err != nil {
		return nil, err
	}

	return instance, nil
}

// admits rejects values whose dynamic type differs from the queued ones when ordering naturally. Values of one
// dynamic type that compare with themselves always compare with each other, so no comparison fails after admission.
func (s *PriorityQueue[T]) admits(value, queued T) error {
	if s.comparator != nil {
		return nil
	}

	if valueType, queuedType := reflect.TypeOf(any(value)), reflect.TypeOf(any(queued)); valueType != queuedType {
		return errors.Wrapf(collection.ErrIncompatibleType, "can not queue %v alongside %v", valueType, queuedType)
	}

	return nil
}

func (s *PriorityQueue[T]) heapify(values []T) error {
	for _, value := range values {
		if collection.IsNil(value) {
			return errors.Wrap(collection.ErrNullArgument, "priority queue element")
		}

		if err := s.admits(value, values[0]); err != nil {
			return err
		}
	}

	if len(values) == 1 {
		if _, err := s.compare(values[0], values[0]); err != nil {
			return err
		}
	}

	copy(s.queue, values)
	s.size = len(values)

	for idx := s.size/2 - 1; idx >= 0; idx-- {
		if _, err := s.siftDown(idx, s.queue[idx]); err != nil {
			return err
		}
	}

	return nil
}

// grow makes room for at least minimum slots. Small heaps double, larger ones grow by half.
func (s *PriorityQueue[T]) grow(minimum int) {
	capacity := len(s.queue)

	if capacity < doublingLimit {
		capacity += capacity + 2
	} else {
		capacity += capacity / 2
	}

	if capacity < minimum {
		capacity = minimum
	}

	queue := make([]T, capacity)
	copy(queue, s.queue[:s.size])
	s.queue = queue
}

// siftUpTarget finds the slot value would settle in if it bubbled up from index without moving anything, so that a
// failed comparison leaves the heap untouched.
func (s *PriorityQueue[T]) siftUpTarget(index int, value T) (int, error) {
	for index > 0 {
		parent := (index - 1) / 2

		if order, err := s.compare(value, s.queue[parent]); err != nil {
			return 0, err
		} else if order >= 0 {
			break
		}

		index = parent
	}

	return index, nil
}

// siftUp moves value from index toward the root and returns the slot it settled in.
func (s *PriorityQueue[T]) siftUp(index int, value T) int {
	target, err := s.siftUpTarget(index, value)
	if err != nil {
		// Unreachable for admitted values
		target = index
	}

	for index > target {
		parent := (index - 1) / 2
		s.queue[index] = s.queue[parent]
		index = parent
	}

	s.queue[target] = value
	return target
}

// siftDown moves value from index toward the leaves, swapping with the smaller child while it is out of order, and
// returns the slot it settled in.
func (s *PriorityQueue[T]) siftDown(index int, value T) (int, error) {
	half := s.size / 2

	for index < half {
		var (
			child = 2*index + 1
			right = child + 1
		)

		if right < s.size {
			if order, err := s.compare(s.queue[child], s.queue[right]); err != nil {
				s.queue[index] = value
				return index, err
			} else if order > 0 {
				child = right
			}
		}

		if order, err := s.compare(value, s.queue[child]); err != nil {
			s.queue[index] = value
			return index, err
		} else if order <= 0 {
			break
		}

		s.queue[index] = s.queue[child]
		index = child
	}

	s.queue[index] = value
	return index, nil
}

// removeAt deletes the value at index by moving the last value into its slot and restoring the heap. When the moved
// value ends up before index it is returned so that a cursor can still visit it.
func (s *PriorityQueue[T]) removeAt(index int) (T, bool) {
	var empty T

	s.stamp.Bump()
	s.size--

	last := s.size
	if last == index {
		s.queue[last] = empty
		return empty, false
	}

	moved := s.queue[last]
	s.queue[last] = empty

	// Comparisons between admitted values can not fail
	settled, _ := s.siftDown(index, moved)
	if settled == index {
		if settled = s.siftUp(index, moved); settled != index {
			return moved, true
		}
	}

	return empty, false
}

func (s *PriorityQueue[T]) indexOf(value T) int {
	for idx := 0; idx < s.size; idx++ {
		if s.queue[idx] == value {
			return idx
		}
	}

	return -1
}

func (s *PriorityQueue[T]) Len() int {
	return s.size
}

func (s *PriorityQueue[T]) IsEmpty() bool {
	return s.size == 0
}

// Comparator returns the ordering of this queue or nil when it orders by natural ordering.
func (s *PriorityQueue[T]) Comparator() collection.Comparator[T] {
	return s.comparator
}

// Offer inserts value. A value that can not be compared with the values already queued is rejected with
// ErrIncompatibleType and the queue is left unchanged. Under natural ordering that includes any value whose dynamic
// type differs from the queued values.
func (s *PriorityQueue[T]) Offer(value T) error {
	if collection.IsNil(value) {
		return errors.Wrap(collection.ErrNullArgument, "priority queue element")
	}

	var (
		target int
		err    error
	)

	if s.size == 0 {
		_, err = s.compare(value, value)
	} else if err = s.admits(value, s.queue[0]); err == nil {
		target, err = s.siftUpTarget(s.size, value)
	}

	if err != nil {
		return err
	}

	if s.size >= len(s.queue) {
		s.grow(s.size + 1)
	}

	for index := s.size; index > target; {
		parent := (index - 1) / 2
		s.queue[index] = s.queue[parent]
		index = parent
	}

	s.queue[target] = value
	s.size++
	s.stamp.Bump()

	return nil
}

func (s *PriorityQueue[T]) Add(value T) (bool, error) {
	return collection.QueueAdd[T](s, value)
}

// AddAll offers every value of source. Adding a queue to itself offers a snapshot of its values.
func (s *PriorityQueue[T]) AddAll(source collection.Container[T]) (bool, error) {
	if source == nil {
		return false, errors.Wrap(collection.ErrNullArgument, "add all source")
	}

	buffer, err := collection.Snapshot(source)
	if err != nil {
		return false, err
	}

	if s.size+buffer.Len() > len(s.queue) {
		s.grow(s.size + buffer.Len())
	}

	modified := false

	for buffer.Len() > 0 {
		if err := s.Offer(buffer.PopFront()); err != nil {
			return modified, err
		}

		modified = true
	}

	return modified, nil
}

func (s *PriorityQueue[T]) Poll() (T, bool) {
	var empty T

	if s.size == 0 {
		return empty, false
	}

	head := s.queue[0]
	s.removeAt(0)

	return head, true
}

func (s *PriorityQueue[T]) Peek() (T, bool) {
	var empty T

	if s.size == 0 {
		return empty, false
	}

	return s.queue[0], true
}

// RemoveHead is Poll that reports an empty queue with ErrNoSuchElement.
func (s *PriorityQueue[T]) RemoveHead() (T, error) {
	return collection.QueueRemove[T](s)
}

// Element is Peek that reports an empty queue with ErrNoSuchElement.
func (s *PriorityQueue[T]) Element() (T, error) {
	return collection.QueueElement[T](s)
}

// Remove deletes one instance of value, if present.
func (s *PriorityQueue[T]) Remove(value T) bool {
	if idx := s.indexOf(value); idx >= 0 {
		s.removeAt(idx)
		return true
	}

	return false
}

func (s *PriorityQueue[T]) Contains(value T) bool {
	return s.indexOf(value) >= 0
}

func (s *PriorityQueue[T]) Clear() {
	if s.size > 0 {
		clear(s.queue[:s.size])
		s.size = 0
		s.stamp.Bump()
	}
}

// ToSlice copies the queued values in raw heap order.
func (s *PriorityQueue[T]) ToSlice() []T {
	return append([]T(nil), s.queue[:s.size]...)
}

// Drain polls every value, returning them in priority order and leaving the queue empty.
func (s *PriorityQueue[T]) Drain() []T {
	values := make([]T, 0, s.size)

	for value, ok := s.Poll(); ok; value, ok = s.Poll() {
		values = append(values, value)
	}

	return values
}

func (s *PriorityQueue[T]) Cursor() collection.Cursor[T] {
	return newCursor(s)
}

func (s *PriorityQueue[T]) String() string {
	return collection.Format[T](s, s)
}
