package list

import (
	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/collection"
)

// link is a node of the circular chain. The previous pointer is a plain back reference; ownership runs along next.
type link[T any] struct {
	data     T
	previous *link[T]
	next     *link[T]
}

// LinkedList is a doubly linked list closed into a circle by a single sentinel node, voidLink, that carries no data.
// The list is empty exactly when the sentinel points at itself in both directions.
//
// LinkedList implements both the List and the Queue contracts as well as the double ended queue operations.
type LinkedList[T comparable] struct {
	voidLink *link[T]
	size     int
	stamp    collection.Stamp
}

func NewLinkedList[T comparable]() *LinkedList[T] {
	voidLink := &link[T]{}
	voidLink.previous = voidLink
	voidLink.next = voidLink

	return &LinkedList[T]{
		voidLink: voidLink,
	}
}

// NewLinkedListFrom creates a list holding the elements of source in traversal order.
func NewLinkedListFrom[T comparable](source collection.Container[T]) (*LinkedList[T], error) {
	list := NewLinkedList[T]()

	if _, err := list.AddAll(source); err != nil {
		return nil, err
	}

	return list, nil
}

func (s *LinkedList[T]) Len() int {
	return s.size
}

func (s *LinkedList[T]) IsEmpty() bool {
	return s.size == 0
}

// linkAt walks from whichever end of the chain is closer to location.
func (s *LinkedList[T]) linkAt(location int) *link[T] {
	cursor := s.voidLink

	if location < s.size/2 {
		for idx := 0; idx <= location; idx++ {
			cursor = cursor.next
		}
	} else {
		for idx := s.size; idx > location; idx-- {
			cursor = cursor.previous
		}
	}

	return cursor
}

func (s *LinkedList[T]) at(location int) T {
	return s.linkAt(location).data
}

// splice links a new node holding value between previous and next.
func (s *LinkedList[T]) splice(previous, next *link[T], value T) *link[T] {
	newLink := &link[T]{
		data:     value,
		previous: previous,
		next:     next,
	}

	previous.next = newLink
	next.previous = newLink

	s.size++
	s.stamp.Bump()

	return newLink
}

// unlink removes the node from the chain.
func (s *LinkedList[T]) unlink(target *link[T]) T {
	target.previous.next = target.next
	target.next.previous = target.previous

	// Break the chain from the removed node so that it does not keep its neighbours reachable
	target.next = nil
	target.previous = nil

	s.size--
	s.stamp.Bump()

	return target.data
}

func (s *LinkedList[T]) Get(location int) (T, error) {
	if err := collection.CheckIndex(location, s.size); err != nil {
		var empty T
		return empty, err
	}

	return s.linkAt(location).data, nil
}

func (s *LinkedList[T]) Set(location int, value T) (T, error) {
	if err := collection.CheckIndex(location, s.size); err != nil {
		var empty T
		return empty, err
	}

	target := s.linkAt(location)
	previous := target.data
	target.data = value

	return previous, nil
}

// Add appends value to the end of the list.
func (s *LinkedList[T]) Add(value T) (bool, error) {
	s.splice(s.voidLink.previous, s.voidLink, value)
	return true, nil
}

// Insert places value before the element currently at location. Inserting at Len appends.
func (s *LinkedList[T]) Insert(location int, value T) error {
	if err := collection.CheckPosition(location, s.size); err != nil {
		return err
	}

	next := s.voidLink
	if location < s.size {
		next = s.linkAt(location)
	}

	s.splice(next.previous, next, value)
	return nil
}

func (s *LinkedList[T]) snapshotIfSelf(source collection.Container[T]) (collection.Container[T], error) {
	if typedSource, isList := source.(*LinkedList[T]); isList && typedSource == s {
		if buffer, err := collection.Snapshot(source); err != nil {
			return nil, err
		} else {
			return dequeContainer[T]{buffer: buffer}, nil
		}
	}

	return source, nil
}

// spliceAll links every element of source, in order, after previous. The whole run is spliced in one pass and
// counts as a single structural modification.
func (s *LinkedList[T]) spliceAll(previous *link[T], source collection.Container[T]) error {
	var (
		next   = previous.next
		adding = 0
		cursor = source.Cursor()
	)

	for cursor.Next() {
		newLink := &link[T]{
			data:     cursor.Value(),
			previous: previous,
		}

		previous.next = newLink
		previous = newLink
		adding++
	}

	previous.next = next
	next.previous = previous

	if adding > 0 {
		s.size += adding
		s.stamp.Bump()
	}

	return cursor.Err()
}

// AddAll appends every element of source. Adding a list to itself appends a copy of its original contents.
func (s *LinkedList[T]) AddAll(source collection.Container[T]) (bool, error) {
	if source == nil {
		return false, errors.Wrap(collection.ErrNullArgument, "add all source")
	}

	if source.Len() == 0 {
		return false, nil
	}

	elements, err := s.snapshotIfSelf(source)
	if err != nil {
		return false, err
	}

	return true, s.spliceAll(s.voidLink.previous, elements)
}

// AddAllAt inserts every element of source before the element currently at location.
func (s *LinkedList[T]) AddAllAt(location int, source collection.Container[T]) (bool, error) {
	if err := collection.CheckPosition(location, s.size); err != nil {
		return false, err
	}

	if source == nil {
		return false, errors.Wrap(collection.ErrNullArgument, "add all source")
	}

	if source.Len() == 0 {
		return false, nil
	}

	elements, err := s.snapshotIfSelf(source)
	if err != nil {
		return false, err
	}

	previous := s.voidLink
	if location > 0 {
		previous = s.linkAt(location - 1)
	}

	return true, s.spliceAll(previous, elements)
}

func (s *LinkedList[T]) AddFirst(value T) {
	s.splice(s.voidLink, s.voidLink.next, value)
}

func (s *LinkedList[T]) AddLast(value T) {
	s.splice(s.voidLink.previous, s.voidLink, value)
}

func (s *LinkedList[T]) emptyError(operation string) error {
	return errors.Wrapf(collection.ErrNoSuchElement, "%s of an empty list", operation)
}

func (s *LinkedList[T]) GetFirst() (T, error) {
	if s.size == 0 {
		var empty T
		return empty, s.emptyError("first")
	}

	return s.voidLink.next.data, nil
}

func (s *LinkedList[T]) GetLast() (T, error) {
	if s.size == 0 {
		var empty T
		return empty, s.emptyError("last")
	}

	return s.voidLink.previous.data, nil
}

func (s *LinkedList[T]) RemoveFirst() (T, error) {
	if s.size == 0 {
		var empty T
		return empty, s.emptyError("remove first")
	}

	return s.unlink(s.voidLink.next), nil
}

func (s *LinkedList[T]) RemoveLast() (T, error) {
	if s.size == 0 {
		var empty T
		return empty, s.emptyError("remove last")
	}

	return s.unlink(s.voidLink.previous), nil
}

func (s *LinkedList[T]) RemoveAt(location int) (T, error) {
	if err := collection.CheckIndex(location, s.size); err != nil {
		var empty T
		return empty, err
	}

	return s.unlink(s.linkAt(location)), nil
}

// Remove removes the first occurrence of value.
func (s *LinkedList[T]) Remove(value T) bool {
	return s.RemoveFirstOccurrence(value)
}

func (s *LinkedList[T]) RemoveFirstOccurrence(value T) bool {
	for cursor := s.voidLink.next; cursor != s.voidLink; cursor = cursor.next {
		if cursor.data == value {
			s.unlink(cursor)
			return true
		}
	}

	return false
}

func (s *LinkedList[T]) RemoveLastOccurrence(value T) bool {
	for cursor := s.voidLink.previous; cursor != s.voidLink; cursor = cursor.previous {
		if cursor.data == value {
			s.unlink(cursor)
			return true
		}
	}

	return false
}

func (s *LinkedList[T]) RemoveAll(other collection.Membership[T]) (bool, error) {
	return collection.RemoveAll[T](s, other)
}

func (s *LinkedList[T]) RetainAll(other collection.Membership[T]) (bool, error) {
	return collection.RetainAll[T](s, other)
}

// Clear detaches every node and returns the sentinel to its self-referencing state.
func (s *LinkedList[T]) Clear() {
	if s.size == 0 {
		return
	}

	for cursor := s.voidLink.next; cursor != s.voidLink; {
		next := cursor.next

		cursor.next = nil
		cursor.previous = nil
		cursor = next
	}

	s.voidLink.next = s.voidLink
	s.voidLink.previous = s.voidLink
	s.size = 0
	s.stamp.Bump()
}

func (s *LinkedList[T]) Contains(value T) bool {
	return s.IndexOf(value) >= 0
}

func (s *LinkedList[T]) ContainsAll(other collection.Container[T]) bool {
	return collection.ContainsAll[T](s, other)
}

func (s *LinkedList[T]) IndexOf(value T) int {
	idx := 0

	for cursor := s.voidLink.next; cursor != s.voidLink; cursor = cursor.next {
		if cursor.data == value {
			return idx
		}

		idx++
	}

	return -1
}

func (s *LinkedList[T]) LastIndexOf(value T) int {
	idx := s.size - 1

	for cursor := s.voidLink.previous; cursor != s.voidLink; cursor = cursor.previous {
		if cursor.data == value {
			return idx
		}

		idx--
	}

	return -1
}

// Offer appends value. It never fails.
func (s *LinkedList[T]) Offer(value T) error {
	s.AddLast(value)
	return nil
}

func (s *LinkedList[T]) OfferFirst(value T) {
	s.AddFirst(value)
}

func (s *LinkedList[T]) OfferLast(value T) {
	s.AddLast(value)
}

// Poll removes and returns the head of the list, or reports false when the list is empty.
func (s *LinkedList[T]) Poll() (T, bool) {
	return s.PollFirst()
}

func (s *LinkedList[T]) PollFirst() (T, bool) {
	if s.size == 0 {
		var empty T
		return empty, false
	}

	return s.unlink(s.voidLink.next), true
}

func (s *LinkedList[T]) PollLast() (T, bool) {
	if s.size == 0 {
		var empty T
		return empty, false
	}

	return s.unlink(s.voidLink.previous), true
}

// Peek returns the head of the list without removing it.
func (s *LinkedList[T]) Peek() (T, bool) {
	return s.PeekFirst()
}

func (s *LinkedList[T]) PeekFirst() (T, bool) {
	if s.size == 0 {
		var empty T
		return empty, false
	}

	return s.voidLink.next.data, true
}

func (s *LinkedList[T]) PeekLast() (T, bool) {
	if s.size == 0 {
		var empty T
		return empty, false
	}

	return s.voidLink.previous.data, true
}

// Element returns the head of the list or ErrNoSuchElement.
func (s *LinkedList[T]) Element() (T, error) {
	return collection.QueueElement[T](s)
}

// RemoveHead removes the head of the list or returns ErrNoSuchElement.
func (s *LinkedList[T]) RemoveHead() (T, error) {
	return collection.QueueRemove[T](s)
}

// Push adds value to the front of the list when used as a stack.
func (s *LinkedList[T]) Push(value T) {
	s.AddFirst(value)
}

// Pop removes the front of the list when used as a stack.
func (s *LinkedList[T]) Pop() (T, error) {
	return s.RemoveFirst()
}

func (s *LinkedList[T]) Cursor() collection.Cursor[T] {
	cursor, _ := s.ListCursor(0)
	return cursor
}

// ListCursor returns a bidirectional cursor positioned before the element at location.
func (s *LinkedList[T]) ListCursor(location int) (collection.ListCursor[T], error) {
	if err := collection.CheckPosition(location, s.size); err != nil {
		return nil, err
	}

	position := s.voidLink
	if location > 0 {
		position = s.linkAt(location - 1)
	}

	return &linkCursor[T]{
		list:     s,
		guard:    s.stamp.Guard(),
		link:     position,
		position: location - 1,
	}, nil
}

// DescendingCursor walks the list from its last element to its first.
func (s *LinkedList[T]) DescendingCursor() collection.Cursor[T] {
	return &reverseLinkCursor[T]{
		list:  s,
		guard: s.stamp.Guard(),
		link:  s.voidLink,
	}
}

func (s *LinkedList[T]) ToSlice() []T {
	var (
		values = make([]T, s.size)
		idx    = 0
	)

	for cursor := s.voidLink.next; cursor != s.voidLink; cursor = cursor.next {
		values[idx] = cursor.data
		idx++
	}

	return values
}

// Clone returns a shallow copy of this list.
func (s *LinkedList[T]) Clone() *LinkedList[T] {
	clone := NewLinkedList[T]()

	for cursor := s.voidLink.next; cursor != s.voidLink; cursor = cursor.next {
		clone.AddLast(cursor.data)
	}

	return clone
}

func (s *LinkedList[T]) Equal(other collection.List[T]) bool {
	return collection.ListEquals[T](s, other)
}

func (s *LinkedList[T]) Hash() uint64 {
	return collection.ListHash[T](s)
}

func (s *LinkedList[T]) String() string {
	return collection.Format[T](s, s)
}
