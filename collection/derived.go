package collection

import (
	"github.com/cockroachdb/errors"
	"github.com/gammazero/deque"
)

// Adder is the single mutation primitive that AddAll derives from.
type Adder[T any] interface {
	Add(value T) (bool, error)
}

// Membership is the single query primitive that RemoveAll, RetainAll and ContainsAll derive from.
type Membership[T any] interface {
	Contains(value T) bool
}

// IsEmpty reports whether the container holds no elements.
func IsEmpty[T any](container Container[T]) bool {
	return container.Len() == 0
}

// Contains performs a linear scan of the container. Nil matches only a nil element.
func Contains[T comparable](container Container[T], value T) bool {
	for cursor := container.Cursor(); cursor.Next(); {
		if cursor.Value() == value {
			return true
		}
	}

	return false
}

// ContainsAll reports whether every element of other is contained in container.
func ContainsAll[T comparable](container Membership[T], other Container[T]) bool {
	for cursor := other.Cursor(); cursor.Next(); {
		if !container.Contains(cursor.Value()) {
			return false
		}
	}

	return true
}

// AddAll adds every element of source to destination and reports whether any add changed destination.
func AddAll[T any](destination Adder[T], source Container[T]) (bool, error) {
	if source == nil {
		return false, errors.Wrap(ErrNullArgument, "add all source")
	}

	modified := false

	cursor := source.Cursor()
	for cursor.Next() {
		if added, err := destination.Add(cursor.Value()); err != nil {
			return modified, err
		} else if added {
			modified = true
		}
	}

	return modified, cursor.Err()
}

func removeMatching[T any](container Container[T], other Membership[T], remove bool) (bool, error) {
	if other == nil {
		return false, errors.Wrap(ErrNullArgument, "membership operand")
	}

	var (
		modified = false
		cursor   = container.Cursor()
	)

	for cursor.Next() {
		if other.Contains(cursor.Value()) == remove {
			if err := cursor.Remove(); err != nil {
				return modified, err
			}

			modified = true
		}
	}

	return modified, cursor.Err()
}

// RemoveAll removes, in a single pass through the container's own cursor, every element contained in other.
func RemoveAll[T any](container Container[T], other Membership[T]) (bool, error) {
	return removeMatching(container, other, true)
}

// RetainAll removes, in a single pass through the container's own cursor, every element not contained in other.
func RetainAll[T any](container Container[T], other Membership[T]) (bool, error) {
	return removeMatching(container, other, false)
}

// Clear removes every element by repeatedly advancing and removing through a cursor.
func Clear[T any](container Container[T]) error {
	cursor := container.Cursor()

	for cursor.Next() {
		if err := cursor.Remove(); err != nil {
			return err
		}
	}

	return cursor.Err()
}

// ToSlice copies the container into a newly allocated slice in traversal order.
func ToSlice[T any](container Container[T]) []T {
	values := make([]T, 0, container.Len())

	for cursor := container.Cursor(); cursor.Next(); {
		values = append(values, cursor.Value())
	}

	return values
}

// Reversed copies the container into a newly allocated slice in reverse traversal order.
func Reversed[T any](container Container[T]) []T {
	var (
		numValues = container.Len()
		values    = make([]T, numValues)
		idx       = numValues
	)

	for cursor := container.Cursor(); cursor.Next() && idx > 0; {
		idx--
		values[idx] = cursor.Value()
	}

	return values[idx:]
}

// Snapshot copies the container into an independent buffer. Containers that insert a copy of themselves use it to
// avoid observing their own insertions.
func Snapshot[T any](container Container[T]) (*deque.Deque[T], error) {
	var (
		buffer = &deque.Deque[T]{}
		cursor = container.Cursor()
	)

	for cursor.Next() {
		buffer.PushBack(cursor.Value())
	}

	return buffer, cursor.Err()
}

// ListEquals compares two sequences element by element in order.
func ListEquals[T comparable](list Container[T], other Container[T]) bool {
	if other == nil {
		return false
	}

	if list.Len() != other.Len() {
		return false
	}

	var (
		cursor      = list.Cursor()
		otherCursor = other.Cursor()
	)

	for cursor.Next() {
		if !otherCursor.Next() || cursor.Value() != otherCursor.Value() {
			return false
		}
	}

	return !otherCursor.Next()
}

// ListHash combines element hashes in traversal order.
func ListHash[T any](list Container[T]) uint64 {
	var hash uint64 = 1

	for cursor := list.Cursor(); cursor.Next(); {
		hash = 31*hash + Hash(cursor.Value())
	}

	return hash
}

// SetEquals reports whether both sets have the same size and contain each other.
func SetEquals[T comparable](set Set[T], other Set[T]) bool {
	if other == nil {
		return false
	}

	if any(set) == any(other) {
		return true
	}

	return set.Len() == other.Len() && ContainsAll[T](set, other) && ContainsAll[T](other, set)
}

// SetHash sums element hashes. The result does not depend on traversal order.
func SetHash[T any](set Container[T]) uint64 {
	var hash uint64

	for cursor := set.Cursor(); cursor.Next(); {
		hash += Hash(cursor.Value())
	}

	return hash
}
