package list

import (
	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/collection"
)

const (
	defaultArrayCapacity = 10
	minimumArrayGrowth   = 12
)

// ArrayList is a random access list stored in a single backing slice. The occupied window of the slice is
// [firstIndex, firstIndex+size) which lets the list grow and shrink cheaply at both ends. Slots outside the window
// always hold the zero value so that the list never retains references to removed elements.
type ArrayList[T comparable] struct {
	array      []T
	firstIndex int
	size       int
	stamp      collection.Stamp
}

func NewArrayList[T comparable]() *ArrayList[T] {
	return NewArrayListWithCapacity[T](defaultArrayCapacity)
}

// NewArrayListWithCapacity creates an empty list able to hold capacity elements before growing. Negative capacities
// are treated as zero.
func NewArrayListWithCapacity[T comparable](capacity int) *ArrayList[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &ArrayList[T]{
		array: make([]T, capacity),
	}
}

// NewArrayListFrom creates a list holding the elements of source in traversal order.
func NewArrayListFrom[T comparable](source collection.Container[T]) (*ArrayList[T], error) {
	if source == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "array list source")
	}

	var (
		values = collection.ToSlice(source)
		list   = NewArrayListWithCapacity[T](len(values) + len(values)/10)
	)

	copy(list.array, values)
	list.size = len(values)

	return list, nil
}

func (s *ArrayList[T]) Len() int {
	return s.size
}

func (s *ArrayList[T]) IsEmpty() bool {
	return s.size == 0
}

// Cap returns the length of the backing slice.
func (s *ArrayList[T]) Cap() int {
	return len(s.array)
}

func (s *ArrayList[T]) at(index int) T {
	return s.array[s.firstIndex+index]
}

func (s *ArrayList[T]) Get(index int) (T, error) {
	if err := collection.CheckIndex(index, s.size); err != nil {
		var empty T
		return empty, err
	}

	return s.array[s.firstIndex+index], nil
}

// Set replaces the element at index and returns the element previously stored there. Replacing a value is not a
// structural modification.
func (s *ArrayList[T]) Set(index int, value T) (T, error) {
	if err := collection.CheckIndex(index, s.size); err != nil {
		var empty T
		return empty, err
	}

	previous := s.array[s.firstIndex+index]
	s.array[s.firstIndex+index] = value

	return previous, nil
}

func growthIncrement(size, required int) int {
	increment := size / 2

	if required > increment {
		increment = required
	}

	if increment < minimumArrayGrowth {
		increment = minimumArrayGrowth
	}

	return increment
}

func clearSlots[T any](slots []T) {
	var empty T

	for idx := range slots {
		slots[idx] = empty
	}
}

// growAtEnd makes room for required more elements after the occupied window. If the slice already has enough slack
// in total the window is slid to the front of the slice, otherwise a larger slice is allocated.
func (s *ArrayList[T]) growAtEnd(required int) {
	if len(s.array)-s.size >= required {
		if s.size != 0 {
			copy(s.array, s.array[s.firstIndex:s.firstIndex+s.size])

			start := s.size
			if start < s.firstIndex {
				start = s.firstIndex
			}

			clearSlots(s.array[start:])
		}

		s.firstIndex = 0
	} else {
		newArray := make([]T, s.size+growthIncrement(s.size, required))

		if s.size != 0 {
			copy(newArray, s.array[s.firstIndex:s.firstIndex+s.size])
		}

		s.firstIndex = 0
		s.array = newArray
	}
}

// growAtFront makes room for required more elements before the occupied window by sliding the window to the tail of
// the slice or by reallocating with the slack placed in front of the window.
func (s *ArrayList[T]) growAtFront(required int) {
	if len(s.array)-s.size >= required {
		newFirst := len(s.array) - s.size

		if s.size != 0 {
			copy(s.array[newFirst:], s.array[s.firstIndex:s.firstIndex+s.size])

			end := s.firstIndex + s.size
			if end > newFirst {
				end = newFirst
			}

			clearSlots(s.array[s.firstIndex:end])
		}

		s.firstIndex = newFirst
	} else {
		var (
			increment = growthIncrement(s.size, required)
			newArray  = make([]T, s.size+increment)
		)

		if s.size != 0 {
			copy(newArray[increment:], s.array[s.firstIndex:s.firstIndex+s.size])
		}

		s.firstIndex = len(newArray) - s.size
		s.array = newArray
	}
}

// growForInsert reallocates the backing slice leaving a gap of required slots at location so that both the prefix
// and the inserted run land in place without a second shift.
func (s *ArrayList[T]) growForInsert(location, required int) {
	var (
		increment = growthIncrement(s.size, required)
		newArray  = make([]T, s.size+increment)
		newFirst  = increment - required
	)

	copy(newArray[newFirst+location+required:], s.array[s.firstIndex+location:s.firstIndex+s.size])
	copy(newArray[newFirst:], s.array[s.firstIndex:s.firstIndex+location])

	s.firstIndex = newFirst
	s.array = newArray
}

// Add appends value to the end of the list.
func (s *ArrayList[T]) Add(value T) (bool, error) {
	if s.firstIndex+s.size == len(s.array) {
		s.growAtEnd(1)
	}

	s.array[s.firstIndex+s.size] = value
	s.size++
	s.stamp.Bump()

	return true, nil
}

// Insert places value at location, shifting whichever side of the list is cheaper to move.
func (s *ArrayList[T]) Insert(location int, value T) error {
	if err := collection.CheckPosition(location, s.size); err != nil {
		return err
	}

	switch {
	case location == 0:
		if s.firstIndex == 0 {
			s.growAtFront(1)
		}

		s.firstIndex--
		s.array[s.firstIndex] = value

	case location == s.size:
		if s.firstIndex+s.size == len(s.array) {
			s.growAtEnd(1)
		}

		s.array[s.firstIndex+s.size] = value

	default:
		if s.size == len(s.array) {
			s.growForInsert(location, 1)
		} else if s.firstIndex+s.size == len(s.array) || (s.firstIndex > 0 && location < s.size/2) {
			copy(s.array[s.firstIndex-1:], s.array[s.firstIndex:s.firstIndex+location])
			s.firstIndex--
		} else {
			index := s.firstIndex + location
			copy(s.array[index+1:], s.array[index:s.firstIndex+s.size])
		}

		s.array[s.firstIndex+location] = value
	}

	s.size++
	s.stamp.Bump()

	return nil
}

// AddAll appends every element of source. The growth decision is made once for the whole batch. An empty source
// leaves the list untouched and reports false.
func (s *ArrayList[T]) AddAll(source collection.Container[T]) (bool, error) {
	if source == nil {
		return false, errors.Wrap(collection.ErrNullArgument, "add all source")
	}

	values := collection.ToSlice(source)
	if len(values) == 0 {
		return false, nil
	}

	if len(values) > len(s.array)-(s.firstIndex+s.size) {
		s.growAtEnd(len(values))
	}

	copy(s.array[s.firstIndex+s.size:], values)
	s.size += len(values)
	s.stamp.Bump()

	return true, nil
}

// AddAllAt inserts every element of source at location, in source traversal order.
func (s *ArrayList[T]) AddAllAt(location int, source collection.Container[T]) (bool, error) {
	if err := collection.CheckPosition(location, s.size); err != nil {
		return false, err
	}

	if source == nil {
		return false, errors.Wrap(collection.ErrNullArgument, "add all source")
	}

	var (
		values   = collection.ToSlice(source)
		growSize = len(values)
	)

	if growSize == 0 {
		return false, nil
	}

	switch {
	case location == 0:
		if s.firstIndex < growSize {
			s.growAtFront(growSize)
		}

		s.firstIndex -= growSize

	case location == s.size:
		if s.firstIndex+s.size > len(s.array)-growSize {
			s.growAtEnd(growSize)
		}

	default:
		if len(s.array)-s.size < growSize {
			s.growForInsert(location, growSize)
		} else if s.firstIndex+s.size > len(s.array)-growSize || (s.firstIndex > 0 && location < s.size/2) {
			newFirst := s.firstIndex - growSize

			if newFirst < 0 {
				index := s.firstIndex + location
				copy(s.array[index-newFirst:], s.array[index:s.firstIndex+s.size])
				newFirst = 0
			}

			copy(s.array[newFirst:], s.array[s.firstIndex:s.firstIndex+location])
			s.firstIndex = newFirst
		} else {
			index := s.firstIndex + location
			copy(s.array[index+growSize:], s.array[index:s.firstIndex+s.size])
		}
	}

	copy(s.array[s.firstIndex+location:], values)
	s.size += growSize
	s.stamp.Bump()

	return true, nil
}

// RemoveAt removes and returns the element at location, closing the gap from whichever side is shorter.
func (s *ArrayList[T]) RemoveAt(location int) (T, error) {
	var (
		result T
		empty  T
	)

	if err := collection.CheckIndex(location, s.size); err != nil {
		return result, err
	}

	switch {
	case location == 0:
		result = s.array[s.firstIndex]
		s.array[s.firstIndex] = empty
		s.firstIndex++

	case location == s.size-1:
		lastIndex := s.firstIndex + s.size - 1
		result = s.array[lastIndex]
		s.array[lastIndex] = empty

	default:
		elementIndex := s.firstIndex + location
		result = s.array[elementIndex]

		if location < s.size/2 {
			copy(s.array[s.firstIndex+1:], s.array[s.firstIndex:elementIndex])
			s.array[s.firstIndex] = empty
			s.firstIndex++
		} else {
			copy(s.array[elementIndex:], s.array[elementIndex+1:s.firstIndex+s.size])
			s.array[s.firstIndex+s.size-1] = empty
		}
	}

	s.size--

	if s.size == 0 {
		s.firstIndex = 0
	}

	s.stamp.Bump()
	return result, nil
}

// Remove removes the first occurrence of value.
func (s *ArrayList[T]) Remove(value T) bool {
	if index := s.IndexOf(value); index >= 0 {
		s.RemoveAt(index)
		return true
	}

	return false
}

// RemoveRange removes the elements in [start, end).
func (s *ArrayList[T]) RemoveRange(start, end int) error {
	if start < 0 || start > end || end > s.size {
		return errors.Wrapf(collection.ErrIndexOutOfRange, "range [%d, %d), size %d", start, end, s.size)
	}

	if start == end {
		return nil
	}

	switch {
	case end == s.size:
		clearSlots(s.array[s.firstIndex+start : s.firstIndex+s.size])

	case start == 0:
		clearSlots(s.array[s.firstIndex : s.firstIndex+end])
		s.firstIndex += end

	default:
		copy(s.array[s.firstIndex+start:], s.array[s.firstIndex+end:s.firstIndex+s.size])

		var (
			lastIndex = s.firstIndex + s.size
			newLast   = lastIndex + start - end
		)

		clearSlots(s.array[newLast:lastIndex])
	}

	s.size -= end - start

	if s.size == 0 {
		s.firstIndex = 0
	}

	s.stamp.Bump()
	return nil
}

func (s *ArrayList[T]) RemoveAll(other collection.Membership[T]) (bool, error) {
	return collection.RemoveAll[T](s, other)
}

func (s *ArrayList[T]) RetainAll(other collection.Membership[T]) (bool, error) {
	return collection.RetainAll[T](s, other)
}

// Clear zeroes the occupied window and resets the window to the front of the backing slice.
func (s *ArrayList[T]) Clear() {
	if s.size != 0 {
		clearSlots(s.array[s.firstIndex : s.firstIndex+s.size])

		s.firstIndex = 0
		s.size = 0
		s.stamp.Bump()
	}
}

func (s *ArrayList[T]) Contains(value T) bool {
	return s.IndexOf(value) >= 0
}

func (s *ArrayList[T]) ContainsAll(other collection.Container[T]) bool {
	return collection.ContainsAll[T](s, other)
}

func (s *ArrayList[T]) IndexOf(value T) int {
	for idx := 0; idx < s.size; idx++ {
		if s.array[s.firstIndex+idx] == value {
			return idx
		}
	}

	return -1
}

func (s *ArrayList[T]) LastIndexOf(value T) int {
	for idx := s.size - 1; idx >= 0; idx-- {
		if s.array[s.firstIndex+idx] == value {
			return idx
		}
	}

	return -1
}

// EnsureCapacity grows the backing slice so that it can hold at least minimumCapacity elements. The occupied window
// keeps its position.
func (s *ArrayList[T]) EnsureCapacity(minimumCapacity int) {
	if minimumCapacity > len(s.array) {
		newArray := make([]T, minimumCapacity)
		copy(newArray[s.firstIndex:], s.array[s.firstIndex:s.firstIndex+s.size])

		s.array = newArray
	}
}

// TrimToSize shrinks the backing slice to exactly the number of held elements.
func (s *ArrayList[T]) TrimToSize() {
	newArray := make([]T, s.size)
	copy(newArray, s.array[s.firstIndex:s.firstIndex+s.size])

	s.array = newArray
	s.firstIndex = 0
}

func (s *ArrayList[T]) Cursor() collection.Cursor[T] {
	return newIndexCursor[T](s, &s.stamp, 0)
}

func (s *ArrayList[T]) ListCursor(index int) (collection.ListCursor[T], error) {
	if err := collection.CheckPosition(index, s.size); err != nil {
		return nil, err
	}

	return newIndexCursor[T](s, &s.stamp, index), nil
}

func (s *ArrayList[T]) ToSlice() []T {
	values := make([]T, s.size)
	copy(values, s.array[s.firstIndex:s.firstIndex+s.size])

	return values
}

// Clone returns a shallow copy of this list with its own backing slice.
func (s *ArrayList[T]) Clone() *ArrayList[T] {
	clone := &ArrayList[T]{
		array:      make([]T, len(s.array)),
		firstIndex: s.firstIndex,
		size:       s.size,
	}

	copy(clone.array, s.array)
	return clone
}

func (s *ArrayList[T]) Equal(other collection.List[T]) bool {
	return collection.ListEquals[T](s, other)
}

func (s *ArrayList[T]) Hash() uint64 {
	return collection.ListHash[T](s)
}

func (s *ArrayList[T]) String() string {
	return collection.Format[T](s, s)
}
