package collection

// Cursor is a single-use, fail-fast traversal over exactly one container instance.
//
// Next advances the cursor and reports whether Value holds a new element. When Next returns false Err reports the
// reason: nil when the traversal is exhausted or ErrStructuralConflict when the container was structurally modified
// outside of this cursor. Remove deletes the element last returned by Next and may be called at most once per
// successful advance.
type Cursor[T any] interface {
	Next() bool
	Value() T
	Remove() error
	Err() error
}

// ListCursor is a bidirectional cursor positioned between two elements of a list.
type ListCursor[T any] interface {
	Cursor[T]

	HasNext() bool
	HasPrevious() bool
	Previous() bool
	NextIndex() int
	PreviousIndex() int

	// Set replaces the element last returned by Next or Previous.
	Set(value T) error

	// Add inserts value immediately before the element that Next would return.
	Add(value T) error
}

// Container is the minimal primitive set every collection provides. All derived behavior in this package is
// computed from these two methods.
type Container[T any] interface {
	Len() int
	Cursor() Cursor[T]
}

type Collection[T comparable] interface {
	Container[T]

	IsEmpty() bool
	Contains(value T) bool
	Add(value T) (bool, error)
	Remove(value T) bool
	Clear()
}

type List[T comparable] interface {
	Collection[T]

	Get(index int) (T, error)
	Set(index int, value T) (T, error)
	Insert(index int, value T) error
	RemoveAt(index int) (T, error)
	IndexOf(value T) int
	LastIndexOf(value T) int
	ListCursor(index int) (ListCursor[T], error)
	Equal(other List[T]) bool
	Hash() uint64
}

type Set[T comparable] interface {
	Collection[T]

	ContainsAll(other Container[T]) bool
	Equal(other Set[T]) bool
	Hash() uint64
}

// Queue adds head access to a collection. Poll and Peek report an empty queue with a false flag rather than an
// error.
type Queue[T comparable] interface {
	Collection[T]

	Offer(value T) error
	Poll() (T, bool)
	Peek() (T, bool)
}

// Comparable is implemented by element types that carry their own natural ordering.
type Comparable[T any] interface {
	CompareTo(other T) int
}

// Comparator orders two values. It returns a negative number when a sorts before b, zero when they are equivalent
// and a positive number otherwise.
type Comparator[T any] func(a, b T) int
