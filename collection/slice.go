package collection

// Slice adapts a plain Go slice to the Container contract so that it may seed or feed the bulk operations of any
// container. Its cursors are read-only.
type Slice[T any] []T

// Of is shorthand for Slice(values).
func Of[T any](values ...T) Slice[T] {
	return values
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Cursor() Cursor[T] {
	return &sliceCursor[T]{
		values: s,
		index:  -1,
	}
}

type sliceCursor[T any] struct {
	values []T
	index  int
}

func (s *sliceCursor[T]) Next() bool {
	if s.index+1 >= len(s.values) {
		return false
	}

	s.index++
	return true
}

func (s *sliceCursor[T]) Value() T {
	return s.values[s.index]
}

func (s *sliceCursor[T]) Remove() error {
	return Unsupported("remove from a slice")
}

func (s *sliceCursor[T]) Err() error {
	return nil
}
