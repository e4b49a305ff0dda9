package cardinality

import "github.com/specterops/collections/collection"

type ProviderConstructor[T uint32 | uint64] func() Provider[T]
type SimplexConstructor[T uint32 | uint64] func() Simplex[T]
type DuplexConstructor[T uint32 | uint64] func() Duplex[T]

// Provider describes the most basic functionality of a cardinality provider: adding values to the provider and
// producing the number of distinct values it has seen.
type Provider[T uint32 | uint64] interface {
	Add(value ...T)
	Or(other Provider[T])
	Clear()
	Cardinality() uint64
}

func CloneProvider[T uint32 | uint64](provider Provider[T]) Provider[T] {
	switch typedProvider := provider.(type) {
	case Simplex[T]:
		return typedProvider.Clone()

	case Duplex[T]:
		return typedProvider.Clone()

	default:
		return provider
	}
}

// Simplex is a one-way provider: values merged into it can not be read back out. Sketches such as HyperLogLog, which
// only keep a hash of each value, are simplex providers.
type Simplex[T uint32 | uint64] interface {
	Provider[T]

	Clone() Simplex[T]
}

// Iterator enumerates a duplex provider without allocating its value slice.
type Iterator[T uint32 | uint64] interface {
	HasNext() bool
	Next() T
}

// Duplex is a two-way provider that retains its values exactly and behaves like a bit vector.
type Duplex[T uint32 | uint64] interface {
	Provider[T]

	Xor(other Provider[T])
	And(other Provider[T])
	AndNot(other Provider[T])
	Remove(value T)
	Slice() []T
	Contains(value T) bool
	Each(delegate func(value T) bool)
	CheckedAdd(value T) bool
	Iterator() Iterator[T]
	Clone() Duplex[T]
}

// Values exposes the values of a duplex provider, in ascending order, as a read-only container.
func Values[T uint32 | uint64](duplex Duplex[T]) collection.Container[T] {
	return values[T]{
		duplex: duplex,
	}
}

type values[T uint32 | uint64] struct {
	duplex Duplex[T]
}

func (s values[T]) Len() int {
	return int(s.duplex.Cardinality())
}

func (s values[T]) Cursor() collection.Cursor[T] {
	return &valueCursor[T]{
		iterator: s.duplex.Iterator(),
	}
}

type valueCursor[T uint32 | uint64] struct {
	iterator Iterator[T]
	current  T
}

func (s *valueCursor[T]) Next() bool {
	if !s.iterator.HasNext() {
		return false
	}

	s.current = s.iterator.Next()
	return true
}

func (s *valueCursor[T]) Value() T {
	return s.current
}

func (s *valueCursor[T]) Remove() error {
	return collection.Unsupported("remove from a cardinality provider view")
}

func (s *valueCursor[T]) Err() error {
	return nil
}

// The generic fallbacks below serve operands that are not of the receiver's concrete bitmap type.

func orEach[T uint32 | uint64](target Duplex[T], operand Duplex[T]) {
	operand.Each(func(value T) bool {
		target.Add(value)
		return true
	})
}

func andEach[T uint32 | uint64](target Duplex[T], operand Duplex[T]) {
	for _, value := range target.Slice() {
		if !operand.Contains(value) {
			target.Remove(value)
		}
	}
}

func andNotEach[T uint32 | uint64](target Duplex[T], operand Duplex[T]) {
	for _, value := range target.Slice() {
		if operand.Contains(value) {
			target.Remove(value)
		}
	}
}

func xorEach[T uint32 | uint64](target Duplex[T], operand Duplex[T]) {
	operand.Each(func(value T) bool {
		if !target.CheckedAdd(value) {
			target.Remove(value)
		}

		return true
	})
}
