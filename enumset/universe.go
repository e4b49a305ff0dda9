package enumset

import (
	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/collection"
)

const wordSize = 64

// Enum is implemented by the values of a closed enumeration. Ordinal is the value's fixed position in its Universe.
type Enum interface {
	comparable

	Ordinal() int
}

// Universe is the closed, ordinal-indexed set of every value of an enumeration. Sets only share the word-at-a-time
// fast paths when they were created over the same Universe instance.
type Universe[E Enum] struct {
	name   string
	values []E
}

// NewUniverse creates a universe from values listed in ordinal order.
func NewUniverse[E Enum](name string, values ...E) (*Universe[E], error) {
	for idx, value := range values {
		if value.Ordinal() != idx {
			return nil, errors.Wrapf(collection.ErrIncompatibleType, "universe %s: value %v declares ordinal %d but is listed at position %d", name, value, value.Ordinal(), idx)
		}
	}

	return &Universe[E]{
		name:   name,
		values: append([]E(nil), values...),
	}, nil
}

func (s *Universe[E]) Name() string {
	return s.name
}

func (s *Universe[E]) Len() int {
	return len(s.values)
}

// Values returns every value of the universe in ordinal order.
func (s *Universe[E]) Values() []E {
	return append([]E(nil), s.values...)
}

// At returns the value with the given ordinal.
func (s *Universe[E]) At(ordinal int) (E, bool) {
	if ordinal < 0 || ordinal >= len(s.values) {
		var empty E
		return empty, false
	}

	return s.values[ordinal], true
}

func (s *Universe[E]) String() string {
	return s.name
}

func (s *Universe[E]) ordinalOf(value E) (int, error) {
	if ordinal := value.Ordinal(); ordinal >= 0 && ordinal < len(s.values) && s.values[ordinal] == value {
		return ordinal, nil
	}

	return -1, errors.Wrapf(collection.ErrIncompatibleType, "value %v is not a member of universe %s", value, s.name)
}

func (s *Universe[E]) wordCount() int {
	return (len(s.values) + wordSize - 1) / wordSize
}

// lastWordMask covers the ordinals that exist in the final word of a bit vector over this universe.
func (s *Universe[E]) lastWordMask() uint64 {
	if remainder := len(s.values) % wordSize; remainder != 0 {
		return 1<<uint(remainder) - 1
	}

	return ^uint64(0)
}
