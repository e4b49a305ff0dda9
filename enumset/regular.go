package enumset

import (
	"math/bits"

	"github.com/specterops/collections/cardinality"
	"github.com/specterops/collections/collection"
)

// RegularSet is the single word enum set for universes of at most 64 values.
type RegularSet[E Enum] struct {
	universe *Universe[E]
	elements uint64
	size     int
	stamp    collection.Stamp
}

func newRegular[E Enum](universe *Universe[E]) *RegularSet[E] {
	return &RegularSet[E]{
		universe: universe,
	}
}

func (s *RegularSet[E]) universeMask() uint64 {
	if s.universe.Len() == 0 {
		return 0
	}

	return s.universe.lastWordMask()
}

// replace installs a new bit pattern, recounting the size by popcount. It reports whether anything changed.
func (s *RegularSet[E]) replace(elements uint64) bool {
	if elements == s.elements {
		return false
	}

	s.elements = elements
	s.size = bits.OnesCount64(elements)
	s.stamp.Bump()

	return true
}

func (s *RegularSet[E]) Universe() *Universe[E] {
	return s.universe
}

func (s *RegularSet[E]) Words() []uint64 {
	return []uint64{s.elements}
}

func (s *RegularSet[E]) liveWords() []uint64 {
	return []uint64{s.elements}
}

func (s *RegularSet[E]) word(int) uint64 {
	return s.elements
}

func (s *RegularSet[E]) wordCount() int {
	return 1
}

func (s *RegularSet[E]) removeOrdinal(ordinal int) {
	s.elements &^= 1 << uint(ordinal)
	s.size--
	s.stamp.Bump()
}

func (s *RegularSet[E]) Len() int {
	return s.size
}

func (s *RegularSet[E]) IsEmpty() bool {
	return s.size == 0
}

func (s *RegularSet[E]) Contains(value E) bool {
	ordinal, err := s.universe.ordinalOf(value)
	return err == nil && s.elements&(1<<uint(ordinal)) != 0
}

func (s *RegularSet[E]) Add(value E) (bool, error) {
	ordinal, err := s.universe.ordinalOf(value)
	if err != nil {
		return false, err
	}

	previous := s.elements
	s.elements |= 1 << uint(ordinal)

	if s.elements == previous {
		return false, nil
	}

	s.size++
	s.stamp.Bump()

	return true, nil
}

func (s *RegularSet[E]) Remove(value E) bool {
	ordinal, err := s.universe.ordinalOf(value)
	if err != nil {
		return false
	}

	previous := s.elements
	s.elements &^= 1 << uint(ordinal)

	if s.elements == previous {
		return false
	}

	s.size--
	s.stamp.Bump()

	return true
}

func (s *RegularSet[E]) Clear() {
	s.replace(0)
}

func (s *RegularSet[E]) AddRange(from, to E) error {
	fromOrdinal, toOrdinal, err := rangeOrdinals(s.universe, from, to)
	if err != nil {
		return err
	}

	s.replace(s.elements | rangeMask(fromOrdinal, toOrdinal))
	return nil
}

func (s *RegularSet[E]) Complement() {
	if s.universe.Len() > 0 {
		s.elements = ^s.elements & s.universeMask()
		s.size = bits.OnesCount64(s.elements)
		s.stamp.Bump()
	}
}

func (s *RegularSet[E]) AddAll(source collection.Container[E]) (bool, error) {
	if words, ok := vectorOf(s.universe, source); ok {
		return s.replace(s.elements | words[0]), nil
	}

	return collection.AddAll[E](s, source)
}

func (s *RegularSet[E]) RemoveAll(other collection.Membership[E]) (bool, error) {
	if words, ok := vectorOf(s.universe, other); ok {
		return s.replace(s.elements &^ words[0]), nil
	}

	return collection.RemoveAll[E](s, other)
}

func (s *RegularSet[E]) RetainAll(other collection.Membership[E]) (bool, error) {
	if words, ok := vectorOf(s.universe, other); ok {
		return s.replace(s.elements & words[0]), nil
	}

	return collection.RetainAll[E](s, other)
}

func (s *RegularSet[E]) ContainsAll(other collection.Container[E]) bool {
	if words, ok := vectorOf(s.universe, other); ok {
		return words[0]&^s.elements == 0
	}

	return collection.ContainsAll[E](s, other)
}

func (s *RegularSet[E]) Cursor() collection.Cursor[E] {
	return newCursor[E](s, s.universe, &s.stamp)
}

func (s *RegularSet[E]) ToSlice() []E {
	return collection.ToSlice[E](s)
}

func (s *RegularSet[E]) Clone() EnumSet[E] {
	return &RegularSet[E]{
		universe: s.universe,
		elements: s.elements,
		size:     s.size,
	}
}

func (s *RegularSet[E]) Duplex() cardinality.Duplex[uint32] {
	return exportOrdinals(s.liveWords())
}

func (s *RegularSet[E]) Equal(other collection.Set[E]) bool {
	if words, ok := vectorOf(s.universe, other); ok {
		return words[0] == s.elements
	}

	return collection.SetEquals[E](s, other)
}

func (s *RegularSet[E]) Hash() uint64 {
	return collection.SetHash[E](s)
}

func (s *RegularSet[E]) String() string {
	return format[E](s)
}
