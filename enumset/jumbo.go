package enumset

import (
	"math/bits"
	"slices"

	"github.com/specterops/collections/cardinality"
	"github.com/specterops/collections/collection"
)

// JumboSet is the multi-word enum set for universes of more than 64 values.
type JumboSet[E Enum] struct {
	universe *Universe[E]
	elements []uint64
	size     int
	stamp    collection.Stamp
}

func newJumbo[E Enum](universe *Universe[E]) *JumboSet[E] {
	return &JumboSet[E]{
		universe: universe,
		elements: make([]uint64, universe.wordCount()),
	}
}

// combine applies operation word by word with the operand's storage and adjusts the size by the popcount delta of
// each changed word. It reports whether anything changed.
func (s *JumboSet[E]) combine(operand []uint64, operation func(word, other uint64) uint64) bool {
	changed := false

	for idx, word := range s.elements {
		if next := operation(word, operand[idx]); next != word {
			s.size += bits.OnesCount64(next) - bits.OnesCount64(word)
			s.elements[idx] = next
			changed = true
		}
	}

	if changed {
		s.stamp.Bump()
	}

	return changed
}

func (s *JumboSet[E]) Universe() *Universe[E] {
	return s.universe
}

func (s *JumboSet[E]) Words() []uint64 {
	return slices.Clone(s.elements)
}

func (s *JumboSet[E]) liveWords() []uint64 {
	return s.elements
}

func (s *JumboSet[E]) word(idx int) uint64 {
	return s.elements[idx]
}

func (s *JumboSet[E]) wordCount() int {
	return len(s.elements)
}

func (s *JumboSet[E]) removeOrdinal(ordinal int) {
	s.elements[ordinal/wordSize] &^= 1 << uint(ordinal%wordSize)
	s.size--
	s.stamp.Bump()
}

func (s *JumboSet[E]) Len() int {
	return s.size
}

func (s *JumboSet[E]) IsEmpty() bool {
	return s.size == 0
}

func (s *JumboSet[E]) Contains(value E) bool {
	ordinal, err := s.universe.ordinalOf(value)
	return err == nil && s.elements[ordinal/wordSize]&(1<<uint(ordinal%wordSize)) != 0
}

func (s *JumboSet[E]) Add(value E) (bool, error) {
	ordinal, err := s.universe.ordinalOf(value)
	if err != nil {
		return false, err
	}

	var (
		idx      = ordinal / wordSize
		previous = s.elements[idx]
	)

	s.elements[idx] |= 1 << uint(ordinal%wordSize)

	if s.elements[idx] == previous {
		return false, nil
	}

	s.size++
	s.stamp.Bump()

	return true, nil
}

func (s *JumboSet[E]) Remove(value E) bool {
	ordinal, err := s.universe.ordinalOf(value)
	if err != nil {
		return false
	}

	var (
		idx      = ordinal / wordSize
		previous = s.elements[idx]
	)

	s.elements[idx] &^= 1 << uint(ordinal%wordSize)

	if s.elements[idx] == previous {
		return false
	}

	s.size--
	s.stamp.Bump()

	return true
}

func (s *JumboSet[E]) Clear() {
	if s.size > 0 {
		clear(s.elements)
		s.size = 0
		s.stamp.Bump()
	}
}

// AddRange sets the boundary words with masks and fills every interior word.
func (s *JumboSet[E]) AddRange(from, to E) error {
	fromOrdinal, toOrdinal, err := rangeOrdinals(s.universe, from, to)
	if err != nil {
		return err
	}

	var (
		fromWord = fromOrdinal / wordSize
		toWord   = toOrdinal / wordSize
		changed  = false
	)

	apply := func(idx int, mask uint64) {
		if previous := s.elements[idx]; previous|mask != previous {
			s.elements[idx] = previous | mask
			s.size += bits.OnesCount64(s.elements[idx]) - bits.OnesCount64(previous)
			changed = true
		}
	}

	if fromWord == toWord {
		apply(fromWord, rangeMask(fromOrdinal%wordSize, toOrdinal%wordSize))
	} else {
		apply(fromWord, rangeMask(fromOrdinal%wordSize, wordSize-1))

		for idx := fromWord + 1; idx < toWord; idx++ {
			apply(idx, ^uint64(0))
		}

		apply(toWord, rangeMask(0, toOrdinal%wordSize))
	}

	if changed {
		s.stamp.Bump()
	}

	return nil
}

// Complement flips every word and masks off the unused high bits of the final word.
func (s *JumboSet[E]) Complement() {
	for idx := range s.elements {
		s.elements[idx] = ^s.elements[idx]
	}

	if last := len(s.elements) - 1; last >= 0 {
		s.elements[last] &= s.universe.lastWordMask()
	}

	s.size = popCount(s.elements)
	s.stamp.Bump()
}

func (s *JumboSet[E]) AddAll(source collection.Container[E]) (bool, error) {
	if words, ok := vectorOf(s.universe, source); ok {
		return s.combine(words, func(word, other uint64) uint64 {
			return word | other
		}), nil
	}

	return collection.AddAll[E](s, source)
}

func (s *JumboSet[E]) RemoveAll(other collection.Membership[E]) (bool, error) {
	if words, ok := vectorOf(s.universe, other); ok {
		return s.combine(words, func(word, other uint64) uint64 {
			return word &^ other
		}), nil
	}

	return collection.RemoveAll[E](s, other)
}

func (s *JumboSet[E]) RetainAll(other collection.Membership[E]) (bool, error) {
	if words, ok := vectorOf(s.universe, other); ok {
		return s.combine(words, func(word, other uint64) uint64 {
			return word & other
		}), nil
	}

	return collection.RetainAll[E](s, other)
}

func (s *JumboSet[E]) ContainsAll(other collection.Container[E]) bool {
	if words, ok := vectorOf(s.universe, other); ok {
		for idx, word := range words {
			if word&^s.elements[idx] != 0 {
				return false
			}
		}

		return true
	}

	return collection.ContainsAll[E](s, other)
}

func (s *JumboSet[E]) Cursor() collection.Cursor[E] {
	return newCursor[E](s, s.universe, &s.stamp)
}

func (s *JumboSet[E]) ToSlice() []E {
	return collection.ToSlice[E](s)
}

func (s *JumboSet[E]) Clone() EnumSet[E] {
	return &JumboSet[E]{
		universe: s.universe,
		elements: slices.Clone(s.elements),
		size:     s.size,
	}
}

func (s *JumboSet[E]) Duplex() cardinality.Duplex[uint32] {
	return exportOrdinals(s.elements)
}

func (s *JumboSet[E]) Equal(other collection.Set[E]) bool {
	if words, ok := vectorOf(s.universe, other); ok {
		return slices.Equal(words, s.elements)
	}

	return collection.SetEquals[E](s, other)
}

func (s *JumboSet[E]) Hash() uint64 {
	return collection.SetHash[E](s)
}

func (s *JumboSet[E]) String() string {
	return format[E](s)
}
