package enumset

import (
	"math/bits"

	"github.com/specterops/collections/collection"
)

func forEachBit(words []uint64, visitor func(ordinal int)) {
	for idx, word := range words {
		for word != 0 {
			visitor(idx*wordSize + bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
}

func popCount(words []uint64) int {
	count := 0

	for _, word := range words {
		count += bits.OnesCount64(word)
	}

	return count
}

// rangeMask covers the in-word bit positions from through to, inclusive.
func rangeMask(from, to int) uint64 {
	return (^uint64(0) >> uint(wordSize-1-(to-from))) << uint(from)
}

// wordSource is the storage a cursor walks. removeOrdinal is a structural modification of the owning set.
type wordSource interface {
	word(idx int) uint64
	wordCount() int
	removeOrdinal(ordinal int)
}

// cursor walks set bits low to high, jumping to the next set bit with a trailing zero count.
type cursor[E Enum] struct {
	source    wordSource
	universe  *Universe[E]
	guard     collection.Guard
	removal   collection.Removal
	wordIndex int
	unseen    uint64
	last      int
	current   E
	err       error
}

func newCursor[E Enum](source wordSource, universe *Universe[E], stamp *collection.Stamp) *cursor[E] {
	return &cursor[E]{
		source:    source,
		universe:  universe,
		guard:     stamp.Guard(),
		wordIndex: -1,
		last:      -1,
	}
}

func (s *cursor[E]) Next() bool {
	if s.err != nil {
		return false
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return false
	}

	for s.unseen == 0 {
		if s.wordIndex+1 >= s.source.wordCount() {
			return false
		}

		s.wordIndex++
		s.unseen = s.source.word(s.wordIndex)
	}

	s.last = s.wordIndex*wordSize + bits.TrailingZeros64(s.unseen)
	s.unseen &= s.unseen - 1
	s.current = s.universe.values[s.last]
	s.removal.Arm()

	return true
}

func (s *cursor[E]) Value() E {
	return s.current
}

func (s *cursor[E]) Remove() error {
	if s.err != nil {
		return s.err
	}

	if err := s.guard.Check(); err != nil {
		s.err = err
		return err
	}

	if err := s.removal.Take(); err != nil {
		return err
	}

	s.source.removeOrdinal(s.last)
	s.guard.Acknowledge()

	return nil
}

func (s *cursor[E]) Err() error {
	return s.err
}
