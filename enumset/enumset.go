package enumset

import (
	"github.com/cockroachdb/errors"
	"github.com/specterops/collections/cardinality"
	"github.com/specterops/collections/collection"
)

// BitVector is the capability an operand exposes to unlock word-at-a-time set algebra. Operands that do not expose
// it, or whose universe differs, are handled element by element.
type BitVector[E Enum] interface {
	Universe() *Universe[E]

	// Words returns a copy of the bit storage, lowest ordinals in the lowest bits of the first word.
	Words() []uint64
}

// EnumSet is a bit-vector set over a closed Universe. Universes of at most 64 values are served by a single word,
// larger ones by an array of words.
//
// Add rejects values outside the universe with ErrIncompatibleType, while Contains and Remove simply report false
// for them.
type EnumSet[E Enum] interface {
	collection.Set[E]
	BitVector[E]

	AddAll(source collection.Container[E]) (bool, error)
	RemoveAll(other collection.Membership[E]) (bool, error)
	RetainAll(other collection.Membership[E]) (bool, error)

	// AddRange adds every value with an ordinal between those of from and to, inclusive.
	AddRange(from, to E) error

	// Complement replaces the contents of this set with every universe value it did not contain.
	Complement()

	Clone() EnumSet[E]
	ToSlice() []E

	// Duplex exports the ordinals of this set as a roaring bitmap.
	Duplex() cardinality.Duplex[uint32]
	String() string
}

// liveVector is implemented by the sets of this package to hand their storage to each other without copying.
type liveVector interface {
	liveWords() []uint64
}

// vectorOf returns the bit storage of operand if it is a bit vector over universe. Words from implementations outside
// this package are only trusted when they have the universe's word count; bits past the last ordinal are dropped.
func vectorOf[E Enum](universe *Universe[E], operand any) ([]uint64, bool) {
	vector, ok := operand.(BitVector[E])
	if !ok || vector.Universe() != universe {
		return nil, false
	}

	if live, ok := operand.(liveVector); ok {
		return live.liveWords(), true
	}

	words := vector.Words()
	if len(words) == 0 || len(words) != universe.wordCount() {
		return nil, false
	}

	words = append([]uint64(nil), words...)
	words[len(words)-1] &= universe.lastWordMask()

	return words, true
}

// NoneOf creates an empty set over universe.
func NoneOf[E Enum](universe *Universe[E]) EnumSet[E] {
	if universe.Len() <= wordSize {
		return newRegular(universe)
	}

	return newJumbo(universe)
}

// AllOf creates a set holding every value of universe.
func AllOf[E Enum](universe *Universe[E]) EnumSet[E] {
	set := NoneOf(universe)
	set.Complement()

	return set
}

func Of[E Enum](universe *Universe[E], values ...E) (EnumSet[E], error) {
	set := NoneOf(universe)

	for _, value := range values {
		if _, err := set.Add(value); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// Range creates a set holding every value with an ordinal between those of from and to, inclusive.
func Range[E Enum](universe *Universe[E], from, to E) (EnumSet[E], error) {
	set := NoneOf(universe)
	return set, set.AddRange(from, to)
}

// CopyOf creates a set over universe holding every value of source.
func CopyOf[E Enum](universe *Universe[E], source collection.Container[E]) (EnumSet[E], error) {
	if source == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "enum set source")
	}

	set := NoneOf(universe)

	_, err := set.AddAll(source)
	return set, err
}

// ComplementOf creates a set over the universe of set holding every value set does not contain.
func ComplementOf[E Enum](set EnumSet[E]) EnumSet[E] {
	complement := set.Clone()
	complement.Complement()

	return complement
}

// FromDuplex creates a set over universe from a bitmap of ordinals.
func FromDuplex[E Enum](universe *Universe[E], duplex cardinality.Duplex[uint32]) (EnumSet[E], error) {
	if duplex == nil {
		return nil, errors.Wrap(collection.ErrNullArgument, "enum set duplex")
	}

	var (
		set = NoneOf(universe)
		err error
	)

	duplex.Each(func(ordinal uint32) bool {
		value, found := universe.At(int(ordinal))

		if !found {
			err = errors.Wrapf(collection.ErrIncompatibleType, "ordinal %d is outside of universe %s", ordinal, universe.Name())
			return false
		}

		set.Add(value)
		return true
	})

	if err != nil {
		return nil, err
	}

	return set, nil
}

// exportOrdinals writes the set bits of words into a roaring bitmap.
func exportOrdinals(words []uint64) cardinality.Duplex[uint32] {
	duplex := cardinality.NewBitmap32()

	forEachBit(words, func(ordinal int) {
		duplex.Add(uint32(ordinal))
	})

	return duplex
}

func rangeOrdinals[E Enum](universe *Universe[E], from, to E) (int, int, error) {
	fromOrdinal, err := universe.ordinalOf(from)
	if err != nil {
		return 0, 0, err
	}

	toOrdinal, err := universe.ordinalOf(to)
	if err != nil {
		return 0, 0, err
	}

	if fromOrdinal > toOrdinal {
		return 0, 0, errors.Wrapf(collection.ErrInvalidRange, "range start %v sorts after range end %v", from, to)
	}

	return fromOrdinal, toOrdinal, nil
}

func format[E Enum](set EnumSet[E]) string {
	return collection.Format[E](set, set)
}
