package collection

import (
	"fmt"
	"hash/maphash"
	"reflect"
)

var seed = maphash.MakeSeed()

// Hasher is implemented by values that provide their own content hash, such as the containers of this module.
type Hasher interface {
	Hash() uint64
}

// Hash returns a content hash for value that is stable for the lifetime of the process. Nil hashes to zero.
func Hash[T any](value T) uint64 {
	boxed := any(value)

	if IsNil(boxed) {
		return 0
	}

	if hasher, ok := boxed.(Hasher); ok {
		return hasher.Hash()
	}

	if reflect.TypeOf(boxed).Comparable() {
		return maphash.Comparable(seed, boxed)
	}

	return maphash.String(seed, fmt.Sprintf("%#v", boxed))
}

// HashKey hashes a comparable key for bucket placement.
func HashKey[K comparable](key K) uint64 {
	return maphash.Comparable(seed, key)
}

// Equal compares two values of any type. Comparable dynamic types are compared with ==, everything else falls back to
// a deep comparison.
func Equal[T any](a, b T) bool {
	var (
		boxedA = any(a)
		boxedB = any(b)
	)

	if boxedA == nil || boxedB == nil {
		return boxedA == nil && boxedB == nil
	}

	if typeA := reflect.TypeOf(boxedA); typeA == reflect.TypeOf(boxedB) && typeA.Comparable() {
		return boxedA == boxedB
	}

	return reflect.DeepEqual(boxedA, boxedB)
}

// identical reports whether value is the very same object as self without risking a panic on incomparable types.
func identical(value, self any) bool {
	if value == nil || self == nil {
		return false
	}

	if valueType := reflect.TypeOf(value); valueType != reflect.TypeOf(self) || !valueType.Comparable() {
		return false
	}

	return value == self
}
