package collection

import (
	"cmp"
	"reflect"

	"github.com/cockroachdb/errors"
)

func compareOrdered[T cmp.Ordered](a T, b any) (int, error) {
	if typedB, ok := b.(T); ok {
		return cmp.Compare(a, typedB), nil
	}

	return 0, errors.Wrapf(ErrIncompatibleType, "can not compare %T with %T", a, b)
}

// compareKinds orders two values of the same named type whose underlying type is an ordered kind.
func compareKinds(a, b any) (int, error) {
	var (
		valueA = reflect.ValueOf(a)
		valueB = reflect.ValueOf(b)
	)

	if !valueA.IsValid() || !valueB.IsValid() || valueA.Type() != valueB.Type() {
		return 0, errors.Wrapf(ErrIncompatibleType, "can not compare %T with %T", a, b)
	}

	switch valueA.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(valueA.Int(), valueB.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(valueA.Uint(), valueB.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(valueA.Float(), valueB.Float()), nil
	case reflect.String:
		return cmp.Compare(valueA.String(), valueB.String()), nil
	default:
		return 0, errors.Wrapf(ErrIncompatibleType, "%T has no natural ordering", a)
	}
}

// NaturalCompare orders two values by their natural ordering, which is CompareTo for values implementing
// Comparable and the language ordering for ordered kinds, including named types such as `type Priority int`.
// Values without a natural ordering, or of mismatched dynamic types, return ErrIncompatibleType.
func NaturalCompare[T any](a, b T) (int, error) {
	if ordered, ok := any(a).(Comparable[T]); ok {
		return ordered.CompareTo(b), nil
	}

	switch typedA := any(a).(type) {
	case int:
		return compareOrdered(typedA, any(b))
	case int8:
		return compareOrdered(typedA, any(b))
	case int16:
		return compareOrdered(typedA, any(b))
	case int32:
		return compareOrdered(typedA, any(b))
	case int64:
		return compareOrdered(typedA, any(b))
	case uint:
		return compareOrdered(typedA, any(b))
	case uint8:
		return compareOrdered(typedA, any(b))
	case uint16:
		return compareOrdered(typedA, any(b))
	case uint32:
		return compareOrdered(typedA, any(b))
	case uint64:
		return compareOrdered(typedA, any(b))
	case uintptr:
		return compareOrdered(typedA, any(b))
	case float32:
		return compareOrdered(typedA, any(b))
	case float64:
		return compareOrdered(typedA, any(b))
	case string:
		return compareOrdered(typedA, any(b))
	default:
		return compareKinds(any(a), any(b))
	}
}
