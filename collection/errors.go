package collection

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

var (
	ErrNullArgument         = errors.New("null argument")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrNoSuchElement        = errors.New("no such element")
	ErrInvalidIteratorState = errors.New("invalid iterator state")
	ErrStructuralConflict   = errors.New("structural conflict")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrIncompatibleType     = errors.New("incompatible type")
	ErrInvalidRange         = errors.New("invalid range")
)

// CheckIndex validates that index addresses an existing element of a sequence of the given size.
func CheckIndex(index, size int) error {
	if index < 0 || index >= size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
	}

	return nil
}

// CheckPosition validates that index is a legal insertion point, that is within [0, size].
func CheckPosition(index, size int) error {
	if index < 0 || index > size {
		return errors.Wrapf(ErrIndexOutOfRange, "position %d, size %d", index, size)
	}

	return nil
}

func Unsupported(operation string) error {
	return errors.Wrapf(ErrUnsupportedOperation, "%s", operation)
}

func Incompatible(value any) error {
	return errors.Wrapf(ErrIncompatibleType, "value %v of type %T", value, value)
}

// IsNil reports whether value is nil or a typed nil held in an interface.
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	switch reflected := reflect.ValueOf(value); reflected.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return reflected.IsNil()

	default:
		return false
	}
}
