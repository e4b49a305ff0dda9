package collection

import "github.com/cockroachdb/errors"

type offerer[T any] interface {
	Offer(value T) error
}

type poller[T any] interface {
	Poll() (T, bool)
}

type peeker[T any] interface {
	Peek() (T, bool)
}

// QueueAdd is the throwing counterpart of Offer. It always reports a change when the offer succeeds.
func QueueAdd[T any](queue offerer[T], value T) (bool, error) {
	if err := queue.Offer(value); err != nil {
		return false, err
	}

	return true, nil
}

// QueueRemove is the throwing counterpart of Poll.
func QueueRemove[T any](queue poller[T]) (T, error) {
	if value, ok := queue.Poll(); ok {
		return value, nil
	}

	var empty T
	return empty, errors.Wrap(ErrNoSuchElement, "remove from an empty queue")
}

// QueueElement is the throwing counterpart of Peek.
func QueueElement[T any](queue peeker[T]) (T, error) {
	if value, ok := queue.Peek(); ok {
		return value, nil
	}

	var empty T
	return empty, errors.Wrap(ErrNoSuchElement, "element of an empty queue")
}
