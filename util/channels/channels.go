package channels

import "context"

// Submit sends value on channel and reports whether it was delivered before ctx expired.
func Submit[T any](ctx context.Context, channel chan<- T, value T) bool {
	select {
	case channel <- value:
		return true

	case <-ctx.Done():
		return false
	}
}

// Receive reads one value from channel. The boolean is false when ctx expired or the channel was closed.
func Receive[T any](ctx context.Context, channel <-chan T) (T, bool) {
	select {
	case value, canContinue := <-channel:
		return value, canContinue

	case <-ctx.Done():
		var empty T
		return empty, false
	}
}
