package atomics

import "sync/atomic"

// Counter counts one step per call and returns true once maximum steps have been counted. It is safe to share between
// goroutines: exactly maximum calls return false no matter how the calls interleave.
type Counter func() bool

type number interface {
	uint32 | uint64
}

type cas[T number] interface {
	Load() T
	CompareAndSwap(current, next T) bool
}

func countTo[T number](counter cas[T], maximum T) Counter {
	return func() bool {
		for current := counter.Load(); current < maximum; current = counter.Load() {
			if counter.CompareAndSwap(current, current+1) {
				return false
			}
		}

		return true
	}
}

func NewCounter[T number](maximum T) Counter {
	switch typedMaximum := any(maximum).(type) {
	case uint32:
		return countTo[uint32](&atomic.Uint32{}, typedMaximum)

	default:
		return countTo[uint64](&atomic.Uint64{}, uint64(maximum))
	}
}
