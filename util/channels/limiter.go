package channels

import "context"

// ConcurrencyLimiter hands out a fixed number of slots. Acquire blocks until a slot frees up or ctx expires.
type ConcurrencyLimiter struct {
	slotC chan struct{}
}

func NewConcurrencyLimiter(numSlots int) ConcurrencyLimiter {
	if numSlots < 1 {
		numSlots = 1
	}

	return ConcurrencyLimiter{
		slotC: make(chan struct{}, numSlots),
	}
}

func (s ConcurrencyLimiter) Acquire(ctx context.Context) bool {
	return Submit(ctx, s.slotC, struct{}{})
}

func (s ConcurrencyLimiter) Release() {
	<-s.slotC
}

// Slots returns the number of slots this limiter hands out.
func (s ConcurrencyLimiter) Slots() int {
	return cap(s.slotC)
}
