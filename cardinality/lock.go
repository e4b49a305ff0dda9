package cardinality

import (
	"sync"
)

type guarded struct {
	lock *sync.Mutex
}

func newGuarded() guarded {
	return guarded{
		lock: &sync.Mutex{},
	}
}

// acquire locks and returns the matching unlock, for use as defer s.acquire()().
func (s guarded) acquire() func() {
	s.lock.Lock()
	return s.lock.Unlock
}

type threadSafeDuplex[T uint32 | uint64] struct {
	guarded

	provider Duplex[T]
}

// ThreadSafeDuplex serializes every call to provider. Iterators returned by the wrapper walk a snapshot taken under
// the lock.
func ThreadSafeDuplex[T uint32 | uint64](provider Duplex[T]) Duplex[T] {
	return threadSafeDuplex[T]{
		guarded:  newGuarded(),
		provider: provider,
	}
}

func (s threadSafeDuplex[T]) Clear() {
	defer s.acquire()()
	s.provider.Clear()
}

func (s threadSafeDuplex[T]) Add(values ...T) {
	defer s.acquire()()
	s.provider.Add(values...)
}

func (s threadSafeDuplex[T]) Remove(value T) {
	defer s.acquire()()
	s.provider.Remove(value)
}

func (s threadSafeDuplex[T]) CheckedAdd(value T) bool {
	defer s.acquire()()
	return s.provider.CheckedAdd(value)
}

func (s threadSafeDuplex[T]) Or(other Provider[T]) {
	defer s.acquire()()
	s.provider.Or(other)
}

func (s threadSafeDuplex[T]) And(other Provider[T]) {
	defer s.acquire()()
	s.provider.And(other)
}

func (s threadSafeDuplex[T]) AndNot(other Provider[T]) {
	defer s.acquire()()
	s.provider.AndNot(other)
}

func (s threadSafeDuplex[T]) Xor(other Provider[T]) {
	defer s.acquire()()
	s.provider.Xor(other)
}

func (s threadSafeDuplex[T]) Cardinality() uint64 {
	defer s.acquire()()
	return s.provider.Cardinality()
}

func (s threadSafeDuplex[T]) Contains(value T) bool {
	defer s.acquire()()
	return s.provider.Contains(value)
}

func (s threadSafeDuplex[T]) Slice() []T {
	defer s.acquire()()
	return s.provider.Slice()
}

func (s threadSafeDuplex[T]) Each(delegate func(value T) bool) {
	defer s.acquire()()
	s.provider.Each(delegate)
}

func (s threadSafeDuplex[T]) Iterator() Iterator[T] {
	defer s.acquire()()
	return s.provider.Clone().Iterator()
}

func (s threadSafeDuplex[T]) Clone() Duplex[T] {
	defer s.acquire()()
	return ThreadSafeDuplex(s.provider.Clone())
}

type threadSafeSimplex[T uint32 | uint64] struct {
	guarded

	provider Simplex[T]
}

// ThreadSafeSimplex serializes every call to provider.
func ThreadSafeSimplex[T uint32 | uint64](provider Simplex[T]) Simplex[T] {
	return threadSafeSimplex[T]{
		guarded:  newGuarded(),
		provider: provider,
	}
}

func (s threadSafeSimplex[T]) Clear() {
	defer s.acquire()()
	s.provider.Clear()
}

func (s threadSafeSimplex[T]) Add(values ...T) {
	defer s.acquire()()
	s.provider.Add(values...)
}

func (s threadSafeSimplex[T]) Or(other Provider[T]) {
	defer s.acquire()()
	s.provider.Or(other)
}

func (s threadSafeSimplex[T]) Cardinality() uint64 {
	defer s.acquire()()
	return s.provider.Cardinality()
}

func (s threadSafeSimplex[T]) Clone() Simplex[T] {
	defer s.acquire()()
	return ThreadSafeSimplex(s.provider.Clone())
}
