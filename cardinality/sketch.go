package cardinality

import (
	"encoding/binary"
	"sync"

	"github.com/axiomhq/hyperloglog"
)

var encodingBufferPool = &sync.Pool{
	New: func() any {
		buffer := make([]byte, 8)
		return &buffer
	},
}

// sketch is a HyperLogLog simplex provider. Values of either width are hashed in their 8 byte little endian form.
type sketch[T uint32 | uint64] struct {
	sketch *hyperloglog.Sketch
	create func() *hyperloglog.Sketch
}

func newSketch[T uint32 | uint64](create func() *hyperloglog.Sketch) *sketch[T] {
	return &sketch[T]{
		sketch: create(),
		create: create,
	}
}

// NewHyperLogLog32 creates a sketch with 2^14 registers.
func NewHyperLogLog32() Simplex[uint32] {
	return newSketch[uint32](hyperloglog.New14)
}

func NewHyperLogLog32Provider() Provider[uint32] {
	return NewHyperLogLog32()
}

// NewHyperLogLog64 creates a sketch that never uses the sparse representation.
func NewHyperLogLog64() Simplex[uint64] {
	return newSketch[uint64](hyperloglog.NewNoSparse)
}

func NewHyperLogLog64Provider() Provider[uint64] {
	return NewHyperLogLog64()
}

func (s *sketch[T]) Clone() Simplex[T] {
	return &sketch[T]{
		sketch: s.sketch.Clone(),
		create: s.create,
	}
}

func (s *sketch[T]) Clear() {
	s.sketch = s.create()
}

func (s *sketch[T]) Add(values ...T) {
	buffer := encodingBufferPool.Get().(*[]byte)
	defer encodingBufferPool.Put(buffer)

	for _, value := range values {
		binary.LittleEndian.PutUint64(*buffer, uint64(value))
		s.sketch.Insert(*buffer)
	}
}

func (s *sketch[T]) Or(provider Provider[T]) {
	switch typedProvider := provider.(type) {
	case *sketch[T]:
		// Sketches of the same width share a precision so the merge can not fail
		_ = s.sketch.Merge(typedProvider.sketch)

	case Duplex[T]:
		typedProvider.Each(func(value T) bool {
			s.Add(value)
			return true
		})
	}
}

func (s *sketch[T]) Cardinality() uint64 {
	return s.sketch.Estimate()
}
