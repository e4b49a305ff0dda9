package cardinality

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

type bitmap32 struct {
	bitmap *roaring.Bitmap
}

// NewBitmap32 creates a roaring bitmap provider for 32-bit values. Enum set ordinals are exchanged in this form.
func NewBitmap32() Duplex[uint32] {
	return bitmap32{
		bitmap: roaring.New(),
	}
}

func NewBitmap32Provider() Provider[uint32] {
	return NewBitmap32()
}

func NewBitmap32With(values ...uint32) Duplex[uint32] {
	duplex := NewBitmap32()
	duplex.Add(values...)

	return duplex
}

func (s bitmap32) Clear() {
	s.bitmap.Clear()
}

func (s bitmap32) Each(delegate func(value uint32) bool) {
	for itr := s.bitmap.Iterator(); itr.HasNext(); {
		if !delegate(itr.Next()) {
			break
		}
	}
}

func (s bitmap32) Iterator() Iterator[uint32] {
	return s.bitmap.Iterator()
}

func (s bitmap32) Slice() []uint32 {
	return s.bitmap.ToArray()
}

func (s bitmap32) Contains(value uint32) bool {
	return s.bitmap.Contains(value)
}

func (s bitmap32) CheckedAdd(value uint32) bool {
	return s.bitmap.CheckedAdd(value)
}

func (s bitmap32) Add(values ...uint32) {
	switch len(values) {
	case 0:
	case 1:
		s.bitmap.Add(values[0])
	default:
		s.bitmap.AddMany(values)
	}
}

func (s bitmap32) Remove(value uint32) {
	s.bitmap.Remove(value)
}

func (s bitmap32) Cardinality() uint64 {
	return s.bitmap.GetCardinality()
}

func (s bitmap32) Clone() Duplex[uint32] {
	return bitmap32{
		bitmap: s.bitmap.Clone(),
	}
}

func (s bitmap32) Or(provider Provider[uint32]) {
	switch typedProvider := provider.(type) {
	case bitmap32:
		s.bitmap.Or(typedProvider.bitmap)

	case Duplex[uint32]:
		orEach[uint32](s, typedProvider)
	}
}

func (s bitmap32) And(provider Provider[uint32]) {
	switch typedProvider := provider.(type) {
	case bitmap32:
		s.bitmap.And(typedProvider.bitmap)

	case Duplex[uint32]:
		andEach[uint32](s, typedProvider)
	}
}

func (s bitmap32) AndNot(provider Provider[uint32]) {
	switch typedProvider := provider.(type) {
	case bitmap32:
		s.bitmap.AndNot(typedProvider.bitmap)

	case Duplex[uint32]:
		andNotEach[uint32](s, typedProvider)
	}
}

func (s bitmap32) Xor(provider Provider[uint32]) {
	switch typedProvider := provider.(type) {
	case bitmap32:
		s.bitmap.Xor(typedProvider.bitmap)

	case Duplex[uint32]:
		xorEach[uint32](s, typedProvider)
	}
}

type bitmap64 struct {
	bitmap *roaring64.Bitmap
}

// NewBitmap64 creates a roaring bitmap provider for 64-bit values.
func NewBitmap64() Duplex[uint64] {
	return bitmap64{
		bitmap: roaring64.New(),
	}
}

func NewBitmap64Provider() Provider[uint64] {
	return NewBitmap64()
}

func NewBitmap64With(values ...uint64) Duplex[uint64] {
	duplex := NewBitmap64()
	duplex.Add(values...)

	return duplex
}

func (s bitmap64) Clear() {
	s.bitmap.Clear()
}

func (s bitmap64) Each(delegate func(value uint64) bool) {
	for itr := s.bitmap.Iterator(); itr.HasNext(); {
		if !delegate(itr.Next()) {
			break
		}
	}
}

func (s bitmap64) Iterator() Iterator[uint64] {
	return s.bitmap.Iterator()
}

func (s bitmap64) Slice() []uint64 {
	return s.bitmap.ToArray()
}

func (s bitmap64) Contains(value uint64) bool {
	return s.bitmap.Contains(value)
}

func (s bitmap64) CheckedAdd(value uint64) bool {
	return s.bitmap.CheckedAdd(value)
}

func (s bitmap64) Add(values ...uint64) {
	switch len(values) {
	case 0:
	case 1:
		s.bitmap.Add(values[0])
	default:
		s.bitmap.AddMany(values)
	}
}

func (s bitmap64) Remove(value uint64) {
	s.bitmap.Remove(value)
}

func (s bitmap64) Cardinality() uint64 {
	return s.bitmap.GetCardinality()
}

func (s bitmap64) Clone() Duplex[uint64] {
	return bitmap64{
		bitmap: s.bitmap.Clone(),
	}
}

func (s bitmap64) Or(provider Provider[uint64]) {
	switch typedProvider := provider.(type) {
	case bitmap64:
		s.bitmap.Or(typedProvider.bitmap)

	case Duplex[uint64]:
		orEach[uint64](s, typedProvider)
	}
}

func (s bitmap64) And(provider Provider[uint64]) {
	switch typedProvider := provider.(type) {
	case bitmap64:
		s.bitmap.And(typedProvider.bitmap)

	case Duplex[uint64]:
		andEach[uint64](s, typedProvider)
	}
}

func (s bitmap64) AndNot(provider Provider[uint64]) {
	switch typedProvider := provider.(type) {
	case bitmap64:
		s.bitmap.AndNot(typedProvider.bitmap)

	case Duplex[uint64]:
		andNotEach[uint64](s, typedProvider)
	}
}

func (s bitmap64) Xor(provider Provider[uint64]) {
	switch typedProvider := provider.(type) {
	case bitmap64:
		s.bitmap.Xor(typedProvider.bitmap)

	case Duplex[uint64]:
		xorEach[uint64](s, typedProvider)
	}
}
