package size

import (
	"runtime"
	"unsafe"
)

// Of returns the shallow size of value. Memory referenced through pointers, slices, maps or strings is not counted.
func Of[T any](value T) Size {
	return Size(unsafe.Sizeof(value))
}

// OfSlice returns the size of the slice header plus its full backing capacity.
func OfSlice[T any](slice []T) Size {
	var element T
	return Of(slice) + Size(cap(slice))*Of(element)
}

// HeapInUse reports the bytes of live heap objects as last measured by the runtime.
func HeapInUse() Size {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	return Size(stats.HeapAlloc)
}
