package size

import "fmt"

const (
	iecUnitFactor = 1024

	Bytes    Size = 1
	Kibibyte      = Bytes * iecUnitFactor
	Mebibyte      = Kibibyte * iecUnitFactor
	Gibibyte      = Mebibyte * iecUnitFactor
	Tebibyte      = Gibibyte * iecUnitFactor
)

// Size is a count of bytes.
type Size uintptr

func (s Size) Bytes() uintptr {
	return uintptr(s)
}

func (s Size) Kibibytes() float64 {
	return float64(s) / float64(Kibibyte)
}

func (s Size) Mebibytes() float64 {
	return float64(s) / float64(Mebibyte)
}

func (s Size) Gibibytes() float64 {
	return float64(s) / float64(Gibibyte)
}

// String renders the size in the largest IEC unit that keeps the value at or above one.
func (s Size) String() string {
	switch {
	case s >= Tebibyte:
		return fmt.Sprintf("%.2f TiB", float64(s)/float64(Tebibyte))
	case s >= Gibibyte:
		return fmt.Sprintf("%.2f GiB", s.Gibibytes())
	case s >= Mebibyte:
		return fmt.Sprintf("%.2f MiB", s.Mebibytes())
	case s >= Kibibyte:
		return fmt.Sprintf("%.2f KiB", s.Kibibytes())
	default:
		return fmt.Sprintf("%d B", uintptr(s))
	}
}
