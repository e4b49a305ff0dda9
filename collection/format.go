package collection

import (
	"fmt"
	"strings"
)

const (
	selfCollection = "(this Collection)"
	selfMap        = "(this Map)"
)

func formatValue(value any, self any, placeholder string) string {
	if identical(value, self) {
		return placeholder
	}

	return fmt.Sprint(value)
}

// Format renders a sequence or set as "[e1, e2, ...]". An element that is the container itself is rendered as a
// placeholder instead of recursing.
func Format[T any](self any, container Container[T]) string {
	var builder strings.Builder

	builder.WriteString("[")

	first := true
	for cursor := container.Cursor(); cursor.Next(); {
		if !first {
			builder.WriteString(", ")
		}

		builder.WriteString(formatValue(cursor.Value(), self, selfCollection))
		first = false
	}

	builder.WriteString("]")
	return builder.String()
}

// FormatMap renders a map as "{k1=v1, k2=v2, ...}". Keys or values that are the map itself are rendered as a
// placeholder instead of recursing.
func FormatMap[K comparable, V any](self any, entries Container[Entry[K, V]]) string {
	var builder strings.Builder

	builder.WriteString("{")

	first := true
	for cursor := entries.Cursor(); cursor.Next(); {
		entry := cursor.Value()

		if !first {
			builder.WriteString(", ")
		}

		builder.WriteString(formatValue(entry.Key(), self, selfMap))
		builder.WriteString("=")
		builder.WriteString(formatValue(entry.Value(), self, selfMap))
		first = false
	}

	builder.WriteString("}")
	return builder.String()
}
