package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Clamp limits v to the closed range [lo, hi].
func Clamp[T int | float32 | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseHexColor converts a CSS style "#RRGGBB" or "#RRGGBBAA" string to linear RGBA floats in [0, 1].
//
// Parameters:
//   - hex: the colour string, with or without the leading '#'
//
// Returns:
//   - [4]float32: the colour as r, g, b, a
//   - error: error if the string is not 6 or 8 hex digits
func ParseHexColor(hex string) ([4]float32, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 && len(s) != 8 {
		return [4]float32{}, fmt.Errorf("invalid colour %q: expected 6 or 8 hex digits", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return [4]float32{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	return [4]float32{
		float32((v>>24)&0xFF) / 255,
		float32((v>>16)&0xFF) / 255,
		float32((v>>8)&0xFF) / 255,
		float32(v&0xFF) / 255,
	}, nil
}

// MustHexColor is ParseHexColor for compile-time constants. It panics on malformed input.
func MustHexColor(hex string) [4]float32 {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
