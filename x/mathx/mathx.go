// Package mathx holds the small generic helpers the drivers share for index
// checks and address arithmetic.
package mathx

import "golang.org/x/exp/constraints"

// Below reports v < n for unsigned indices. Hardware indices are checked with
// it instead of being masked, so an out of range value is caught rather than
// wrapped onto another pin or slot.
func Below[T constraints.Unsigned](v, n T) bool { return v < n }

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// AlignedTo reports whether v is a multiple of align, which must be a power
// of two.
func AlignedTo[T constraints.Unsigned](v, align T) bool {
	return v&(align-1) == 0
}
