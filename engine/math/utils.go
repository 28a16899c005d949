package math

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats) and is
// equivalent to Min(high, Max(low, f)).
func Clamp[T constraints.Ordered](f, low, high T) T {
	return Min(high, Max(low, f))
}
