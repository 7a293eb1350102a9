package xgeom

import "math"

// Epsilon returns the smallest representable positive value of T.
// Intersection queries treat direction components smaller than this
// in magnitude as zero.
func Epsilon[T Float]() T {
	// The conversion underflows to zero exactly when T is 32 bits
	// wide.
	if T(math.SmallestNonzeroFloat64) > 0 {
		return T(math.SmallestNonzeroFloat64)
	}
	return T(math.SmallestNonzeroFloat32)
}

func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

func sin[T Float](v T) T {
	return T(math.Sin(float64(v)))
}

func cos[T Float](v T) T {
	return T(math.Cos(float64(v)))
}

func atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

func abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func clamp[T Scalar](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
