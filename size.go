package xgeom

import "fmt"

// A Size is a width and height pair. A Size with a non-positive
// dimension is empty.
type Size[T Scalar] struct {
	Width, Height T
}

// Sz is shorthand for Size[T]{w, h}.
func Sz[T Scalar](w, h T) Size[T] {
	return Size[T]{w, h}
}

// SzConv converts a Size[In] to a Size[Out] with possible loss of
// precision.
func SzConv[Out Scalar, In Scalar](s Size[In]) Size[Out] {
	return Sz(Out(s.Width), Out(s.Height))
}

// IsEmpty reports whether s describes no area.
func (s Size[T]) IsEmpty() bool {
	return (s.Width <= 0) || (s.Height <= 0)
}

// Vector returns s as a displacement from a rectangle's origin corner
// to just past its opposite corner.
func (s Size[T]) Vector() Vector[T] {
	return Vector[T]{s.Width, s.Height}
}

func (s Size[T]) String() string {
	return fmt.Sprintf("%vx%v", s.Width, s.Height)
}
