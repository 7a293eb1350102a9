package xgeom

import "fmt"

// A Vector is a displacement in 2D space.
type Vector[T Scalar] struct {
	X, Y T
}

// Vec is shorthand for Vector[T]{X, Y}.
func Vec[T Scalar](X, Y T) Vector[T] {
	return Vector[T]{X, Y}
}

// VConv converts a Vector[In] to a Vector[Out] with possible loss of
// precision.
func VConv[Out Scalar, In Scalar](v Vector[In]) Vector[Out] {
	return Vec(Out(v.X), Out(v.Y))
}

func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T]{v.X + w.X, v.Y + w.Y}
}

func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vector[T]{v.X - w.X, v.Y - w.Y}
}

func (v Vector[T]) Neg() Vector[T] {
	return Vector[T]{-v.X, -v.Y}
}

func (v Vector[T]) Mul(k T) Vector[T] {
	return Vector[T]{v.X * k, v.Y * k}
}

func (v Vector[T]) Div(k T) Vector[T] {
	return Vector[T]{v.X / k, v.Y / k}
}

// Dot returns the dot product of v and w.
func (v Vector[T]) Dot(w Vector[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the Z component of the cross product of v and w. Its
// sign tells which side of v the vector w points to.
func (v Vector[T]) Cross(w Vector[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// Perp returns v rotated a quarter turn in the positive angular
// direction, from +X towards +Y.
func (v Vector[T]) Perp() Vector[T] {
	return Vector[T]{-v.Y, v.X}
}

// Abs returns v with both components non-negative.
func (v Vector[T]) Abs() Vector[T] {
	return Vector[T]{abs(v.X), abs(v.Y)}
}

// Clamp returns v with each component limited to the range from lo to
// hi.
func (v Vector[T]) Clamp(lo, hi Vector[T]) Vector[T] {
	return Vector[T]{
		clamp(v.X, lo.X, hi.X),
		clamp(v.Y, lo.Y, hi.Y),
	}
}

// Lerp returns the vector a fraction t of the way from v to w.
func (v Vector[T]) Lerp(w Vector[T], t T) Vector[T] {
	return Vector[T]{
		v.X + (w.X-v.X)*t,
		v.Y + (w.Y-v.Y)*t,
	}
}

// LenSq returns the square of the length of v.
func (v Vector[T]) LenSq() T {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector[T]) IsZero() bool {
	return (v.X == 0) && (v.Y == 0)
}

// Point returns the position reached by displacing the origin by v.
func (v Vector[T]) Point() Point[T] {
	return Point[T](v)
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("(%v,%v)", v.X, v.Y)
}

// Length returns the length of v.
func Length[T Float](v Vector[T]) T {
	return sqrt(v.LenSq())
}

// Normalize returns the unit vector in the direction of v. If v's
// length is zero, it returns the zero vector and false.
func Normalize[T Float](v Vector[T]) (Vector[T], bool) {
	l := Length(v)
	if l == 0 {
		return Vector[T]{}, false
	}
	return v.Div(l), true
}

// Rotate returns v rotated by the angle a in radians, from +X towards
// +Y.
func Rotate[T Float](v Vector[T], a T) Vector[T] {
	s, c := sin(a), cos(a)
	return Vector[T]{
		c*v.X - s*v.Y,
		s*v.X + c*v.Y,
	}
}

// Angle returns the angle of v in radians in the range (-π, π],
// measured from +X towards +Y.
func Angle[T Float](v Vector[T]) T {
	return atan2(v.Y, v.X)
}

// AngleBetween returns the angle that rotates v onto w's direction,
// in radians in the range (-π, π].
func AngleBetween[T Float](v, w Vector[T]) T {
	return atan2(v.Cross(w), v.Dot(w))
}
